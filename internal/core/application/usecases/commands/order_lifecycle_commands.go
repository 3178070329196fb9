package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

// Validation errors for lifecycle commands created without their constructors.
var (
	ErrSubmitPurchaseOrderCommandIsNotConstructed = errors.New(
		"SubmitPurchaseOrderCommand must be created via NewSubmitPurchaseOrderCommand constructor",
	)
	ErrApprovePurchaseOrderCommandIsNotConstructed = errors.New(
		"ApprovePurchaseOrderCommand must be created via NewApprovePurchaseOrderCommand constructor",
	)
	ErrShipPurchaseOrderCommandIsNotConstructed = errors.New(
		"ShipPurchaseOrderCommand must be created via NewShipPurchaseOrderCommand constructor",
	)
	ErrCompletePurchaseOrderCommandIsNotConstructed = errors.New(
		"CompletePurchaseOrderCommand must be created via NewCompletePurchaseOrderCommand constructor",
	)
	ErrCancelPurchaseOrderCommandIsNotConstructed = errors.New(
		"CancelPurchaseOrderCommand must be created via NewCancelPurchaseOrderCommand constructor",
	)
)

// orderLifecycleCommand carries the target order reference shared by all
// lifecycle transition commands. Each concrete command embeds it and keeps
// its own constructor and validation sentinel.
type orderLifecycleCommand struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func newOrderLifecycleCommand(orderID kernel.UUID) (orderLifecycleCommand, error) {
	if err := orderID.Validate(); err != nil {
		return orderLifecycleCommand{}, errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}

	return orderLifecycleCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the identifier of the order the transition applies to.
func (c orderLifecycleCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c orderLifecycleCommand) validate(notConstructed error) error {
	return c.guard.Validate(notConstructed)
}

// SubmitPurchaseOrderCommand represents a request to submit a draft order
// for approval, freezing its item list.
type SubmitPurchaseOrderCommand struct {
	orderLifecycleCommand
}

// NewSubmitPurchaseOrderCommand creates a command to submit a draft order.
func NewSubmitPurchaseOrderCommand(orderID kernel.UUID) (SubmitPurchaseOrderCommand, error) {
	base, err := newOrderLifecycleCommand(orderID)
	if err != nil {
		return SubmitPurchaseOrderCommand{}, err
	}
	return SubmitPurchaseOrderCommand{orderLifecycleCommand: base}, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitPurchaseOrderCommand) Validate() error {
	return c.validate(ErrSubmitPurchaseOrderCommandIsNotConstructed)
}

// ApprovePurchaseOrderCommand represents a request to approve a submitted order.
type ApprovePurchaseOrderCommand struct {
	orderLifecycleCommand
}

// NewApprovePurchaseOrderCommand creates a command to approve a submitted order.
func NewApprovePurchaseOrderCommand(orderID kernel.UUID) (ApprovePurchaseOrderCommand, error) {
	base, err := newOrderLifecycleCommand(orderID)
	if err != nil {
		return ApprovePurchaseOrderCommand{}, err
	}
	return ApprovePurchaseOrderCommand{orderLifecycleCommand: base}, nil
}

// Validate ensures the command was created through the constructor.
func (c ApprovePurchaseOrderCommand) Validate() error {
	return c.validate(ErrApprovePurchaseOrderCommandIsNotConstructed)
}

// ShipPurchaseOrderCommand represents a request to mark an approved order
// as shipped by the supplier.
type ShipPurchaseOrderCommand struct {
	orderLifecycleCommand
}

// NewShipPurchaseOrderCommand creates a command to mark an order as shipped.
func NewShipPurchaseOrderCommand(orderID kernel.UUID) (ShipPurchaseOrderCommand, error) {
	base, err := newOrderLifecycleCommand(orderID)
	if err != nil {
		return ShipPurchaseOrderCommand{}, err
	}
	return ShipPurchaseOrderCommand{orderLifecycleCommand: base}, nil
}

// Validate ensures the command was created through the constructor.
func (c ShipPurchaseOrderCommand) Validate() error {
	return c.validate(ErrShipPurchaseOrderCommandIsNotConstructed)
}

// CompletePurchaseOrderCommand represents a request to mark a shipped order
// as received and completed.
type CompletePurchaseOrderCommand struct {
	orderLifecycleCommand
}

// NewCompletePurchaseOrderCommand creates a command to complete a shipped order.
func NewCompletePurchaseOrderCommand(orderID kernel.UUID) (CompletePurchaseOrderCommand, error) {
	base, err := newOrderLifecycleCommand(orderID)
	if err != nil {
		return CompletePurchaseOrderCommand{}, err
	}
	return CompletePurchaseOrderCommand{orderLifecycleCommand: base}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompletePurchaseOrderCommand) Validate() error {
	return c.validate(ErrCompletePurchaseOrderCommandIsNotConstructed)
}

// CancelPurchaseOrderCommand represents a request to abandon an order that
// has not yet been completed.
type CancelPurchaseOrderCommand struct {
	orderLifecycleCommand
}

// NewCancelPurchaseOrderCommand creates a command to cancel an order.
func NewCancelPurchaseOrderCommand(orderID kernel.UUID) (CancelPurchaseOrderCommand, error) {
	base, err := newOrderLifecycleCommand(orderID)
	if err != nil {
		return CancelPurchaseOrderCommand{}, err
	}
	return CancelPurchaseOrderCommand{orderLifecycleCommand: base}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelPurchaseOrderCommand) Validate() error {
	return c.validate(ErrCancelPurchaseOrderCommandIsNotConstructed)
}
