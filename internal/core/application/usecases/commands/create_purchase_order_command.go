package commands

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

var ErrCreatePurchaseOrderCommandIsNotConstructed = errors.New(
	"CreatePurchaseOrderCommand must be created via NewCreatePurchaseOrderCommand constructor",
)

// CreatePurchaseOrderCommand represents a request to open a new purchase order
// with a supplier. The order starts empty and in Draft status.
//
// Example:
//
//	cmd, err := NewCreatePurchaseOrderCommand(supplierID, kernel.USD, time.Time{})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreatePurchaseOrderCommandHandler(uowFactory)
//	orderID, err := handler.Handle(ctx, cmd)
type CreatePurchaseOrderCommand struct { //nolint:recvcheck //using for validation
	supplierID kernel.UUID
	currency   kernel.Currency
	orderDate  time.Time

	guard guard.ConstructorGuard
}

// NewCreatePurchaseOrderCommand creates a command to open a new purchase order.
// Validates the supplier reference and currency; a zero orderDate is allowed
// and defaults to the current time in the domain.
func NewCreatePurchaseOrderCommand(
	supplierID kernel.UUID,
	currency kernel.Currency,
	orderDate time.Time,
) (CreatePurchaseOrderCommand, error) {
	orderCommand := CreatePurchaseOrderCommand{
		orderDate: orderDate,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setSupplierID(supplierID),
		orderCommand.setCurrency(currency),
	); err != nil {
		return CreatePurchaseOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreatePurchaseOrderCommandIsNotConstructed if validation fails.
func (c CreatePurchaseOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreatePurchaseOrderCommandIsNotConstructed)
}

// SupplierID returns the identifier of the supplier the order is placed with.
func (c CreatePurchaseOrderCommand) SupplierID() kernel.UUID {
	return c.supplierID
}

// Currency returns the currency the order will be denominated in.
func (c CreatePurchaseOrderCommand) Currency() kernel.Currency {
	return c.currency
}

// OrderDate returns the requested order date; zero means "now".
func (c CreatePurchaseOrderCommand) OrderDate() time.Time {
	return c.orderDate
}

func (c *CreatePurchaseOrderCommand) setSupplierID(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return err
	}

	c.supplierID = supplierID
	return nil
}

func (c *CreatePurchaseOrderCommand) setCurrency(currency kernel.Currency) error {
	if err := currency.Validate(); err != nil {
		return err
	}

	c.currency = currency
	return nil
}
