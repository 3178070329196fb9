package commands

import (
	"context"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
)

// applyOrderTransition loads the order, applies a single lifecycle transition
// and persists the result within one transaction. The Status state machine
// rejects invalid transitions, which rolls the transaction back.
func applyOrderTransition(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	orderID kernel.UUID,
	transition func(*order.PurchaseOrder) error,
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.PurchaseOrderRepository()
	aggregate, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return err
	}

	if err = transition(aggregate); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// SubmitPurchaseOrderCommandHandler handles submission of draft orders.
//
// Example:
//
//	handler := NewSubmitPurchaseOrderCommandHandler(uowFactory)
//	cmd, _ := NewSubmitPurchaseOrderCommand(orderID)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("submit failed: %w", err)
//	}
type SubmitPurchaseOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSubmitPurchaseOrderCommandHandler creates a handler for order submission.
func NewSubmitPurchaseOrderCommandHandler(uowFactory OrderUoWFactory) SubmitPurchaseOrderCommandHandler {
	return SubmitPurchaseOrderCommandHandler{uowFactory: uowFactory}
}

// Handle moves the order from Draft to Submitted.
func (h *SubmitPurchaseOrderCommandHandler) Handle(ctx context.Context, cmd SubmitPurchaseOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return applyOrderTransition(ctx, h.uowFactory, cmd.OrderID(),
		(*order.PurchaseOrder).Submit)
}

// ApprovePurchaseOrderCommandHandler handles approval of submitted orders.
type ApprovePurchaseOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewApprovePurchaseOrderCommandHandler creates a handler for order approval.
func NewApprovePurchaseOrderCommandHandler(uowFactory OrderUoWFactory) ApprovePurchaseOrderCommandHandler {
	return ApprovePurchaseOrderCommandHandler{uowFactory: uowFactory}
}

// Handle moves the order from Submitted to Approved.
func (h *ApprovePurchaseOrderCommandHandler) Handle(ctx context.Context, cmd ApprovePurchaseOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return applyOrderTransition(ctx, h.uowFactory, cmd.OrderID(),
		(*order.PurchaseOrder).Approve)
}

// ShipPurchaseOrderCommandHandler handles shipping notification for approved orders.
type ShipPurchaseOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewShipPurchaseOrderCommandHandler creates a handler for shipping notifications.
func NewShipPurchaseOrderCommandHandler(uowFactory OrderUoWFactory) ShipPurchaseOrderCommandHandler {
	return ShipPurchaseOrderCommandHandler{uowFactory: uowFactory}
}

// Handle moves the order from Approved to Shipped.
func (h *ShipPurchaseOrderCommandHandler) Handle(ctx context.Context, cmd ShipPurchaseOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return applyOrderTransition(ctx, h.uowFactory, cmd.OrderID(),
		(*order.PurchaseOrder).Ship)
}

// CompletePurchaseOrderCommandHandler handles completion of shipped orders.
type CompletePurchaseOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCompletePurchaseOrderCommandHandler creates a handler for order completion.
func NewCompletePurchaseOrderCommandHandler(uowFactory OrderUoWFactory) CompletePurchaseOrderCommandHandler {
	return CompletePurchaseOrderCommandHandler{uowFactory: uowFactory}
}

// Handle moves the order from Shipped to Completed.
func (h *CompletePurchaseOrderCommandHandler) Handle(ctx context.Context, cmd CompletePurchaseOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return applyOrderTransition(ctx, h.uowFactory, cmd.OrderID(),
		(*order.PurchaseOrder).Complete)
}

// CancelPurchaseOrderCommandHandler handles cancellation of non-terminal orders.
type CancelPurchaseOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelPurchaseOrderCommandHandler creates a handler for order cancellation.
func NewCancelPurchaseOrderCommandHandler(uowFactory OrderUoWFactory) CancelPurchaseOrderCommandHandler {
	return CancelPurchaseOrderCommandHandler{uowFactory: uowFactory}
}

// Handle moves the order to Cancelled from any non-terminal status.
func (h *CancelPurchaseOrderCommandHandler) Handle(ctx context.Context, cmd CancelPurchaseOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return applyOrderTransition(ctx, h.uowFactory, cmd.OrderID(),
		(*order.PurchaseOrder).Cancel)
}
