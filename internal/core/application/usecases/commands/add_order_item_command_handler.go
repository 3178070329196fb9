package commands

import (
	"context"
)

// AddOrderItemCommandHandler handles the business logic for adding line items
// to draft purchase orders. The aggregate enforces the Draft-only rule, the
// item limit and the currency match; the handler only orchestrates loading,
// mutation and persistence.
//
// Example:
//
//	handler := NewAddOrderItemCommandHandler(uowFactory)
//	unitPrice, _ := kernel.NewMoney(9.99, kernel.USD)
//	cmd, _ := NewAddOrderItemCommand(orderID, productID, 3, unitPrice)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add item: %w", err)
//	}
type AddOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAddOrderItemCommandHandler creates a handler for adding order items.
// Requires an OrderUoWFactory for transactional persistence.
func NewAddOrderItemCommandHandler(uowFactory OrderUoWFactory) AddOrderItemCommandHandler {
	return AddOrderItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add-item command.
// Loads the order, applies AddItem and persists the updated aggregate.
// On any domain rule violation the transaction is rolled back and the
// order is left unchanged.
func (h *AddOrderItemCommandHandler) Handle(ctx context.Context, cmd AddOrderItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.PurchaseOrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.AddItem(cmd.ProductID(), cmd.Quantity(), cmd.UnitPrice()); err != nil {
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
