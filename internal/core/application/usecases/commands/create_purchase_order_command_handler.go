package commands

import (
	"context"
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/pkg/errs"
)

// ErrSupplierNotFound is returned when an order references a supplier that
// is not registered in the system.
var ErrSupplierNotFound = errors.New("supplier not found")

// CreatePurchaseOrderCommandHandler handles the business logic for opening
// purchase orders. It verifies the referenced supplier exists before the
// aggregate is created, coordinating both repositories in one transaction.
//
// Example:
//
//	handler := NewCreatePurchaseOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreatePurchaseOrderCommand(supplierID, kernel.EUR, time.Time{})
//
//	orderID, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrSupplierNotFound):
//	    // reject the request, the supplier is unknown
//	case err != nil:
//	    // infrastructure failure
//	}
type CreatePurchaseOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreatePurchaseOrderCommandHandler creates a handler for order creation.
// Requires a UoWFactory because the handler reads suppliers and writes orders.
func NewCreatePurchaseOrderCommandHandler(uowFactory UoWFactory) CreatePurchaseOrderCommandHandler {
	return CreatePurchaseOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Verifies the supplier exists, creates the order in Draft status and
// returns the generated order identifier.
func (h *CreatePurchaseOrderCommandHandler) Handle(
	ctx context.Context, cmd CreatePurchaseOrderCommand,
) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	_, err := uow.SupplierRepository().Get(ctx, cmd.SupplierID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return kernel.UUID{}, ErrSupplierNotFound
	}
	if err != nil {
		return kernel.UUID{}, err
	}

	newOrder, err := order.NewPurchaseOrder(cmd.SupplierID(), cmd.Currency(), cmd.OrderDate())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.PurchaseOrderRepository().Add(ctx, newOrder); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return newOrder.ID(), nil
}
