package commands

import (
	"context"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/supplier"
)

// CreateSupplierCommandHandler handles the business logic for supplier registration.
//
// Example:
//
//	handler := NewCreateSupplierCommandHandler(uowFactory)
//	cmd, _ := NewCreateSupplierCommand("Acme Industrial", "orders@acme.example")
//
//	supplierID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("supplier registration failed: %w", err)
//	}
type CreateSupplierCommandHandler struct {
	uowFactory SupplierUoWFactory
}

// NewCreateSupplierCommandHandler creates a handler for supplier registration.
// Requires a SupplierUoWFactory for transactional persistence.
func NewCreateSupplierCommandHandler(uowFactory SupplierUoWFactory) CreateSupplierCommandHandler {
	return CreateSupplierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the supplier registration command.
// Creates the supplier within a transaction and returns its generated identifier.
func (h *CreateSupplierCommandHandler) Handle(
	ctx context.Context, cmd CreateSupplierCommand,
) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	newSupplier, err := supplier.NewSupplier(cmd.Name(), cmd.ContactEmail())
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.SupplierRepository().Add(ctx, newSupplier); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return newSupplier.ID(), nil
}
