// Package ports defines repository interfaces for the procurement domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/supplier"
)

// SupplierRepository defines the persistence contract for supplier entities.
type SupplierRepository interface {
	// Add persists a new supplier to storage.
	// The supplier must be valid and not already exist in the repository.
	Add(ctx context.Context, supplier *supplier.Supplier) error

	// Get retrieves a supplier by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*supplier.Supplier, error)

	// GetAll retrieves all registered suppliers.
	GetAll(ctx context.Context) ([]*supplier.Supplier, error)
}
