package ports

import (
	"context"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
)

// PurchaseOrderRepository defines the persistence contract for purchase order
// aggregates. Provides methods for storing, retrieving, and querying orders.
// Read models bypass this port and query the database directly.
type PurchaseOrderRepository interface {
	// Add persists a new purchase order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.PurchaseOrder) error

	// Update persists changes to an existing purchase order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.PurchaseOrder) error

	// Get retrieves a purchase order aggregate by its unique identifier.
	// Returns the complete order with all line items and its current status.
	Get(ctx context.Context, id kernel.UUID) (*order.PurchaseOrder, error)

	// GetDraftsCreatedBefore retrieves all Draft orders placed before the cutoff.
	// Used by housekeeping to cancel drafts that were never submitted.
	GetDraftsCreatedBefore(ctx context.Context, cutoff time.Time) ([]*order.PurchaseOrder, error)
}
