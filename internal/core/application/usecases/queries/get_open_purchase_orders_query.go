package queries

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/pkg/guard"
)

var ErrGetOpenPurchaseOrdersQueryIsNotConstructed = errors.New(
	"GetOpenPurchaseOrdersQuery must be created via NewGetOpenPurchaseOrdersQuery constructor",
)

// GetOpenPurchaseOrdersQuery retrieves all purchase orders that have not yet
// reached a terminal status, for workload monitoring.
//
// Example:
//
//	query := NewGetOpenPurchaseOrdersQuery()
//	handler := NewGetOpenPurchaseOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get open orders: %w", err)
//	}
//
//	fmt.Printf("%d orders in flight\n", len(orders))
type GetOpenPurchaseOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOpenPurchaseOrdersQuery creates a query to retrieve open orders.
// This is a parameterless query that fetches all non-terminal orders.
func NewGetOpenPurchaseOrdersQuery() GetOpenPurchaseOrdersQuery {
	return GetOpenPurchaseOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOpenPurchaseOrdersQueryIsNotConstructed if validation fails.
func (q GetOpenPurchaseOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenPurchaseOrdersQueryIsNotConstructed)
}

// GetOpenPurchaseOrdersQueryResponse represents one open order in the read
// model, with the number of line items it currently holds.
type GetOpenPurchaseOrdersQueryResponse struct {
	ID         kernel.UUID
	SupplierID kernel.UUID
	Currency   kernel.Currency
	OrderDate  time.Time
	Status     order.Status
	ItemCount  int
}
