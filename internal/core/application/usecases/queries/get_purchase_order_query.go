// Package queries contains read-only operations for retrieving system state.
// Implements the Query side of the CQRS architecture using direct SQL for
// read performance, bypassing the domain aggregates.
package queries

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

var ErrGetPurchaseOrderQueryIsNotConstructed = errors.New(
	"GetPurchaseOrderQuery must be created via NewGetPurchaseOrderQuery constructor",
)

// GetPurchaseOrderQuery retrieves a single purchase order with its line
// items, computed subtotals and order total.
//
// Example:
//
//	query, err := NewGetPurchaseOrderQuery(orderID)
//	if err != nil {
//	    return fmt.Errorf("invalid query: %w", err)
//	}
//
//	handler := NewGetPurchaseOrderQueryHandler(db)
//	result, err := handler.Handle(ctx, query)
type GetPurchaseOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPurchaseOrderQuery creates a query for a single purchase order.
// Validates the order reference.
func NewGetPurchaseOrderQuery(orderID kernel.UUID) (GetPurchaseOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetPurchaseOrderQuery{}, errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}

	return GetPurchaseOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPurchaseOrderQueryIsNotConstructed if validation fails.
func (q GetPurchaseOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetPurchaseOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetPurchaseOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetPurchaseOrderItemResponse represents a single line item in the read model,
// with the subtotal already computed from quantity and unit price.
type GetPurchaseOrderItemResponse struct {
	ProductID kernel.UUID
	Quantity  int
	UnitPrice kernel.Money
	Subtotal  kernel.Money
}

// GetPurchaseOrderQueryResponse represents the complete purchase order read
// model. Total is nil when the order has no items, because the total of an
// empty order is undefined.
type GetPurchaseOrderQueryResponse struct {
	ID         kernel.UUID
	SupplierID kernel.UUID
	Currency   kernel.Currency
	OrderDate  time.Time
	Status     order.Status
	Items      []GetPurchaseOrderItemResponse
	Total      *kernel.Money
}
