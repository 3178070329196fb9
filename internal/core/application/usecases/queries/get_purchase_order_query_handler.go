package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPurchaseOrderQueryHandler retrieves a single purchase order read model
// from the database. Subtotals and the order total are computed on the
// kernel Money type so the read side rounds exactly like the write side.
//
// Example:
//
//	handler := NewGetPurchaseOrderQueryHandler(db)
//	query, _ := NewGetPurchaseOrderQuery(orderID)
//
//	result, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // translate to a 404 at the API edge
//	}
type GetPurchaseOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetPurchaseOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetPurchaseOrderQueryHandler(db *gorm.DB) GetPurchaseOrderQueryHandler {
	return GetPurchaseOrderQueryHandler{db: db}
}

// Handle executes the query for one purchase order.
// Returns ErrObjectNotFound when no order exists with the given identifier.
func (h GetPurchaseOrderQueryHandler) Handle(
	ctx context.Context,
	query GetPurchaseOrderQuery,
) (GetPurchaseOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPurchaseOrderQueryResponse{}, err
	}

	var response GetPurchaseOrderQueryResponse

	var (
		id         uuid.UUID
		supplierID uuid.UUID
		currency   string
		orderDate  time.Time
		status     int
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			supplier_id,
			currency,
			order_date,
			status
		FROM purchase_orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(&id, &supplierID, &currency, &orderDate, &status)
	if errors.Is(err, sql.ErrNoRows) {
		return GetPurchaseOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return GetPurchaseOrderQueryResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetPurchaseOrderQueryResponse{}, err
	}
	if response.SupplierID, err = kernel.UUIDFromBytes(supplierID[:]); err != nil {
		return GetPurchaseOrderQueryResponse{}, err
	}
	if response.Currency, err = kernel.CurrencyFromString(currency); err != nil {
		return GetPurchaseOrderQueryResponse{}, err
	}
	response.OrderDate = orderDate
	response.Status = order.Status(status)

	if response.Items, err = h.loadItems(ctx, query.OrderID(), response.Currency); err != nil {
		return GetPurchaseOrderQueryResponse{}, err
	}

	if len(response.Items) > 0 {
		total, totalErr := kernel.NewMoneyFromCents(0, response.Currency)
		if totalErr != nil {
			return GetPurchaseOrderQueryResponse{}, totalErr
		}
		for _, item := range response.Items {
			if total, totalErr = total.Add(item.Subtotal); totalErr != nil {
				return GetPurchaseOrderQueryResponse{}, totalErr
			}
		}
		response.Total = &total
	}

	return response, nil
}

// loadItems reads the order's line items in insertion order and computes
// each subtotal.
func (h GetPurchaseOrderQueryHandler) loadItems(
	ctx context.Context,
	orderID kernel.UUID,
	currency kernel.Currency,
) ([]GetPurchaseOrderItemResponse, error) {
	items := make([]GetPurchaseOrderItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			quantity,
			unit_price_cents
		FROM purchase_order_items
		WHERE order_id = ?
		ORDER BY position
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetPurchaseOrderItemResponse
		var productID uuid.UUID
		var unitPriceCents int64

		if err = rows.Scan(&productID, &item.Quantity, &unitPriceCents); err != nil {
			return nil, err
		}

		if item.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}

		unitPrice, priceErr := kernel.NewMoneyFromCents(unitPriceCents, currency)
		if priceErr != nil {
			return nil, priceErr
		}
		item.UnitPrice = unitPrice

		subtotal, subErr := unitPrice.Multiply(float64(item.Quantity))
		if subErr != nil {
			return nil, subErr
		}
		item.Subtotal = subtotal

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
