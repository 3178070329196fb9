package queries

import (
	"context"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOpenPurchaseOrdersQueryHandler retrieves orders still moving through the
// procurement workflow. Completed and cancelled orders are excluded.
//
// Example:
//
//	handler := NewGetOpenPurchaseOrdersQueryHandler(db)
//	query := NewGetOpenPurchaseOrdersQuery()
//
//	openOrders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get open orders: %v", err)
//	    return err
//	}
type GetOpenPurchaseOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOpenPurchaseOrdersQueryHandler creates a handler for open order queries.
// Requires a GORM database connection for query execution.
func NewGetOpenPurchaseOrdersQueryHandler(db *gorm.DB) GetOpenPurchaseOrdersQueryHandler {
	return GetOpenPurchaseOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all non-terminal orders.
// Results are sorted by order date for consistent output.
func (h GetOpenPurchaseOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOpenPurchaseOrdersQuery,
) ([]GetOpenPurchaseOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOpenPurchaseOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.supplier_id,
			o.currency,
			o.order_date,
			o.status,
			COUNT(i.id) AS item_count
		FROM purchase_orders o
		LEFT JOIN purchase_order_items i ON i.order_id = o.id
		WHERE o.status NOT IN (?, ?)
		GROUP BY o.id, o.supplier_id, o.currency, o.order_date, o.status
		ORDER BY o.order_date, o.id
	`, order.Completed, order.Cancelled).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetOpenPurchaseOrdersQueryResponse
		var (
			id         uuid.UUID
			supplierID uuid.UUID
			currency   string
			orderDate  time.Time
			status     int
		)

		err = rows.Scan(
			&id,
			&supplierID,
			&currency,
			&orderDate,
			&status,
			&orderResp.ItemCount,
		)
		if err != nil {
			return nil, err
		}

		if orderResp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if orderResp.SupplierID, err = kernel.UUIDFromBytes(supplierID[:]); err != nil {
			return nil, err
		}
		if orderResp.Currency, err = kernel.CurrencyFromString(currency); err != nil {
			return nil, err
		}
		orderResp.OrderDate = orderDate
		orderResp.Status = order.Status(status)

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
