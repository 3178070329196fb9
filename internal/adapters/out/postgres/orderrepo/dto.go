// Package orderrepo provides data transfer objects and mapping functions for
// purchase order persistence. This package implements the repository pattern
// for the purchase order aggregate, handling the conversion between domain
// entities and database representations.
package orderrepo

import (
	"sort"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting purchase order
// aggregates. Line items live in their own table and are loaded with the order.
type OrderDTO struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	SupplierID uuid.UUID      `gorm:"type:uuid;not null;index"`
	Currency   string         `gorm:"type:varchar(3);not null"`
	OrderDate  time.Time      `gorm:"not null"`
	Status     int            `gorm:"type:int;not null;index"`
	Items      []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for purchase order entities.
// Overrides GORM's default naming convention to use "purchase_orders".
func (OrderDTO) TableName() string {
	return "purchase_orders"
}

// OrderItemDTO represents the database structure for persisting order line items.
// Rows carry a surrogate key and a position column preserving insertion order;
// the unit price is stored in minor units to keep arithmetic exact.
type OrderItemDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID      uuid.UUID `gorm:"type:uuid;not null"`
	Quantity       int       `gorm:"type:int;not null"`
	UnitPriceCents int64     `gorm:"type:bigint;not null"`
	Position       int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for order line items.
// Overrides GORM's default naming convention to use "purchase_order_items".
func (OrderItemDTO) TableName() string {
	return "purchase_order_items"
}

// fromDomain converts a purchase order aggregate to its database representation.
// Item rows get fresh surrogate keys on every save; Update replaces the item
// set wholesale, so stable row identity is not needed.
func fromDomain(aggregate *order.PurchaseOrder) OrderDTO {
	orderID := aggregate.ID().Bytes()
	domainItems := aggregate.Items()
	items := make([]OrderItemDTO, 0, len(domainItems))

	for position, item := range domainItems {
		items = append(items, OrderItemDTO{
			ID:             uuid.New(),
			OrderID:        orderID,
			ProductID:      item.ProductID().Bytes(),
			Quantity:       item.Quantity(),
			UnitPriceCents: item.UnitPrice().Cents(),
			Position:       position,
		})
	}

	return OrderDTO{
		ID:         orderID,
		SupplierID: aggregate.SupplierID().Bytes(),
		Currency:   aggregate.Currency().String(),
		OrderDate:  aggregate.OrderDate(),
		Status:     int(aggregate.Status()),
		Items:      items,
	}
}

// toDomain converts a database DTO to a purchase order aggregate.
// Reconstructs the complete aggregate including all line items using
// RestorePurchaseOrder, which re-validates every invariant.
func toDomain(dto OrderDTO) (*order.PurchaseOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	supplierID, err := kernel.UUIDFromBytes(dto.SupplierID[:])
	if err != nil {
		return nil, err
	}

	currency, err := kernel.CurrencyFromString(dto.Currency)
	if err != nil {
		return nil, err
	}

	sort.Slice(dto.Items, func(i, j int) bool {
		return dto.Items[i].Position < dto.Items[j].Position
	})

	items := make([]order.OrderItem, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := itemToDomain(itemDto, id, currency)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestorePurchaseOrder(
		id, supplierID, currency, dto.OrderDate, order.Status(dto.Status), items)
}

// itemToDomain converts a line item DTO to its domain value.
// The unit price currency always comes from the owning order.
func itemToDomain(dto OrderItemDTO, orderID kernel.UUID, currency kernel.Currency) (order.OrderItem, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.OrderItem{}, err
	}

	unitPrice, err := kernel.NewMoneyFromCents(dto.UnitPriceCents, currency)
	if err != nil {
		return order.OrderItem{}, err
	}

	return order.NewOrderItem(orderID, productID, dto.Quantity, unitPrice)
}
