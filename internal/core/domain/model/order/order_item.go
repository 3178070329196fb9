package order

import (
	"errors"
	"fmt"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

const (
	// MinQuantity is the smallest quantity a line item may carry.
	MinQuantity = 1

	// MaxQuantity is the largest quantity a line item may carry.
	MaxQuantity = 1000
)

// ErrOrderItemIsNotConstructed is returned when an OrderItem was not created
// through the NewOrderItem constructor. This ensures all items are properly validated.
var ErrOrderItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem constructor")

// OrderItem is an immutable line item within a purchase order: a product
// reference, a quantity and a unit price, bound to the order that owns it.
//
// OrderItem follows these invariants:
//   - Must reference the owning order and a product by valid identifiers
//   - Quantity must lie in [MinQuantity, MaxQuantity]
//   - Unit price must be a valid Money value
//   - Can only be created through the NewOrderItem constructor
//
// Items are owned exclusively by the order that created them and are never
// shared or reassigned to another order. All fields are validated at
// construction and immutable thereafter.
type OrderItem struct { //nolint:recvcheck //using for validation
	// orderID references the purchase order this item belongs to
	orderID kernel.UUID

	// productID references the ordered product
	productID kernel.UUID

	// quantity is the number of units ordered
	quantity int

	// unitPrice is the price of a single unit
	unitPrice kernel.Money

	guard guard.ConstructorGuard
}

// NewOrderItem creates a new OrderItem with validation. This is the only way
// to create a valid item; the PurchaseOrder aggregate calls it on behalf of
// callers so that every item is bound to its owning order.
//
// Parameters:
//   - orderID: Identifier of the owning purchase order
//   - productID: Identifier of the ordered product
//   - quantity: Number of units, within [MinQuantity, MaxQuantity]
//   - unitPrice: Price of a single unit
//
// Returns:
//   - OrderItem: The created item if all validations pass
//   - error: Validation error if any parameter is invalid
func NewOrderItem(
	orderID kernel.UUID,
	productID kernel.UUID,
	quantity int,
	unitPrice kernel.Money,
) (OrderItem, error) {
	item := OrderItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setOrderID(orderID),
		item.setProductID(productID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return OrderItem{}, err
	}

	return item, nil
}

// Validate ensures the OrderItem was properly constructed through NewOrderItem.
// The zero value of OrderItem is invalid and will fail this validation.
func (i OrderItem) Validate() error {
	return i.guard.Validate(ErrOrderItemIsNotConstructed)
}

// IsEqual compares two items structurally across all semantic fields.
func (i OrderItem) IsEqual(other OrderItem) bool {
	return i.orderID.IsEqual(other.orderID) &&
		i.productID.IsEqual(other.productID) &&
		i.quantity == other.quantity &&
		i.unitPrice.IsEqual(other.unitPrice)
}

// OrderID returns the identifier of the owning purchase order.
func (i OrderItem) OrderID() kernel.UUID {
	return i.orderID
}

// ProductID returns the identifier of the ordered product.
func (i OrderItem) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the number of units ordered.
func (i OrderItem) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price of a single unit.
func (i OrderItem) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Subtotal returns the unit price multiplied by the quantity.
// Pure computation; the item is never mutated.
//
// Returns:
//   - Money: quantity × unit price in the item's currency
//   - error: Validation error if the item was not properly constructed
func (i OrderItem) Subtotal() (kernel.Money, error) {
	if err := i.Validate(); err != nil {
		return kernel.Money{}, err
	}

	return i.unitPrice.Multiply(float64(i.quantity))
}

// setOrderID validates and sets the owning order reference.
// This is a private method used only during construction.
func (i *OrderItem) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	i.orderID = orderID
	return nil
}

// setProductID validates and sets the product reference.
// This is a private method used only during construction.
func (i *OrderItem) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("productId", err)
	}
	i.productID = productID
	return nil
}

// setQuantity validates and sets the quantity.
// Quantity must lie within [MinQuantity, MaxQuantity].
// This is a private method used only during construction.
func (i *OrderItem) setQuantity(quantity int) error {
	if quantity < MinQuantity || quantity > MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, MinQuantity, MaxQuantity)
	}
	i.quantity = quantity
	return nil
}

// setUnitPrice validates and sets the unit price.
// This is a private method used only during construction.
func (i *OrderItem) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("unit price is not a valid money value: %w", err))
	}
	i.unitPrice = unitPrice
	return nil
}
