package order

import (
	"errors"
	"fmt"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
)

// MaxItems is the largest number of line items a purchase order may hold.
const MaxItems = 50

var (
	// ErrPurchaseOrderIsNotConstructed is returned when a PurchaseOrder instance was
	// not created through the NewPurchaseOrder factory method. This ensures all
	// orders are properly validated.
	ErrPurchaseOrderIsNotConstructed = errors.New(
		"PurchaseOrder must be created via NewPurchaseOrder constructor")
)

// PurchaseOrder represents a purchase order placed with a supplier. It is the
// aggregate root that owns the order's line items and drives the lifecycle
// from draft through approval and shipping to completion.
//
// PurchaseOrder follows these invariants:
//   - Must have a valid unique identifier and supplier reference
//   - Currency is fixed at creation; every item shares it
//   - Item count never exceeds MaxItems
//   - Items are mutable only while the order is in Draft status
//   - Status transitions follow the rules of the Status state machine
//   - Can only be created through NewPurchaseOrder or RestorePurchaseOrder
//
// The aggregate exclusively owns its items and status; all mutators validate
// fully before mutating, so a failed operation leaves the order unchanged.
type PurchaseOrder struct {
	// id is the unique identifier for the order, assigned at creation
	id kernel.UUID

	// supplierID references the supplier the order is placed with
	supplierID kernel.UUID

	// currency is the currency all item prices must be denominated in
	currency kernel.Currency

	// orderDate is when the order was placed
	orderDate time.Time

	// items is the ordered list of line items, insertion order preserved
	items []OrderItem

	// status represents the current state in the order lifecycle
	status Status

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewPurchaseOrder creates a new PurchaseOrder in Draft status with a freshly
// generated identifier and an empty item list. This is the only way to create
// a new order, ensuring all business invariants are maintained.
//
// Parameters:
//   - supplierID: Identifier of the supplier the order is placed with
//   - currency: Currency all item prices must be denominated in
//   - orderDate: When the order was placed; the zero value defaults to the current time (UTC)
//
// Returns:
//   - *PurchaseOrder: The created order if all validations pass
//   - error: Validation error if the supplier reference or currency is invalid
//
// Example:
//
//	supplierID := kernel.NewUUID()
//	po, err := order.NewPurchaseOrder(supplierID, kernel.USD, time.Time{})
//	if err != nil {
//	    // Handle validation error
//	}
func NewPurchaseOrder(
	supplierID kernel.UUID,
	currency kernel.Currency,
	orderDate time.Time,
) (*PurchaseOrder, error) {
	po := &PurchaseOrder{
		id:            kernel.NewUUID(),
		status:        Draft,
		isConstructed: true,
	}

	if err := errors.Join(
		po.setSupplierID(supplierID),
		po.setCurrency(currency),
	); err != nil {
		return nil, err
	}

	if orderDate.IsZero() {
		orderDate = time.Now().UTC()
	}
	po.orderDate = orderDate

	return po, nil
}

// RestorePurchaseOrder reconstructs a PurchaseOrder from persisted state.
// Unlike NewPurchaseOrder it accepts an existing identifier, status and item
// list, and re-validates every invariant so corrupted rows cannot produce an
// invalid aggregate.
//
// Returns:
//   - *PurchaseOrder: The restored order if all validations pass
//   - error: Validation error if any field or item violates an invariant
func RestorePurchaseOrder(
	id kernel.UUID,
	supplierID kernel.UUID,
	currency kernel.Currency,
	orderDate time.Time,
	status Status,
	items []OrderItem,
) (*PurchaseOrder, error) {
	po := &PurchaseOrder{
		isConstructed: true,
	}

	if err := errors.Join(
		po.setID(id),
		po.setSupplierID(supplierID),
		po.setCurrency(currency),
		po.setStatus(status),
		po.setItems(items),
	); err != nil {
		return nil, err
	}

	if orderDate.IsZero() {
		return nil, errs.NewValueIsRequiredError("orderDate")
	}
	po.orderDate = orderDate

	return po, nil
}

// Validate ensures the PurchaseOrder instance was properly constructed.
// This prevents bypassing validation by directly instantiating the struct.
//
// Returns:
//   - nil if the order is valid
//   - ErrPurchaseOrderIsNotConstructed if the order was not created via a constructor
func (o *PurchaseOrder) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrPurchaseOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
// Orders are considered equal if they have the same ID.
func (o *PurchaseOrder) IsEqual(other *PurchaseOrder) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *PurchaseOrder) ID() kernel.UUID {
	return o.id
}

// SupplierID returns the identifier of the supplier the order is placed with.
func (o *PurchaseOrder) SupplierID() kernel.UUID {
	return o.supplierID
}

// Currency returns the currency all item prices are denominated in.
func (o *PurchaseOrder) Currency() kernel.Currency {
	return o.currency
}

// OrderDate returns when the order was placed.
func (o *PurchaseOrder) OrderDate() time.Time {
	return o.orderDate
}

// Status returns the current status of the order.
func (o *PurchaseOrder) Status() Status {
	return o.status
}

// IsDraft reports whether the order is still in Draft status.
func (o *PurchaseOrder) IsDraft() bool {
	return o.status.IsDraft()
}

// Items returns a copy of the order's line items in insertion order.
// Callers cannot mutate the aggregate's internal list through the returned slice.
func (o *PurchaseOrder) Items() []OrderItem {
	items := make([]OrderItem, len(o.items))
	copy(items, o.items)
	return items
}

// AddItem appends a new line item to the order.
//
// This method enforces the following business rules:
//   - The order must be in Draft status
//   - The order must hold fewer than MaxItems items
//   - The unit price must be a valid Money value in the order's currency
//   - Quantity must lie within [MinQuantity, MaxQuantity]
//
// The item is validated in full before the list is touched; on failure the
// aggregate is left unchanged.
//
// Parameters:
//   - productID: Identifier of the ordered product
//   - quantity: Number of units ordered
//   - unitPrice: Price of a single unit, in the order's currency
//
// Returns:
//   - nil on success
//   - error if any business rule is violated
func (o *PurchaseOrder) AddItem(productID kernel.UUID, quantity int, unitPrice kernel.Money) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if !o.status.IsDraft() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s does not allow adding items, only Draft orders can be modified", o.status),
		)
	}

	if len(o.items) >= MaxItems {
		return errs.NewValueIsOutOfRangeError("items", len(o.items)+1, 0, MaxItems)
	}

	if err := unitPrice.Validate(); err != nil {
		return err
	}

	if !unitPrice.Currency().IsEqual(o.currency) {
		return errs.NewValueIsInvalidErrorWithCause(
			"unitPrice is invalid",
			fmt.Errorf("item priced in %s cannot be added to a %s order", unitPrice.Currency(), o.currency),
		)
	}

	item, err := NewOrderItem(o.id, productID, quantity, unitPrice)
	if err != nil {
		return err
	}

	o.items = append(o.items, item)
	return nil
}

// TotalPrice computes the total price of the order by folding all item
// subtotals, starting from a zero amount in the order's currency. Item order
// is preserved, though addition on exact minor units makes the result
// independent of it.
//
// Returns:
//   - Money: The order total in the order's currency
//   - error: Validation error if the order holds no items
func (o *PurchaseOrder) TotalPrice() (kernel.Money, error) {
	if err := o.Validate(); err != nil {
		return kernel.Money{}, err
	}

	if len(o.items) == 0 {
		return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause(
			"items",
			errors.New("total price of an order without items is undefined"),
		)
	}

	total, err := kernel.NewMoneyFromCents(0, o.currency)
	if err != nil {
		return kernel.Money{}, err
	}

	for _, item := range o.items {
		subtotal, subErr := item.Subtotal()
		if subErr != nil {
			return kernel.Money{}, subErr
		}

		total, err = total.Add(subtotal)
		if err != nil {
			return kernel.Money{}, err
		}
	}

	return total, nil
}

// Submit moves the order from Draft to Submitted, freezing its item list.
//
// Returns:
//   - nil on successful transition
//   - error if the order is not in Draft status
func (o *PurchaseOrder) Submit() error {
	newStatus, err := o.status.Submit()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Approve moves the order from Submitted to Approved.
//
// Returns:
//   - nil on successful transition
//   - error if the order is not in Submitted status
func (o *PurchaseOrder) Approve() error {
	newStatus, err := o.status.Approve()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Ship moves the order from Approved to Shipped.
//
// Returns:
//   - nil on successful transition
//   - error if the order is not in Approved status
func (o *PurchaseOrder) Ship() error {
	newStatus, err := o.status.Ship()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Complete moves the order from Shipped to Completed, the terminal state of
// a fulfilled order.
//
// Returns:
//   - nil on successful transition
//   - error if the order is not in Shipped status
func (o *PurchaseOrder) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel abandons the order. Allowed from any non-terminal status.
//
// Returns:
//   - nil on successful transition
//   - error if the order is already Completed or Cancelled
func (o *PurchaseOrder) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during restoration.
func (o *PurchaseOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setSupplierID validates and sets the supplier reference.
// This is a private method used only during construction.
func (o *PurchaseOrder) setSupplierID(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("supplierId", err)
	}
	o.supplierID = supplierID
	return nil
}

// setCurrency validates and sets the order currency.
// This is a private method used only during construction.
func (o *PurchaseOrder) setCurrency(currency kernel.Currency) error {
	if err := currency.Validate(); err != nil {
		return err
	}
	o.currency = currency
	return nil
}

// setStatus validates and sets the order status.
// This is a private method used only during restoration.
func (o *PurchaseOrder) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setItems validates and sets the item list.
// Every item must be properly constructed, belong to this order, be priced in
// the order currency and the list must not exceed MaxItems.
// This is a private method used only during restoration, after setID.
func (o *PurchaseOrder) setItems(items []OrderItem) error {
	if len(items) > MaxItems {
		return errs.NewValueIsOutOfRangeError("items", len(items), 0, MaxItems)
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if !item.OrderID().IsEqual(o.id) {
			return errs.NewValueIsInvalidErrorWithCause(
				"items",
				fmt.Errorf("item belongs to order %s, not %s", item.OrderID(), o.id),
			)
		}
		if !item.UnitPrice().Currency().IsEqual(o.currency) {
			return errs.NewValueIsInvalidErrorWithCause(
				"items",
				fmt.Errorf("item priced in %s does not match order currency %s",
					item.UnitPrice().Currency(), o.currency),
			)
		}
	}

	o.items = make([]OrderItem, len(items))
	copy(o.items, items)
	return nil
}
