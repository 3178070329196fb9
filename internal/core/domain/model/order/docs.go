// Package order provides domain entities and business logic for purchase order
// management in the procurement system. It implements the PurchaseOrder
// aggregate root with line-item invariants and lifecycle state transitions.
//
// The package includes:
//   - PurchaseOrder: The aggregate root that owns line items and drives the lifecycle
//   - OrderItem: An immutable line item with product, quantity and unit price
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must reference a valid supplier and carry a supported currency
//   - Every line item is priced in the order's currency
//   - An order holds at most 50 items; items are mutable only while in Draft
//   - Order status follows a defined workflow:
//     Draft -> Submitted -> Approved -> Shipped -> Completed
//   - Orders can be cancelled from any non-terminal status
//   - The total price of an order without items is undefined
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
