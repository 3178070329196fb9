// Package supplier provides the Supplier entity for the procurement system.
//
// Suppliers are passive records: they carry identity, a name and optional
// contact details. Purchase orders reference suppliers by ID and the
// application layer verifies the reference exists before creating an order.
package supplier
