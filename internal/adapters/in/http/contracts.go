package http

// Error is the JSON body returned for all failed requests.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreatedResponse carries the identifier of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// NewSupplier is the request body for supplier registration.
type NewSupplier struct {
	Name         string `json:"name"`
	ContactEmail string `json:"contactEmail,omitempty"`
}

// Supplier represents a registered supplier.
type Supplier struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ContactEmail string `json:"contactEmail,omitempty"`
}

// NewPurchaseOrder is the request body for opening a draft order.
// OrderDate is optional RFC 3339; it defaults to the current time.
type NewPurchaseOrder struct {
	SupplierID string `json:"supplierId"`
	Currency   string `json:"currency"`
	OrderDate  string `json:"orderDate,omitempty"`
}

// NewOrderItem is the request body for adding a line item to a draft order.
type NewOrderItem struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// Money represents a monetary amount in a response body.
type Money struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// OrderItem represents one line item of a purchase order.
type OrderItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	UnitPrice Money  `json:"unitPrice"`
	Subtotal  Money  `json:"subtotal"`
}

// PurchaseOrder represents a complete purchase order with line items.
// Total is omitted when the order has no items.
type PurchaseOrder struct {
	ID         string      `json:"id"`
	SupplierID string      `json:"supplierId"`
	Currency   string      `json:"currency"`
	OrderDate  string      `json:"orderDate"`
	Status     string      `json:"status"`
	Items      []OrderItem `json:"items"`
	Total      *Money      `json:"total,omitempty"`
}

// OpenPurchaseOrder represents one order still moving through the workflow.
type OpenPurchaseOrder struct {
	ID         string `json:"id"`
	SupplierID string `json:"supplierId"`
	Currency   string `json:"currency"`
	OrderDate  string `json:"orderDate"`
	Status     string `json:"status"`
	ItemCount  int    `json:"itemCount"`
}
