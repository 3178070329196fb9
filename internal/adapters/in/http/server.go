// Package http exposes the procurement use cases over a REST API.
// Handlers translate between HTTP contracts and application commands
// and queries, mapping domain errors onto HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the REST API for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createSupplierHandler commands.CreateSupplierCommandHandler
	createOrderHandler    commands.CreatePurchaseOrderCommandHandler
	addOrderItemHandler   commands.AddOrderItemCommandHandler
	submitOrderHandler    commands.SubmitPurchaseOrderCommandHandler
	approveOrderHandler   commands.ApprovePurchaseOrderCommandHandler
	shipOrderHandler      commands.ShipPurchaseOrderCommandHandler
	completeOrderHandler  commands.CompletePurchaseOrderCommandHandler
	cancelOrderHandler    commands.CancelPurchaseOrderCommandHandler

	// Query handlers
	getPurchaseOrderHandler queries.GetPurchaseOrderQueryHandler
	getOpenOrdersHandler    queries.GetOpenPurchaseOrdersQueryHandler
	getSuppliersHandler     queries.GetSuppliersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createSupplierHandler commands.CreateSupplierCommandHandler,
	createOrderHandler commands.CreatePurchaseOrderCommandHandler,
	addOrderItemHandler commands.AddOrderItemCommandHandler,
	submitOrderHandler commands.SubmitPurchaseOrderCommandHandler,
	approveOrderHandler commands.ApprovePurchaseOrderCommandHandler,
	shipOrderHandler commands.ShipPurchaseOrderCommandHandler,
	completeOrderHandler commands.CompletePurchaseOrderCommandHandler,
	cancelOrderHandler commands.CancelPurchaseOrderCommandHandler,
	getPurchaseOrderHandler queries.GetPurchaseOrderQueryHandler,
	getOpenOrdersHandler queries.GetOpenPurchaseOrdersQueryHandler,
	getSuppliersHandler queries.GetSuppliersQueryHandler,
) *Server {
	return &Server{
		createSupplierHandler:   createSupplierHandler,
		createOrderHandler:      createOrderHandler,
		addOrderItemHandler:     addOrderItemHandler,
		submitOrderHandler:      submitOrderHandler,
		approveOrderHandler:     approveOrderHandler,
		shipOrderHandler:        shipOrderHandler,
		completeOrderHandler:    completeOrderHandler,
		cancelOrderHandler:      cancelOrderHandler,
		getPurchaseOrderHandler: getPurchaseOrderHandler,
		getOpenOrdersHandler:    getOpenOrdersHandler,
		getSuppliersHandler:     getSuppliersHandler,
	}
}

// RegisterRoutes attaches all API endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/suppliers", s.CreateSupplier)
	api.GET("/suppliers", s.GetSuppliers)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/active", s.GetActiveOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/items", s.AddOrderItem)
	api.POST("/orders/:id/submit", s.SubmitOrder)
	api.POST("/orders/:id/approve", s.ApproveOrder)
	api.POST("/orders/:id/ship", s.ShipOrder)
	api.POST("/orders/:id/complete", s.CompleteOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
}

// CreateSupplier handles POST /api/v1/suppliers - registers a new supplier.
func (s *Server) CreateSupplier(ctx echo.Context) error {
	var newSupplier NewSupplier
	if err := ctx.Bind(&newSupplier); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateSupplierCommand(newSupplier.Name, newSupplier.ContactEmail)
	if err != nil {
		return badRequest(ctx, "Invalid supplier data: "+err.Error())
	}

	supplierID, err := s.createSupplierHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err, "Failed to create supplier")
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: supplierID.String()})
}

// GetSuppliers handles GET /api/v1/suppliers - retrieves all suppliers.
func (s *Server) GetSuppliers(ctx echo.Context) error {
	query := queries.NewGetSuppliersQuery()

	suppliers, err := s.getSuppliersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve suppliers")
	}

	response := make([]Supplier, len(suppliers))
	for i, supplier := range suppliers {
		response[i] = Supplier{
			ID:           supplier.ID.String(),
			Name:         supplier.Name,
			ContactEmail: supplier.ContactEmail,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - opens a new draft purchase order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder NewPurchaseOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	supplierID, err := kernel.UUIDFromString(newOrder.SupplierID)
	if err != nil {
		return badRequest(ctx, "Invalid supplier id: "+err.Error())
	}

	currency, err := kernel.CurrencyFromString(newOrder.Currency)
	if err != nil {
		return badRequest(ctx, "Invalid currency: "+err.Error())
	}

	var orderDate time.Time
	if newOrder.OrderDate != "" {
		if orderDate, err = time.Parse(time.RFC3339, newOrder.OrderDate); err != nil {
			return badRequest(ctx, "Invalid order date, expected RFC 3339: "+err.Error())
		}
	}

	cmd, err := commands.NewCreatePurchaseOrderCommand(supplierID, currency, orderDate)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	orderID, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:id - retrieves a single purchase order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetPurchaseOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	result, err := s.getPurchaseOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err, "Failed to retrieve order")
	}

	items := make([]OrderItem, len(result.Items))
	for i, item := range result.Items {
		items[i] = OrderItem{
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity,
			UnitPrice: Money{Amount: item.UnitPrice.Amount(), Currency: item.UnitPrice.Currency().String()},
			Subtotal:  Money{Amount: item.Subtotal.Amount(), Currency: item.Subtotal.Currency().String()},
		}
	}

	response := PurchaseOrder{
		ID:         result.ID.String(),
		SupplierID: result.SupplierID.String(),
		Currency:   result.Currency.String(),
		OrderDate:  result.OrderDate.Format(time.RFC3339),
		Status:     result.Status.String(),
		Items:      items,
	}
	if result.Total != nil {
		response.Total = &Money{Amount: result.Total.Amount(), Currency: result.Total.Currency().String()}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetActiveOrders handles GET /api/v1/orders/active - retrieves all open orders.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetOpenPurchaseOrdersQuery()

	orders, err := s.getOpenOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve orders")
	}

	response := make([]OpenPurchaseOrder, len(orders))
	for i, order := range orders {
		response[i] = OpenPurchaseOrder{
			ID:         order.ID.String(),
			SupplierID: order.SupplierID.String(),
			Currency:   order.Currency.String(),
			OrderDate:  order.OrderDate.Format(time.RFC3339),
			Status:     order.Status.String(),
			ItemCount:  order.ItemCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddOrderItem handles POST /api/v1/orders/:id/items - adds a line item to a draft order.
func (s *Server) AddOrderItem(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var newItem NewOrderItem
	if err = ctx.Bind(&newItem); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	productID, err := kernel.UUIDFromString(newItem.ProductID)
	if err != nil {
		return badRequest(ctx, "Invalid product id: "+err.Error())
	}

	// The line item carries the order's currency; the aggregate rejects mismatches
	order, err := s.getPurchaseOrderHandler.Handle(
		ctx.Request().Context(),
		mustGetPurchaseOrderQuery(orderID),
	)
	if err != nil {
		return domainError(ctx, err, "Failed to retrieve order")
	}

	unitPrice, err := kernel.NewMoney(newItem.UnitPrice, order.Currency)
	if err != nil {
		return badRequest(ctx, "Invalid unit price: "+err.Error())
	}

	cmd, err := commands.NewAddOrderItemCommand(orderID, productID, newItem.Quantity, unitPrice)
	if err != nil {
		return badRequest(ctx, "Invalid item data: "+err.Error())
	}

	if err = s.addOrderItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err, "Failed to add item")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SubmitOrder handles POST /api/v1/orders/:id/submit.
func (s *Server) SubmitOrder(ctx echo.Context) error {
	return s.transitionOrder(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewSubmitPurchaseOrderCommand(orderID)
		if err != nil {
			return err
		}
		return s.submitOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// ApproveOrder handles POST /api/v1/orders/:id/approve.
func (s *Server) ApproveOrder(ctx echo.Context) error {
	return s.transitionOrder(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewApprovePurchaseOrderCommand(orderID)
		if err != nil {
			return err
		}
		return s.approveOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// ShipOrder handles POST /api/v1/orders/:id/ship.
func (s *Server) ShipOrder(ctx echo.Context) error {
	return s.transitionOrder(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewShipPurchaseOrderCommand(orderID)
		if err != nil {
			return err
		}
		return s.shipOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// CompleteOrder handles POST /api/v1/orders/:id/complete.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	return s.transitionOrder(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewCompletePurchaseOrderCommand(orderID)
		if err != nil {
			return err
		}
		return s.completeOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	return s.transitionOrder(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewCancelPurchaseOrderCommand(orderID)
		if err != nil {
			return err
		}
		return s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// transitionOrder parses the order id from the path and applies a lifecycle
// transition, translating domain errors into HTTP status codes.
func (s *Server) transitionOrder(ctx echo.Context, apply func(kernel.UUID) error) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	if err = apply(orderID); err != nil {
		return domainError(ctx, err, "Failed to update order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// mustGetPurchaseOrderQuery builds a single-order query from an already
// validated order id.
func mustGetPurchaseOrderQuery(orderID kernel.UUID) queries.GetPurchaseOrderQuery {
	query, _ := queries.NewGetPurchaseOrderQuery(orderID)
	return query
}

// domainError maps application and domain errors to HTTP responses.
// Missing aggregates map to 404, violated business rules to 422,
// invalid input to 400, everything else to 500.
func domainError(ctx echo.Context, err error, message string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound), errors.Is(err, commands.ErrSupplierNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: message + ": " + err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: message + ": " + err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsRequired):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: message + ": " + err.Error(),
		})
	default:
		return internalError(ctx, message)
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
