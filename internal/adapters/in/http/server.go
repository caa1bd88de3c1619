// Package http provides the REST adapter: request decoding, use case
// dispatch, and mapping of domain errors to status codes.
package http

import (
	"errors"
	"net/http"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/cart"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server wires the HTTP endpoints to the command and query handlers.
type Server struct {
	// Command handlers
	registerCustomerHandler commands.RegisterCustomerCommandHandler
	createOrderHandler      commands.CreateOrderCommandHandler
	confirmOrderHandler     commands.ConfirmOrderCommandHandler
	shipOrderHandler        commands.ShipOrderCommandHandler
	deliverOrderHandler     commands.DeliverOrderCommandHandler
	cancelOrderHandler      commands.CancelOrderCommandHandler

	// Query handlers
	getOrderHandler          queries.GetOrderQueryHandler
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler
	listProductsHandler      queries.ListProductsQueryHandler
	getStockHandler          queries.GetStockQueryHandler
}

// NewServer creates the HTTP server with the required handlers.
func NewServer(
	registerCustomerHandler commands.RegisterCustomerCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	confirmOrderHandler commands.ConfirmOrderCommandHandler,
	shipOrderHandler commands.ShipOrderCommandHandler,
	deliverOrderHandler commands.DeliverOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	listProductsHandler queries.ListProductsQueryHandler,
	getStockHandler queries.GetStockQueryHandler,
) *Server {
	return &Server{
		registerCustomerHandler:  registerCustomerHandler,
		createOrderHandler:       createOrderHandler,
		confirmOrderHandler:      confirmOrderHandler,
		shipOrderHandler:         shipOrderHandler,
		deliverOrderHandler:      deliverOrderHandler,
		cancelOrderHandler:       cancelOrderHandler,
		getOrderHandler:          getOrderHandler,
		getCustomerOrdersHandler: getCustomerOrdersHandler,
		listProductsHandler:      listProductsHandler,
		getStockHandler:          getStockHandler,
	}
}

// RegisterRoutes attaches all endpoints under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/customers", s.RegisterCustomer)
	api.GET("/customers/:customerId/orders", s.GetCustomerOrders)

	api.GET("/products", s.ListProducts)
	api.GET("/products/:productId/stock", s.GetStock)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:orderId", s.GetOrder)
	api.POST("/orders/:orderId/confirm", s.ConfirmOrder)
	api.POST("/orders/:orderId/ship", s.ShipOrder)
	api.POST("/orders/:orderId/deliver", s.DeliverOrder)
	api.POST("/orders/:orderId/cancel", s.CancelOrder)
}

// RegisterCustomer handles POST /api/v1/customers.
func (s *Server) RegisterCustomer(ctx echo.Context) error {
	var req RegisterCustomerRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	zone, err := kernel.ZoneFromString(req.Zone)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid zone: "+req.Zone)
	}

	destination, err := kernel.NewDestination(req.City, zone)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid destination: "+err.Error())
	}

	customerID := kernel.NewUUID()
	cmd, err := commands.NewRegisterCustomerCommand(customerID, req.Name, req.Email, req.Phone, destination)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid customer data: "+err.Error())
	}

	if err = s.registerCustomerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, RegisterCustomerResponse{ID: customerID.String()})
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid customer id")
	}

	lines := make([]commands.OrderLine, 0, len(req.Lines))
	for _, line := range req.Lines {
		productID, lineErr := kernel.UUIDFromString(line.ProductID)
		if lineErr != nil {
			return errorJSON(ctx, http.StatusBadRequest, "Invalid product id: "+line.ProductID)
		}
		lines = append(lines, commands.OrderLine{ProductID: productID, Quantity: line.Quantity})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, lines, req.Urgent)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id")
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromQueryResponse(resp))
}

// ConfirmOrder handles POST /api/v1/orders/{orderId}/confirm.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	return s.transition(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewConfirmOrderCommand(orderID)
		if err != nil {
			return err
		}
		return s.confirmOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// ShipOrder handles POST /api/v1/orders/{orderId}/ship.
func (s *Server) ShipOrder(ctx echo.Context) error {
	return s.transition(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewShipOrderCommand(orderID)
		if err != nil {
			return err
		}
		return s.shipOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// DeliverOrder handles POST /api/v1/orders/{orderId}/deliver.
func (s *Server) DeliverOrder(ctx echo.Context) error {
	return s.transition(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewDeliverOrderCommand(orderID)
		if err != nil {
			return err
		}
		return s.deliverOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	return s.transition(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewCancelOrderCommand(orderID)
		if err != nil {
			return err
		}
		return s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// GetCustomerOrders handles GET /api/v1/customers/{customerId}/orders.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("customerId"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid customer id")
	}

	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid customer id")
	}

	summaries, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]OrderSummary, len(summaries))
	for i, summary := range summaries {
		response[i] = OrderSummary{
			ID:             summary.ID,
			Status:         summary.Status,
			ItemCount:      summary.ItemCount,
			Total:          summary.Total,
			TrackingNumber: summary.TrackingNumber,
			CreatedAt:      summary.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ListProducts handles GET /api/v1/products with an optional ?category=
// filter.
func (s *Server) ListProducts(ctx echo.Context) error {
	query := queries.NewListProductsQuery()

	if name := ctx.QueryParam("category"); name != "" {
		category, err := product.CategoryFromString(name)
		if err != nil {
			return errorJSON(ctx, http.StatusBadRequest, "Invalid category: "+name)
		}
		query, err = queries.NewListProductsByCategoryQuery(category)
		if err != nil {
			return errorJSON(ctx, http.StatusBadRequest, "Invalid category: "+name)
		}
	}

	products, err := s.listProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]Product, len(products))
	for i, p := range products {
		response[i] = Product{
			ID:          p.ID,
			Name:        p.Name,
			Category:    p.Category,
			Price:       p.Price,
			WeightGrams: p.WeightGrams,
			Available:   p.Available,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetStock handles GET /api/v1/products/{productId}/stock.
func (s *Server) GetStock(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("productId"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid product id")
	}

	query, err := queries.NewGetStockQuery(productID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid product id")
	}

	resp, err := s.getStockHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Stock{ProductID: resp.ProductID, Available: resp.Available})
}

func (s *Server) transition(ctx echo.Context, run func(orderID kernel.UUID) error) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id")
	}

	if err = run(orderID); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// domainError maps domain failures to HTTP status codes.
func domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, ports.ErrInsufficientStock),
		errors.Is(err, order.ErrInvalidTransition):
		return errorJSON(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrNoApplicableStrategy):
		return errorJSON(ctx, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, cart.ErrEmptyCart),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	default:
		return errorJSON(ctx, http.StatusInternalServerError, err.Error())
	}
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{Code: code, Message: message})
}

func orderFromQueryResponse(resp queries.GetOrderQueryResponse) Order {
	o := Order{
		ID:             resp.ID,
		CustomerID:     resp.CustomerID,
		Status:         resp.Status,
		Urgent:         resp.Urgent,
		Destination:    resp.Destination,
		Subtotal:       resp.Subtotal,
		Total:          resp.Total,
		ShippingMethod: resp.ShippingMethod,
		ShippingCost:   resp.ShippingCost,
		TrackingNumber: resp.TrackingNumber,
		CreatedAt:      resp.CreatedAt,
	}

	if !resp.EstimatedAt.IsZero() {
		eta := resp.EstimatedAt
		o.EstimatedAt = &eta
	}

	for _, item := range resp.Items {
		o.Items = append(o.Items, OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			Subtotal:    item.Subtotal,
		})
	}

	for _, change := range resp.History {
		o.History = append(o.History, StatusChange{Status: change.Status, At: change.At})
	}

	return o
}
