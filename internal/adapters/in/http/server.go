package http

import (
	"errors"
	"net/http"

	"pizzaparty/internal/core/application/usecases/commands"
	"pizzaparty/internal/core/application/usecases/queries"
	"pizzaparty/internal/core/domain/model/kernel"
	"pizzaparty/internal/core/domain/model/order"
	"pizzaparty/internal/core/domain/services"
	"pizzaparty/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests for the order tracking API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler   commands.CreateOrderCommandHandler
	takeChargeHandler    commands.TakeChargeCommandHandler
	completeOrderHandler commands.CompleteOrderCommandHandler

	// Query handlers
	getWaitingOrdersHandler queries.GetWaitingOrdersQueryHandler
	getOrderByCodeHandler   queries.GetOrderByCodeQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	takeChargeHandler commands.TakeChargeCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	getWaitingOrdersHandler queries.GetWaitingOrdersQueryHandler,
	getOrderByCodeHandler queries.GetOrderByCodeQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		takeChargeHandler:       takeChargeHandler,
		completeOrderHandler:    completeOrderHandler,
		getWaitingOrdersHandler: getWaitingOrdersHandler,
		getOrderByCodeHandler:   getOrderByCodeHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
// The waiting route is registered before the code lookup so the static
// segment wins over the parameter.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/waiting", s.GetWaitingOrders)
	api.GET("/orders/:code", s.GetOrderByCode)
	api.PUT("/orders/:id/take-charge", s.TakeCharge)
	api.PUT("/orders/:id/complete", s.CompleteOrder)
}

// CreateOrder handles POST /api/v1/orders - registers a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateOrderCommand(newOrder.Description)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(
		created.ID(), created.Code(), created.Description(), created.Status(),
	))
}

// GetWaitingOrders handles GET /api/v1/orders/waiting - lists the kitchen queue.
func (s *Server) GetWaitingOrders(ctx echo.Context) error {
	query := queries.NewGetWaitingOrdersQuery()

	orders, err := s.getWaitingOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to retrieve waiting orders")
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = toOrderResponse(o.ID, o.Code, o.Description, o.Status)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderByCode handles GET /api/v1/orders/:code - looks up one order.
func (s *Server) GetOrderByCode(ctx echo.Context) error {
	code, err := order.CodeFromString(ctx.Param("code"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order code: " + err.Error(),
		})
	}

	query, err := queries.NewGetOrderByCodeQuery(code)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order code: " + err.Error(),
		})
	}

	found, err := s.getOrderByCodeHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to retrieve order")
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(
		found.ID, found.Code, found.Description, found.Status,
	))
}

// TakeCharge handles PUT /api/v1/orders/:id/take-charge - starts preparation.
func (s *Server) TakeCharge(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	cmd, err := commands.NewTakeChargeCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	updated, err := s.takeChargeHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to take charge of order")
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(
		updated.ID(), updated.Code(), updated.Description(), updated.Status(),
	))
}

// CompleteOrder handles PUT /api/v1/orders/:id/complete - finishes preparation.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	updated, err := s.completeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to complete order")
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(
		updated.ID(), updated.Code(), updated.Description(), updated.Status(),
	))
}

// errorResponse maps domain and application errors onto HTTP status codes.
func (s *Server) errorResponse(ctx echo.Context, err error, message string) error {
	status := http.StatusInternalServerError

	var notFoundErr *errs.ObjectNotFoundError
	switch {
	case errors.As(err, &notFoundErr) || errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, order.ErrAnotherOrderInPreparation),
		errors.Is(err, order.ErrInvalidStateTransition):
		status = http.StatusConflict
	case errors.Is(err, services.ErrSequenceExhausted),
		errors.Is(err, commands.ErrCodeGenerationFailed):
		status = http.StatusServiceUnavailable
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: message + ": " + err.Error(),
	})
}

func toOrderResponse(id kernel.UUID, code order.Code, description string, status order.Status) Order {
	return Order{
		Id:          id.Bytes(),
		Code:        code.String(),
		Description: description,
		Status:      status.String(),
	}
}
