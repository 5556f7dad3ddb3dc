// Package http exposes the dispatch API over labstack/echo.
// Handlers translate request payloads into commands and queries, and map
// domain error kinds onto HTTP status codes.
package http

import (
	"errors"
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server holds the command and query handlers backing the HTTP routes.
type Server struct {
	// Command handlers
	createOrderHandler          commands.CreateOrderCommandHandler
	updateOrderHandler          commands.UpdateOrderCommandHandler
	assignDriverHandler         commands.AssignDriverCommandHandler
	autoAssignDriverHandler     commands.AutoAssignDriverCommandHandler
	unassignDriverHandler       commands.UnassignDriverCommandHandler
	createDriverHandler         commands.CreateDriverCommandHandler
	updateDriverHandler         commands.UpdateDriverCommandHandler
	updateDriverLocationHandler commands.UpdateDriverLocationCommandHandler
	resolveCustomerHandler      commands.ResolveCustomerCommandHandler
	updateCustomerHandler       commands.UpdateCustomerCommandHandler

	// Query handlers
	getOrdersHandler         queries.GetOrdersQueryHandler
	getOrderHandler          queries.GetOrderQueryHandler
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler
	getDriversHandler        queries.GetDriversQueryHandler
	getDriverHandler         queries.GetDriverQueryHandler
	getCustomersHandler      queries.GetCustomersQueryHandler
	getCustomerHandler       queries.GetCustomerQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	assignDriverHandler commands.AssignDriverCommandHandler,
	autoAssignDriverHandler commands.AutoAssignDriverCommandHandler,
	unassignDriverHandler commands.UnassignDriverCommandHandler,
	createDriverHandler commands.CreateDriverCommandHandler,
	updateDriverHandler commands.UpdateDriverCommandHandler,
	updateDriverLocationHandler commands.UpdateDriverLocationCommandHandler,
	resolveCustomerHandler commands.ResolveCustomerCommandHandler,
	updateCustomerHandler commands.UpdateCustomerCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	getDriversHandler queries.GetDriversQueryHandler,
	getDriverHandler queries.GetDriverQueryHandler,
	getCustomersHandler queries.GetCustomersQueryHandler,
	getCustomerHandler queries.GetCustomerQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:          createOrderHandler,
		updateOrderHandler:          updateOrderHandler,
		assignDriverHandler:         assignDriverHandler,
		autoAssignDriverHandler:     autoAssignDriverHandler,
		unassignDriverHandler:       unassignDriverHandler,
		createDriverHandler:         createDriverHandler,
		updateDriverHandler:         updateDriverHandler,
		updateDriverLocationHandler: updateDriverLocationHandler,
		resolveCustomerHandler:      resolveCustomerHandler,
		updateCustomerHandler:       updateCustomerHandler,
		getOrdersHandler:            getOrdersHandler,
		getOrderHandler:             getOrderHandler,
		getCustomerOrdersHandler:    getCustomerOrdersHandler,
		getDriversHandler:           getDriversHandler,
		getDriverHandler:            getDriverHandler,
		getCustomersHandler:         getCustomersHandler,
		getCustomerHandler:          getCustomerHandler,
	}
}

// RegisterRoutes wires the API routes onto the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id", s.UpdateOrder)
	api.POST("/orders/:id/assign-driver", s.AssignDriver)
	api.POST("/orders/:id/auto-assign", s.AutoAssignDriver)
	api.POST("/orders/:id/unassign-driver", s.UnassignDriver)
	api.GET("/orders/customer/:customerId", s.GetCustomerOrders)

	api.GET("/drivers", s.GetDrivers)
	api.POST("/drivers", s.CreateDriver)
	api.GET("/drivers/:id", s.GetDriver)
	api.PUT("/drivers/:id", s.UpdateDriver)
	api.PUT("/drivers/:id/location", s.UpdateDriverLocation)

	api.GET("/customers", s.GetCustomers)
	api.POST("/customers", s.ResolveCustomer)
	api.GET("/customers/:id", s.GetCustomer)
	api.PUT("/customers/:id", s.UpdateCustomer)
}

// successResponse is the envelope for successful responses.
type successResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
	Count   *int `json:"count,omitempty"`
}

// errorResponse is the envelope for failed responses.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func respondData(ctx echo.Context, status int, data any) error {
	return ctx.JSON(status, successResponse{Success: true, Data: data})
}

func respondList(ctx echo.Context, data any, count int) error {
	return ctx.JSON(http.StatusOK, successResponse{Success: true, Data: data, Count: &count})
}

func respondBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{Success: false, Error: message})
}

// respondError maps domain error kinds onto HTTP status codes: missing
// objects are 404, validation and precondition failures are 400, anything
// else is a 500.
func respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrPreconditionFailed):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, errorResponse{Success: false, Error: err.Error()})
}
