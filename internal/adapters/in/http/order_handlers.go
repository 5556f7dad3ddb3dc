package http

import (
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// GetOrders handles GET /api/v1/orders with an optional status filter.
func (s *Server) GetOrders(ctx echo.Context) error {
	var statusFilter *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := order.StatusFromString(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		statusFilter = &status
	}

	query, err := queries.NewGetOrdersQuery(statusFilter)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondList(ctx, toOrderListJSON(orders), len(orders))
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body struct {
		OrderID         string   `json:"order_id"`
		CustomerName    string   `json:"customer_name"`
		CustomerPhone   string   `json:"customer_phone"`
		ChatHandle      *int64   `json:"chat_id"`
		CustomerAddress *string  `json:"customer_address"`
		Address         string   `json:"address"`
		Lat             *float64 `json:"lat"`
		Lng             *float64 `json:"lng"`
		Status          *string  `json:"status"`
	}
	if err := ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}
	if body.Lat == nil || body.Lng == nil {
		return respondBadRequest(ctx, "missing required fields: lat, lng")
	}

	var initialStatus *order.Status
	if body.Status != nil {
		parsed, err := order.StatusFromString(*body.Status)
		if err != nil {
			return respondError(ctx, err)
		}
		initialStatus = &parsed
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		body.OrderID,
		body.Address,
		kernel.NewLocation(*body.Lat, *body.Lng),
		initialStatus,
		body.CustomerName,
		body.CustomerPhone,
		body.ChatHandle,
		body.CustomerAddress,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusCreated, toOrderJSON(created))
}

// GetOrder handles GET /api/v1/orders/:id where :id is either the external
// order_id or the internal UUID.
func (s *Server) GetOrder(ctx echo.Context) error {
	ref, err := order.NewRef(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(ref)
	if err != nil {
		return respondError(ctx, err)
	}

	found, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusOK, fromOrderResponse(found))
}

// UpdateOrder handles PUT /api/v1/orders/:id with only-provided-fields semantics.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	ref, err := order.NewRef(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var body struct {
		Address *string  `json:"address"`
		Lat     *float64 `json:"lat"`
		Lng     *float64 `json:"lng"`
		Status  *string  `json:"status"`
	}
	if err = ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}
	if (body.Lat == nil) != (body.Lng == nil) {
		return respondBadRequest(ctx, "lat and lng must be provided together")
	}

	patch := order.Patch{Address: body.Address}
	if body.Lat != nil {
		location := kernel.NewLocation(*body.Lat, *body.Lng)
		patch.Location = &location
	}
	if body.Status != nil {
		status, statusErr := order.StatusFromString(*body.Status)
		if statusErr != nil {
			return respondError(ctx, statusErr)
		}
		patch.Status = &status
	}

	cmd, err := commands.NewUpdateOrderCommand(ref, patch)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusOK, toOrderJSON(updated))
}

// AssignDriver handles POST /api/v1/orders/:id/assign-driver.
func (s *Server) AssignDriver(ctx echo.Context) error {
	ref, err := order.NewRef(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var body struct {
		DriverID string `json:"driver_id"`
	}
	if err = ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	driverID, err := kernel.UUIDFromString(body.DriverID)
	if err != nil {
		return respondBadRequest(ctx, "driver_id must be a valid UUID")
	}

	cmd, err := commands.NewAssignDriverCommand(ref, driverID)
	if err != nil {
		return respondError(ctx, err)
	}

	assigned, err := s.assignDriverHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusOK, toOrderJSON(assigned))
}

// AutoAssignDriver handles POST /api/v1/orders/:id/auto-assign by picking
// the nearest available driver.
func (s *Server) AutoAssignDriver(ctx echo.Context) error {
	ref, err := order.NewRef(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAutoAssignDriverCommand(ref)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.autoAssignDriverHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusOK, map[string]any{
		"order":       toOrderJSON(result.Order),
		"driver":      toDriverJSON(result.Driver),
		"distance_km": result.DistanceKm,
		"method":      result.Method,
	})
}

// UnassignDriver handles POST /api/v1/orders/:id/unassign-driver.
func (s *Server) UnassignDriver(ctx echo.Context) error {
	ref, err := order.NewRef(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUnassignDriverCommand(ref)
	if err != nil {
		return respondError(ctx, err)
	}

	released, err := s.unassignDriverHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusOK, toOrderJSON(released))
}

// GetCustomerOrders handles GET /api/v1/orders/customer/:customerId.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("customerId"))
	if err != nil {
		return respondBadRequest(ctx, "customer id must be a valid UUID")
	}

	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondList(ctx, toOrderListJSON(orders), len(orders))
}
