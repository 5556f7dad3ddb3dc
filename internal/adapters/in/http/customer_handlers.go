package http

import (
	"net/http"
	"strconv"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/customer"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GetCustomers handles GET /api/v1/customers with optional phone and
// chat_id filters.
func (s *Server) GetCustomers(ctx echo.Context) error {
	var phone *string
	if raw := ctx.QueryParam("phone"); raw != "" {
		phone = &raw
	}

	var chatHandle *int64
	if raw := ctx.QueryParam("chat_id"); raw != "" {
		handle, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return respondBadRequest(ctx, "chat_id must be an integer")
		}
		chatHandle = &handle
	}

	query, err := queries.NewGetCustomersQuery(phone, chatHandle)
	if err != nil {
		return respondError(ctx, err)
	}

	customers, err := s.getCustomersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondList(ctx, toCustomerListJSON(customers), len(customers))
}

// GetCustomer handles GET /api/v1/customers/:id.
func (s *Server) GetCustomer(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "id must be a valid UUID")
	}

	query, err := queries.NewGetCustomerQuery(customerID)
	if err != nil {
		return respondError(ctx, err)
	}

	found, err := s.getCustomerHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusOK, fromCustomerResponse(found))
}

// ResolveCustomer handles POST /api/v1/customers. The phone number is the
// dedupe key: an existing record is patched with the provided details, a new
// one is created otherwise.
func (s *Server) ResolveCustomer(ctx echo.Context) error {
	var body struct {
		CustomerName string  `json:"customer_name"`
		Phone        string  `json:"phone"`
		ChatHandle   *int64  `json:"chat_id"`
		Address      *string `json:"address"`
	}
	if err := ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewResolveCustomerCommand(
		body.CustomerName, body.Phone, body.ChatHandle, body.Address)
	if err != nil {
		return respondError(ctx, err)
	}

	resolved, err := s.resolveCustomerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusOK, toCustomerJSON(resolved))
}

// UpdateCustomer handles PUT /api/v1/customers/:id with only-provided-fields semantics.
func (s *Server) UpdateCustomer(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "id must be a valid UUID")
	}

	var body struct {
		Name       *string `json:"name"`
		ChatHandle *int64  `json:"chat_id"`
		Address    *string `json:"address"`
	}
	if err = ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateCustomerCommand(customerID, customer.Patch{
		Name:       body.Name,
		ChatHandle: body.ChatHandle,
		Address:    body.Address,
	})
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.updateCustomerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusOK, toCustomerJSON(updated))
}
