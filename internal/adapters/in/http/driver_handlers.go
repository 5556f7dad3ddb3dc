package http

import (
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GetDrivers handles GET /api/v1/drivers with an optional status filter.
func (s *Server) GetDrivers(ctx echo.Context) error {
	var statusFilter *driver.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := driver.StatusFromString(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		statusFilter = &status
	}

	query, err := queries.NewGetDriversQuery(statusFilter)
	if err != nil {
		return respondError(ctx, err)
	}

	drivers, err := s.getDriversHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondList(ctx, toDriverListJSON(drivers), len(drivers))
}

// CreateDriver handles POST /api/v1/drivers. Registered drivers start
// available; coordinates are optional at registration time.
func (s *Server) CreateDriver(ctx echo.Context) error {
	var body struct {
		Name         string   `json:"name"`
		Phone        string   `json:"phone"`
		VehicleType  string   `json:"vehicle_type"`
		LicensePlate string   `json:"license_plate"`
		Lat          *float64 `json:"lat"`
		Lng          *float64 `json:"lng"`
	}
	if err := ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}
	if (body.Lat == nil) != (body.Lng == nil) {
		return respondBadRequest(ctx, "lat and lng must be provided together")
	}

	var location *kernel.Location
	if body.Lat != nil {
		loc := kernel.NewLocation(*body.Lat, *body.Lng)
		location = &loc
	}

	cmd, err := commands.NewCreateDriverCommand(
		kernel.NewUUID(),
		body.Name,
		body.Phone,
		body.VehicleType,
		body.LicensePlate,
		location,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createDriverHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusCreated, toDriverJSON(created))
}

// GetDriver handles GET /api/v1/drivers/:id.
func (s *Server) GetDriver(ctx echo.Context) error {
	driverID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "id must be a valid UUID")
	}

	query, err := queries.NewGetDriverQuery(driverID)
	if err != nil {
		return respondError(ctx, err)
	}

	found, err := s.getDriverHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusOK, fromDriverResponse(found))
}

// UpdateDriver handles PUT /api/v1/drivers/:id.
// Applies a partial update: only fields present in the body are touched, and
// coordinates are accepted as an all-or-nothing pair.
func (s *Server) UpdateDriver(ctx echo.Context) error {
	driverID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "id must be a valid UUID")
	}

	var body struct {
		Name         *string  `json:"name"`
		Phone        *string  `json:"phone"`
		VehicleType  *string  `json:"vehicle_type"`
		LicensePlate *string  `json:"license_plate"`
		Status       *string  `json:"status"`
		Lat          *float64 `json:"lat"`
		Lng          *float64 `json:"lng"`
	}
	if err = ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}
	if (body.Lat == nil) != (body.Lng == nil) {
		return respondBadRequest(ctx, "lat and lng must be provided together")
	}

	patch := driver.Patch{
		Name:         body.Name,
		Phone:        body.Phone,
		VehicleType:  body.VehicleType,
		LicensePlate: body.LicensePlate,
	}

	if body.Status != nil {
		status, statusErr := driver.StatusFromString(*body.Status)
		if statusErr != nil {
			return respondError(ctx, statusErr)
		}
		patch.Status = &status
	}
	if body.Lat != nil {
		loc := kernel.NewLocation(*body.Lat, *body.Lng)
		patch.Location = &loc
	}

	cmd, err := commands.NewUpdateDriverCommand(driverID, patch)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.updateDriverHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusOK, toDriverJSON(updated))
}

// UpdateDriverLocation handles PUT /api/v1/drivers/:id/location.
// Records the coordinate pair, stamps last_location_update, and optionally
// switches the driver status.
func (s *Server) UpdateDriverLocation(ctx echo.Context) error {
	driverID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "id must be a valid UUID")
	}

	var body struct {
		Lat    *float64 `json:"lat"`
		Lng    *float64 `json:"lng"`
		Status *string  `json:"status"`
	}
	if err = ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}
	if body.Lat == nil || body.Lng == nil {
		return respondBadRequest(ctx, "missing required fields: lat, lng")
	}

	var statusFilter *driver.Status
	if body.Status != nil {
		status, statusErr := driver.StatusFromString(*body.Status)
		if statusErr != nil {
			return respondError(ctx, statusErr)
		}
		statusFilter = &status
	}

	cmd, err := commands.NewUpdateDriverLocationCommand(
		driverID,
		kernel.NewLocation(*body.Lat, *body.Lng),
		statusFilter,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.updateDriverLocationHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusOK, toDriverJSON(updated))
}
