package queries

import (
	"context"
	"database/sql"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDriversQueryHandler lists drivers from the database.
type GetDriversQueryHandler struct {
	db *gorm.DB
}

// NewGetDriversQueryHandler creates a handler for driver listing.
// Requires a GORM database connection for query execution.
func NewGetDriversQueryHandler(db *gorm.DB) GetDriversQueryHandler {
	return GetDriversQueryHandler{db: db}
}

// Handle executes the query. Results come back newest first.
func (h GetDriversQueryHandler) Handle(
	ctx context.Context,
	query GetDriversQuery,
) ([]DriverResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT
			id,
			name,
			phone,
			vehicle_type,
			license_plate,
			lat,
			lng,
			status,
			last_location_update,
			created_at,
			updated_at
		FROM drivers
	`
	args := make([]any, 0, 1)
	if query.Status() != nil {
		sqlQuery += ` WHERE status = ?`
		args = append(args, query.Status().String())
	}
	sqlQuery += ` ORDER BY created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	drivers := make([]DriverResponse, 0)
	for rows.Next() {
		resp, scanErr := scanDriverRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		drivers = append(drivers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}

// scanDriverRow reads one row of the shared driver projection.
// Column order must match the SELECT lists of the driver queries.
func scanDriverRow(rows *sql.Rows) (DriverResponse, error) {
	var resp DriverResponse
	var id uuid.UUID
	var lat, lng sql.NullFloat64
	var lastLocationUpdate sql.NullTime

	if err := rows.Scan(
		&id,
		&resp.Name,
		&resp.Phone,
		&resp.VehicleType,
		&resp.LicensePlate,
		&lat,
		&lng,
		&resp.Status,
		&lastLocationUpdate,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	); err != nil {
		return DriverResponse{}, err
	}

	driverID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return DriverResponse{}, err
	}
	resp.ID = driverID

	if lat.Valid && lng.Valid {
		location := kernel.NewLocation(lat.Float64, lng.Float64)
		resp.Location = &location
	}

	if lastLocationUpdate.Valid {
		reported := lastLocationUpdate.Time.UTC()
		resp.LastLocationUpdate = &reported
	}

	return resp, nil
}
