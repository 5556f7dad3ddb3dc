package queries

import (
	"context"

	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetDriverQueryHandler fetches a single driver from the database.
type GetDriverQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverQueryHandler creates a handler for single-driver lookups.
// Requires a GORM database connection for query execution.
func NewGetDriverQueryHandler(db *gorm.DB) GetDriverQueryHandler {
	return GetDriverQueryHandler{db: db}
}

// Handle executes the lookup.
// Returns errs.ErrObjectNotFound when no driver matches the identifier.
func (h GetDriverQueryHandler) Handle(
	ctx context.Context,
	query GetDriverQuery,
) (DriverResponse, error) {
	if err := query.Validate(); err != nil {
		return DriverResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
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
		WHERE id = ?
		LIMIT 1
	`, query.DriverID().Bytes()).Rows()
	if err != nil {
		return DriverResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return DriverResponse{}, err
		}
		return DriverResponse{}, errs.NewObjectNotFoundError("driver", query.DriverID())
	}

	return scanDriverRow(rows)
}
