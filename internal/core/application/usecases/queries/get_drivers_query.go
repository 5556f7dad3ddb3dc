package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetDriversQueryIsNotConstructed = errors.New(
	"GetDriversQuery must be created via NewGetDriversQuery constructor",
)

// GetDriversQuery retrieves drivers, optionally filtered by status.
type GetDriversQuery struct { //nolint:recvcheck //using for validation
	status *driver.Status

	guard guard.ConstructorGuard
}

// NewGetDriversQuery creates a query to list drivers.
// A nil status means no filtering; a provided status must be a known value.
func NewGetDriversQuery(status *driver.Status) (GetDriversQuery, error) {
	query := GetDriversQuery{guard: guard.NewConstructorGuard()}

	if status != nil {
		if err := status.Validate(); err != nil {
			return GetDriversQuery{}, err
		}
		query.status = status
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDriversQueryIsNotConstructed if validation fails.
func (q GetDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetDriversQueryIsNotConstructed)
}

// Status returns the optional status filter.
func (q GetDriversQuery) Status() *driver.Status {
	return q.status
}

// DriverResponse is the read model shared by the driver queries.
type DriverResponse struct {
	ID                 kernel.UUID
	Name               string
	Phone              string
	VehicleType        string
	LicensePlate       string
	Location           *kernel.Location
	Status             string
	LastLocationUpdate *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
