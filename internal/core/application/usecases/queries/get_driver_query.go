package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetDriverQueryIsNotConstructed = errors.New(
	"GetDriverQuery must be created via NewGetDriverQuery constructor",
)

// GetDriverQuery retrieves a single driver by identifier.
type GetDriverQuery struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDriverQuery creates a query to fetch one driver.
// Validates that the driver ID is a valid UUID.
func NewGetDriverQuery(driverID kernel.UUID) (GetDriverQuery, error) {
	query := GetDriverQuery{guard: guard.NewConstructorGuard()}

	if err := driverID.Validate(); err != nil {
		return GetDriverQuery{}, err
	}
	query.driverID = driverID

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDriverQueryIsNotConstructed if validation fails.
func (q GetDriverQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverQueryIsNotConstructed)
}

// DriverID returns the identifier of the driver to fetch.
func (q GetDriverQuery) DriverID() kernel.UUID {
	return q.driverID
}
