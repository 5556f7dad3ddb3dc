package ports

import (
	"context"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	// Add persists a new driver aggregate to storage.
	// The driver must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists changes to an existing driver aggregate.
	// The driver must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetAvailable retrieves a driver only if it is currently in the
	// available status. Used as the pre-assignment guard: a busy or missing
	// driver both come back as not found.
	GetAvailable(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetAllAvailableWithLocation retrieves every driver in the available
	// status that has reported coordinates. Only these drivers are eligible
	// for nearest-driver selection.
	GetAllAvailableWithLocation(ctx context.Context) ([]*driver.Driver, error)

	// UpdateStatus persists only the status column of the given driver.
	// Assignment flows update the driver status after the order change has
	// already been committed, so this write runs outside any transaction
	// and must not touch other columns.
	UpdateStatus(ctx context.Context, id kernel.UUID, status driver.Status) error
}
