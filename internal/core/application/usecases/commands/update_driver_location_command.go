package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrUpdateDriverLocationCommandIsNotConstructed = errors.New(
	"UpdateDriverLocationCommand must be created via NewUpdateDriverLocationCommand constructor",
)

// UpdateDriverLocationCommand represents a driver position report.
// Carries the new coordinates and, optionally, a status override sent along
// with the position.
type UpdateDriverLocationCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	location kernel.Location
	status   *driver.Status

	guard guard.ConstructorGuard
}

// NewUpdateDriverLocationCommand creates a command to record a driver position.
// Validates that the driver ID is a valid UUID, the location is constructed,
// and the optional status is a known value.
func NewUpdateDriverLocationCommand(
	driverID kernel.UUID,
	location kernel.Location,
	status *driver.Status,
) (UpdateDriverLocationCommand, error) {
	locationCommand := UpdateDriverLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		locationCommand.setDriverID(driverID),
		locationCommand.setLocation(location),
		locationCommand.setStatus(status),
	); err != nil {
		return UpdateDriverLocationCommand{}, err
	}

	return locationCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateDriverLocationCommandIsNotConstructed if validation fails.
func (c UpdateDriverLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDriverLocationCommandIsNotConstructed)
}

// DriverID returns the identifier of the reporting driver.
func (c UpdateDriverLocationCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Location returns the reported coordinates.
func (c UpdateDriverLocationCommand) Location() kernel.Location {
	return c.location
}

// Status returns the optional status override.
func (c UpdateDriverLocationCommand) Status() *driver.Status {
	return c.status
}

func (c *UpdateDriverLocationCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *UpdateDriverLocationCommand) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}

func (c *UpdateDriverLocationCommand) setStatus(status *driver.Status) error {
	if status == nil {
		return nil
	}

	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
