package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrUpdateDriverCommandIsNotConstructed = errors.New(
	"UpdateDriverCommand must be created via NewUpdateDriverCommand constructor",
)

// UpdateDriverCommand represents a partial update of a driver's profile and
// availability. A patched location moves the last-location-update timestamp
// the same way a location report does.
type UpdateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	patch    driver.Patch

	guard guard.ConstructorGuard
}

// NewUpdateDriverCommand creates a command to patch a driver.
// Validates that the driver ID is a valid UUID and the patch is not empty.
func NewUpdateDriverCommand(driverID kernel.UUID, patch driver.Patch) (UpdateDriverCommand, error) {
	updateCommand := UpdateDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		updateCommand.setDriverID(driverID),
		updateCommand.setPatch(patch),
	); err != nil {
		return UpdateDriverCommand{}, err
	}

	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateDriverCommandIsNotConstructed if validation fails.
func (c UpdateDriverCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDriverCommandIsNotConstructed)
}

// DriverID returns the identifier of the driver to patch.
func (c UpdateDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Patch returns the partial update to apply.
func (c UpdateDriverCommand) Patch() driver.Patch {
	return c.patch
}

func (c *UpdateDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *UpdateDriverCommand) setPatch(patch driver.Patch) error {
	if patch.IsEmpty() {
		return driver.ErrNoFieldsToUpdate
	}

	c.patch = patch
	return nil
}
