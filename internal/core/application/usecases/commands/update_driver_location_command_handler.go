package commands

import (
	"context"

	"dispatch/internal/core/domain/model/driver"
)

// UpdateDriverLocationCommandHandler records driver position reports.
// Updates the coordinate pair and the last-location-update timestamp, and
// applies the optional status override carried with the report.
type UpdateDriverLocationCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewUpdateDriverLocationCommandHandler creates a handler for driver position
// reports. Requires a DriverUoWFactory for transactional persistence.
func NewUpdateDriverLocationCommandHandler(uowFactory DriverUoWFactory) UpdateDriverLocationCommandHandler {
	return UpdateDriverLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the position report and returns the updated driver.
func (h UpdateDriverLocationCommandHandler) Handle(
	ctx context.Context,
	command UpdateDriverLocationCommand,
) (*driver.Driver, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()

	aggregate, err := driverRepo.Get(ctx, command.DriverID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.MoveTo(command.Location()); err != nil {
		return nil, err
	}

	if status := command.Status(); status != nil && *status != aggregate.Status() {
		switch *status {
		case driver.Available:
			err = aggregate.MarkAvailable()
		case driver.Busy:
			err = aggregate.MarkBusy()
		}
		if err != nil {
			return nil, err
		}
	}

	if err = driverRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
