package commands

import (
	"context"

	"dispatch/internal/core/domain/model/driver"
)

// UpdateDriverCommandHandler applies partial updates to driver records.
type UpdateDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewUpdateDriverCommandHandler creates a handler for driver patches.
// Requires a DriverUoWFactory for transactional persistence.
func NewUpdateDriverCommandHandler(uowFactory DriverUoWFactory) UpdateDriverCommandHandler {
	return UpdateDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the patch command and returns the updated driver.
func (h UpdateDriverCommandHandler) Handle(
	ctx context.Context,
	command UpdateDriverCommand,
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

	if err = aggregate.ApplyPatch(command.Patch()); err != nil {
		return nil, err
	}

	if err = driverRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
