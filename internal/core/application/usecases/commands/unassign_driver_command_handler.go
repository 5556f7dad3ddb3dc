package commands

import (
	"context"
	"log/slog"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/order"
)

// UnassignDriverCommandHandler releases the driver bound to an order.
// The order returns to pending with no driver inside the transaction; the
// released driver is marked available afterwards as the second half of the
// paired update, with the same warn-and-succeed policy as assignment.
type UnassignDriverCommandHandler struct {
	uowFactory AssignmentUoWFactory
	log        *slog.Logger
}

// NewUnassignDriverCommandHandler creates a handler for driver release.
// Requires an AssignmentUoWFactory spanning the order and driver repositories.
func NewUnassignDriverCommandHandler(
	uowFactory AssignmentUoWFactory,
	log *slog.Logger,
) UnassignDriverCommandHandler {
	return UnassignDriverCommandHandler{
		uowFactory: uowFactory,
		log:        log,
	}
}

// Handle processes the unassignment command and returns the released order.
// Returns order.ErrOrderNotAssigned when no driver is bound.
func (h UnassignDriverCommandHandler) Handle(
	ctx context.Context,
	command UnassignDriverCommand,
) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, command.OrderRef())
	if err != nil {
		return nil, err
	}

	releasedDriverID, err := aggregate.Unassign()
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	// Post-commit write against the base connection.
	if err = uow.DriverRepository().UpdateStatus(ctx, releasedDriverID, driver.Available); err != nil {
		h.log.WarnContext(ctx, "driver status update failed after order commit",
			"order_id", aggregate.ExternalID(),
			"driver_id", releasedDriverID.String(),
			"error", err,
		)
	}

	return aggregate, nil
}
