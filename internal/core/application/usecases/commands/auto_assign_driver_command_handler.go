package commands

import (
	"context"
	"log/slog"
	"math"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
)

// AutoAssignResult describes a completed automatic assignment: the updated
// order, the selected driver, the straight-line distance between driver and
// delivery location in kilometers (rounded to two decimals), and the
// selection method tag.
type AutoAssignResult struct {
	Order      *order.Order
	Driver     *driver.Driver
	DistanceKm float64
	Method     string
}

// AutoAssignDriverCommandHandler assigns the nearest available driver to an
// order. Candidates are the available drivers with known coordinates; the
// one closest to the delivery location wins. The order/driver write pair
// follows the same commit-order-first policy as manual assignment.
type AutoAssignDriverCommandHandler struct {
	uowFactory AssignmentUoWFactory
	log        *slog.Logger
}

// NewAutoAssignDriverCommandHandler creates a handler for automatic driver
// assignment. Requires an AssignmentUoWFactory spanning the order and driver
// repositories.
func NewAutoAssignDriverCommandHandler(
	uowFactory AssignmentUoWFactory,
	log *slog.Logger,
) AutoAssignDriverCommandHandler {
	return AutoAssignDriverCommandHandler{
		uowFactory: uowFactory,
		log:        log,
	}
}

// Handle processes the auto-assignment command.
// Returns services.ErrNoDriverAvailable when no available driver has reported
// coordinates. Precondition failures (order already assigned, not pending)
// leave both records untouched.
func (h AutoAssignDriverCommandHandler) Handle(
	ctx context.Context,
	command AutoAssignDriverCommand,
) (AutoAssignResult, error) {
	if err := command.Validate(); err != nil {
		return AutoAssignResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AutoAssignResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	driverRepo := uow.DriverRepository()

	aggregate, err := orderRepo.Get(ctx, command.OrderRef())
	if err != nil {
		return AutoAssignResult{}, err
	}

	candidates, err := driverRepo.GetAllAvailableWithLocation(ctx)
	if err != nil {
		return AutoAssignResult{}, err
	}

	nearest, distanceKm, err := services.NewDriverDispatcher().SelectNearest(aggregate, candidates)
	if err != nil {
		return AutoAssignResult{}, err
	}

	if err = aggregate.Assign(nearest.ID()); err != nil {
		return AutoAssignResult{}, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return AutoAssignResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AutoAssignResult{}, err
	}

	// Post-commit write against the base connection.
	if err = uow.DriverRepository().UpdateStatus(ctx, nearest.ID(), driver.Busy); err != nil {
		h.log.WarnContext(ctx, "driver status update failed after order commit",
			"order_id", aggregate.ExternalID(),
			"driver_id", nearest.ID().String(),
			"error", err,
		)
	}

	return AutoAssignResult{
		Order:      aggregate,
		Driver:     nearest,
		DistanceKm: math.Round(distanceKm*100) / 100,
		Method:     "auto",
	}, nil
}
