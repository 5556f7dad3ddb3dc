package commands

import (
	"context"
	"errors"
	"log/slog"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

// AssignDriverCommandHandler binds a chosen driver to an order.
// The order transition commits first; the driver status write is a second,
// independent round trip. A failure of the second write leaves the driver
// record stale until the reconciliation job repairs it, and is reported as a
// warn-level log rather than an error.
//
// Example:
//
//	handler := NewAssignDriverCommandHandler(uowFactory, logger)
//	cmd, _ := NewAssignDriverCommand(orderRef, driverID)
//	assigned, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    log.Println("order does not exist")
//	case errors.Is(err, errs.ErrPreconditionFailed):
//	    log.Println("driver unavailable or order already assigned")
//	case err == nil:
//	    log.Printf("order %s assigned", assigned.ExternalID())
//	}
type AssignDriverCommandHandler struct {
	uowFactory AssignmentUoWFactory
	log        *slog.Logger
}

// NewAssignDriverCommandHandler creates a handler for manual driver assignment.
// Requires an AssignmentUoWFactory spanning the order and driver repositories.
func NewAssignDriverCommandHandler(
	uowFactory AssignmentUoWFactory,
	log *slog.Logger,
) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
		log:        log,
	}
}

// Handle processes the assignment command and returns the assigned order.
// The driver must be available and the order pending with no driver bound.
// Precondition failures leave both records untouched.
func (h AssignDriverCommandHandler) Handle(
	ctx context.Context,
	command AssignDriverCommand,
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
	driverRepo := uow.DriverRepository()

	aggregate, err := orderRepo.Get(ctx, command.OrderRef())
	if err != nil {
		return nil, err
	}

	// A busy or missing driver both fail the availability guard.
	candidate, err := driverRepo.GetAvailable(ctx, command.DriverID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, driver.ErrDriverIsNotAvailable
		}
		return nil, err
	}

	if err = candidate.MarkBusy(); err != nil {
		return nil, err
	}

	if err = aggregate.Assign(candidate.ID()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	// The order is committed at this point. A fresh repository is bound to
	// the base connection now that no transaction is active; on failure the
	// operation still succeeds and the reconciliation job closes the gap.
	if err = uow.DriverRepository().UpdateStatus(ctx, candidate.ID(), driver.Busy); err != nil {
		h.log.WarnContext(ctx, "driver status update failed after order commit",
			"order_id", aggregate.ExternalID(),
			"driver_id", candidate.ID().String(),
			"error", err,
		)
	}

	return aggregate, nil
}
