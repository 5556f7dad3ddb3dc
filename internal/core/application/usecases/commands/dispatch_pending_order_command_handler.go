package commands

import (
	"context"
	"errors"
	"log/slog"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"
)

var (
	ErrDispatchPendingOrderCommandIsNotConstructed = errors.New(
		"DispatchPendingOrderCommand must be created via NewDispatchPendingOrderCommand constructor",
	)
	ErrNoPendingOrder = errors.New("no pending order found")
)

// DispatchPendingOrderCommandHandler assigns drivers to queued orders.
// Pulls the oldest pending order and runs nearest-driver selection over the
// available drivers with known coordinates. Invoked periodically by the
// dispatch job.
//
// Example:
//
//	handler := NewDispatchPendingOrderCommandHandler(uowFactory, logger)
//	err := handler.Handle(ctx, NewDispatchPendingOrderCommand())
//	switch {
//	case errors.Is(err, ErrNoPendingOrder):
//	    log.Println("queue is empty")
//	case errors.Is(err, services.ErrNoDriverAvailable):
//	    log.Println("all drivers busy or unlocated")
//	case err != nil:
//	    log.Printf("dispatch failed: %v", err)
//	}
type DispatchPendingOrderCommandHandler struct {
	uowFactory AssignmentUoWFactory
	log        *slog.Logger
}

// NewDispatchPendingOrderCommandHandler creates a handler for queue dispatch.
// Requires an AssignmentUoWFactory spanning the order and driver repositories.
func NewDispatchPendingOrderCommandHandler(
	uowFactory AssignmentUoWFactory,
	log *slog.Logger,
) DispatchPendingOrderCommandHandler {
	return DispatchPendingOrderCommandHandler{
		uowFactory: uowFactory,
		log:        log,
	}
}

// Handle processes the dispatch command.
// Returns ErrNoPendingOrder when the queue is empty and
// services.ErrNoDriverAvailable when no candidate driver exists. Both are
// normal idle outcomes for the periodic job, not failures to retry.
func (h DispatchPendingOrderCommandHandler) Handle(
	ctx context.Context,
	command DispatchPendingOrderCommand,
) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	driverRepo := uow.DriverRepository()

	aggregate, err := orderRepo.GetFirstInPendingStatus(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoPendingOrder
	}
	if err != nil {
		return err
	}

	candidates, err := driverRepo.GetAllAvailableWithLocation(ctx)
	if err != nil {
		return err
	}

	nearest, _, err := services.NewDriverDispatcher().SelectNearest(aggregate, candidates)
	if err != nil {
		return err
	}

	if err = aggregate.Assign(nearest.ID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// Post-commit write against the base connection.
	if err = uow.DriverRepository().UpdateStatus(ctx, nearest.ID(), driver.Busy); err != nil {
		h.log.WarnContext(ctx, "driver status update failed after order commit",
			"order_id", aggregate.ExternalID(),
			"driver_id", nearest.ID().String(),
			"error", err,
		)
	}

	return nil
}
