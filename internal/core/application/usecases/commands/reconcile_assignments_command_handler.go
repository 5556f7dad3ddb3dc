package commands

import (
	"context"
	"errors"
	"log/slog"

	"dispatch/internal/core/domain/model/driver"
)

var ErrReconcileAssignmentsCommandIsNotConstructed = errors.New(
	"ReconcileAssignmentsCommand must be created via NewReconcileAssignmentsCommand constructor",
)

// ReconcileAssignmentsCommandHandler repairs the inconsistency window opened
// by the two-phase assignment writes. Every order in the assigned status must
// have its driver marked busy; any driver found otherwise is switched to busy
// and the repair is logged. Invoked periodically by the reconciliation job.
type ReconcileAssignmentsCommandHandler struct {
	uowFactory AssignmentUoWFactory
	log        *slog.Logger
}

// NewReconcileAssignmentsCommandHandler creates a handler for assignment
// reconciliation. Requires an AssignmentUoWFactory spanning the order and
// driver repositories.
func NewReconcileAssignmentsCommandHandler(
	uowFactory AssignmentUoWFactory,
	log *slog.Logger,
) ReconcileAssignmentsCommandHandler {
	return ReconcileAssignmentsCommandHandler{
		uowFactory: uowFactory,
		log:        log,
	}
}

// Handle processes the reconciliation command and returns the number of
// driver records repaired. All repairs run in one transaction.
func (h ReconcileAssignmentsCommandHandler) Handle(
	ctx context.Context,
	command ReconcileAssignmentsCommand,
) (int, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	driverRepo := uow.DriverRepository()

	assigned, err := orderRepo.GetAllInAssignedStatus(ctx)
	if err != nil {
		return 0, err
	}

	repaired := 0
	for _, aggregate := range assigned {
		driverID := aggregate.DriverID()
		if driverID == nil {
			continue
		}

		bound, getErr := driverRepo.Get(ctx, *driverID)
		if getErr != nil {
			return 0, getErr
		}

		if bound.Status() == driver.Busy {
			continue
		}

		if markErr := bound.MarkBusy(); markErr != nil {
			return 0, markErr
		}

		if updateErr := driverRepo.Update(ctx, bound); updateErr != nil {
			return 0, updateErr
		}

		h.log.InfoContext(ctx, "repaired driver status for assigned order",
			"order_id", aggregate.ExternalID(),
			"driver_id", bound.ID().String(),
		)
		repaired++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return repaired, nil
}
