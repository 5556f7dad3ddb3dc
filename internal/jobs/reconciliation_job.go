package jobs

import (
	"context"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ReconciliationJob periodically scans assigned orders and repairs drivers
// whose status write was lost after the order-side commit.
type ReconciliationJob struct {
	handler  commands.ReconcileAssignmentsCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewReconciliationJob creates a job that reconciles driver statuses on the
// given six-field cron schedule.
func NewReconciliationJob(
	handler commands.ReconcileAssignmentsCommandHandler,
	schedule string,
	logger *slog.Logger,
) *ReconciliationJob {
	return &ReconciliationJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "reconciliation_job"),
	}
}

// Start begins the reconciliation job on its configured schedule.
func (j *ReconciliationJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewReconcileAssignmentsCommand()

		repaired, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "reconciliation job failed", "error", handleErr)
			return
		}

		if repaired > 0 {
			j.logger.InfoContext(ctx, "reconciled stale driver statuses", "repaired", repaired)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "reconciliation job started", "schedule", j.schedule)
	return nil
}

// Stop stops the reconciliation job.
func (j *ReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "reconciliation job stopped")
}
