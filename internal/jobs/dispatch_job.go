package jobs

import (
	"context"
	"errors"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// DispatchJob periodically drains the pending order queue by assigning the
// oldest pending order to the nearest available driver.
type DispatchJob struct {
	handler  commands.DispatchPendingOrderCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDispatchJob creates a job that auto-assigns pending orders on the given
// six-field cron schedule.
func NewDispatchJob(
	handler commands.DispatchPendingOrderCommandHandler,
	schedule string,
	logger *slog.Logger,
) *DispatchJob {
	return &DispatchJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "dispatch_job"),
	}
}

// Start begins the dispatch job on its configured schedule.
func (j *DispatchJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewDispatchPendingOrderCommand()

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			// An empty queue or an empty driver pool is an idle tick, not a failure.
			if errors.Is(handleErr, commands.ErrNoPendingOrder) ||
				errors.Is(handleErr, services.ErrNoDriverAvailable) {
				j.logger.DebugContext(ctx, "nothing to dispatch", "reason", handleErr)
				return
			}
			j.logger.ErrorContext(ctx, "dispatch job failed", "error", handleErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "dispatch job started", "schedule", j.schedule)
	return nil
}

// Stop stops the dispatch job.
func (j *DispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "dispatch job stopped")
}
