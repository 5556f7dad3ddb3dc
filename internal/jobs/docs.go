// Package jobs provides scheduled background tasks for the dispatch system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the dispatch service.
//
// # Available Jobs
//
// 1. DispatchJob - Periodically assigns the oldest pending order to the nearest available driver
// 2. ReconciliationJob - Periodically repairs driver statuses left stale by a failed follow-up write
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(dispatchHandler, reconcileHandler, schedules, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Both jobs take six-field cron expressions (with seconds), supplied through
// configuration. The dispatch job typically runs every few seconds; the
// reconciliation job runs less often since it only closes the small window
// left by a failed driver status write.
//
// # Error Handling
//
// - Dispatch job treats an empty queue and an empty driver pool as idle outcomes, logged at debug
// - Reconciliation job logs every repair it performs and errors otherwise
// - Failed job starts will stop any already running jobs
package jobs
