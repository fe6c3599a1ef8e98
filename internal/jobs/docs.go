// Package jobs provides scheduled background tasks for the installation service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. CascadeReconciliationJob - applies completion cascades left pending when the
// order update failed after its last task was completed
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(orderReader, retryCascadeHandler, cfg.CascadeRetrySchedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are six-field cron expressions with seconds. The reconciliation job
// defaults to "*/30 * * * * *" and is configured with CASCADE_RETRY_SCHEDULE.
//
// # Error Handling
//
// - Orders that moved on since they were listed are skipped quietly
// - Other per-order failures are logged and do not stop the run
// - Reconciliation decides from current state only, so reruns are harmless
package jobs
