package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	cascadeReconciliationJob *CascadeReconciliationJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	finder AwaitingCascadeFinder,
	retrier CascadeRetrier,
	cascadeSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		cascadeReconciliationJob: NewCascadeReconciliationJob(finder, retrier, cascadeSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.cascadeReconciliationJob.Start(); err != nil {
		return fmt.Errorf("failed to start cascade reconciliation job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.cascadeReconciliationJob.Stop()
}
