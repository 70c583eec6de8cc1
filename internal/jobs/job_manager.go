package jobs

import (
	"fmt"
	"log/slog"

	"harbor/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	reconciliationJob *ReconciliationJob
}

// NewJobManager creates a new job manager. An empty reconciliation schedule
// disables the sweep; StartAll then has nothing to start.
func NewJobManager(
	reconcileHandler commands.ReconcileRelationshipsCommandHandler,
	reconciliationSchedule string,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{}
	if reconciliationSchedule != "" {
		jm.reconciliationJob = NewReconciliationJob(reconcileHandler, reconciliationSchedule, logger)
	}
	return jm
}

// StartAll starts all configured jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.reconciliationJob == nil {
		return nil
	}

	if err := jm.reconciliationJob.Start(); err != nil {
		return fmt.Errorf("failed to start reconciliation job: %w", err)
	}
	return nil
}

// StopAll stops all configured jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.reconciliationJob != nil {
		jm.reconciliationJob.Stop()
	}
}
