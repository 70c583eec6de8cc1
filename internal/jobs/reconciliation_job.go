package jobs

import (
	"context"
	"log/slog"

	"harbor/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ReconciliationJob runs the relationship reconciliation sweep on a schedule.
// Each run settles vessel-cargo pairs that a failed second write left in
// disagreement and refreshes stale denormalized carrier names.
type ReconciliationJob struct {
	handler  commands.ReconcileRelationshipsCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewReconciliationJob creates the job with a cron schedule expression that
// supports a seconds field, e.g. "0 */5 * * * *" for every five minutes.
func NewReconciliationJob(
	handler commands.ReconcileRelationshipsCommandHandler,
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

// Start begins running the sweep on the configured schedule.
func (j *ReconciliationJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewReconcileRelationshipsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Reconciliation sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Reconciliation job started", "schedule", j.schedule)
	return nil
}

// Stop stops the reconciliation job.
func (j *ReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Reconciliation job stopped")
}
