package jobs

import (
	"context"
	"log/slog"

	"fleetflow/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultLicenseSweepSchedule fires at the top of every hour.
const DefaultLicenseSweepSchedule = "0 0 * * * *"

type licenseSweepHandler interface {
	Handle(ctx context.Context, cmd commands.SweepExpiredLicensesCommand) (commands.SweepResult, error)
}

// LicenseExpirySweepJob suspends drivers whose license has lapsed on a
// six-field cron schedule.
type LicenseExpirySweepJob struct {
	handler  licenseSweepHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewLicenseExpirySweepJob creates the sweep job. An empty schedule falls back
// to DefaultLicenseSweepSchedule.
func NewLicenseExpirySweepJob(handler licenseSweepHandler, schedule string, logger *slog.Logger) *LicenseExpirySweepJob {
	if schedule == "" {
		schedule = DefaultLicenseSweepSchedule
	}
	return &LicenseExpirySweepJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "license_expiry_sweep_job"),
	}
}

// Start registers the sweep and starts the scheduler.
func (j *LicenseExpirySweepJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "License expiry sweep job started", "schedule", j.schedule)
	return nil
}

// Run performs one sweep. Conflicting drivers are left for the next run.
func (j *LicenseExpirySweepJob) Run(ctx context.Context) {
	result, err := j.handler.Handle(ctx, commands.NewSweepExpiredLicensesCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "License expiry sweep failed",
			"error", err,
			"suspended", len(result.Suspended),
		)
		return
	}

	if len(result.Suspended) == 0 && result.Conflicts == 0 {
		j.logger.DebugContext(ctx, "License expiry sweep found nothing to suspend")
		return
	}

	ids := make([]string, len(result.Suspended))
	for i, id := range result.Suspended {
		ids[i] = id.String()
	}
	j.logger.InfoContext(ctx, "License expiry sweep finished",
		"suspended", len(result.Suspended),
		"driver_ids", ids,
		"conflicts", result.Conflicts,
	)
}

// Stop waits for a running sweep to finish and stops the scheduler.
func (j *LicenseExpirySweepJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "License expiry sweep job stopped")
}
