package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates the scheduled jobs of the engine.
type JobManager struct {
	licenseExpirySweepJob *LicenseExpirySweepJob
}

// NewJobManager creates a job manager. schedule is the six-field cron
// expression for the license sweep.
func NewJobManager(sweepHandler licenseSweepHandler, schedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		licenseExpirySweepJob: NewLicenseExpirySweepJob(sweepHandler, schedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.licenseExpirySweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start license expiry sweep job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.licenseExpirySweepJob.Stop()
}
