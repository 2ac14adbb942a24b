// Package jobs provides scheduled background tasks for the fleet engine.
//
// Jobs are built on github.com/robfig/cron/v3 with seconds-precision
// schedules.
//
// # Available Jobs
//
// LicenseExpirySweepJob suspends every driver whose license expiry date has
// passed. It runs on LICENSE_SWEEP_SCHEDULE, hourly by default. A driver that
// was modified concurrently is counted as a conflict and retried on the next
// run; a driver already suspended is skipped, so overlapping runs are harmless.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(sweepHandler, cfg.LicenseSweepSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
