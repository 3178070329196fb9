// Package jobs provides scheduled background tasks for the procurement system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the procurement service.
//
// # Available Jobs
//
// 1. StaleDraftCancellationJob - Runs hourly to cancel draft orders that were
// opened but never submitted within the configured retention period.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(cancelStaleDraftsHandler, 30*24*time.Hour, logger)
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
// The cleanup job uses the "@hourly" cron expression. Abandoned drafts carry
// no urgency, so an hourly sweep keeps the order book tidy without load.
//
// # Error Handling
//
// - Job errors are logged and the job keeps its schedule
// - Failed job starts will stop any already running jobs
package jobs
