// Package jobs provides scheduled background tasks for the dispatch system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order dispatching.
//
// # Available Jobs
//
// 1. OrderDispatchJob - Runs every second to assign the oldest pending order
// to the nearest active courier in range
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(dispatchHandler, logger)
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
// The dispatch job uses the cron expression "* * * * * *" which means it runs
// every second. This frequency keeps the wait short for orders created while
// no courier was in range.
//
// # Error Handling
//
// - The dispatch job ignores expected business errors (no pending orders,
// no courier in range)
// - Failed job starts leave no jobs running
package jobs
