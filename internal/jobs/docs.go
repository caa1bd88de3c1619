// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the order lifecycle.
//
// # Available Jobs
//
// 1. DeliveryCompletionJob - Runs every ten seconds to mark shipped orders
// whose estimated delivery time has passed as delivered.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(completeDeliveriesHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The completion job logs failures and retries on the next tick; a run that
// finds no overdue shipments is not an error.
package jobs
