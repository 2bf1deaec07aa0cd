// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance of the order store.
//
// # Available Jobs
//
// 1. StalePendingExpiryJob - Runs every minute to cancel pending orders that
// no restaurant confirmed within the configured age
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(expireHandler, 30*time.Minute, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Expiry runs race against live traffic on purpose: an order confirmed while
// the sweep is in flight loses its compare-and-swap inside the command and is
// skipped, never failed. Job-level errors are logged and the next tick tries
// again.
package jobs
