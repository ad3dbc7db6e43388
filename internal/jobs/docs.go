// Package jobs provides scheduled background tasks for the order webhook.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. SessionCleanupJob - Runs every minute to evict abandoned in-progress orders
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(store, cfg.SessionTTL, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The cleanup job uses the cron expression "* * * * *" and runs every
// minute. Eviction is driven by the configured session TTL; a zero TTL
// disables the job and sessions are never evicted.
package jobs
