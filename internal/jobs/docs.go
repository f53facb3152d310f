// Package jobs provides scheduled background tasks for the ordering service.
//
// Jobs are built on github.com/robfig/cron/v3 with second-level schedules.
//
// # Available Jobs
//
// 1. CartSweepJob - evicts cart sessions nobody touched for CART_IDLE_TTL.
// Carts are session state, so a sweep is what bounds memory for abandoned
// sessions. A cart that is being updated during a sweep is skipped and
// checked again on the next run.
//
// # Usage
//
//	sweep := jobs.NewCartSweepJob(carts, 2*time.Hour, "@every 5m", logger)
//	jobManager := jobs.NewJobManager(logger, sweep)
//
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Failed runs are logged and retried on the next tick. A job that fails to
// start stops every job started before it.
package jobs
