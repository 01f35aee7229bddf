// Package jobs provides scheduled background tasks.
//
// Jobs are built on github.com/robfig/cron/v3 with second-level schedules.
//
// # Available Jobs
//
// PromotionExpiryJob clears the promoted flag of every restaurant whose paid
// promotion period has ended. It runs on PROMOTION_SWEEP_SCHEDULE, by default
// at the top of every minute.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(expireHandler, cfg.PromotionSweepSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed sweep is logged and the next tick tries again. A job that fails to
// start stops the jobs already running.
package jobs
