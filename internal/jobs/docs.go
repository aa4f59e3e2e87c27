// Package jobs provides scheduled background tasks.
//
// Jobs are built on github.com/robfig/cron/v3 with a seconds field in the
// schedule and are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(markOverdueHandler, cfg.OverdueSchedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// OverdueInvoicesJob flags Sent invoices whose due date lies before today.
// It runs hourly unless another schedule is configured. Failures are logged
// and the next tick retries.
package jobs
