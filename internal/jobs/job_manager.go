package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	overdueInvoicesJob *OverdueInvoicesJob
}

// NewJobManager registers every job with a fresh cron scheduler.
func NewJobManager(
	overdueInvoicesHandler OverdueInvoicesHandler,
	overdueInvoicesSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		overdueInvoicesJob: NewOverdueInvoicesJob(overdueInvoicesHandler, overdueInvoicesSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.overdueInvoicesJob.Start(); err != nil {
		return fmt.Errorf("failed to start overdue invoices job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.overdueInvoicesJob.Stop()
}
