package jobs

import (
	"context"
	"log/slog"
	"time"

	"logistics/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultOverdueInvoicesSchedule runs the job at the top of every hour.
const DefaultOverdueInvoicesSchedule = "0 0 * * * *"

// OverdueInvoicesActor is recorded in the audit trail for invoices the job flags.
const OverdueInvoicesActor = "system:overdue-invoices"

type OverdueInvoicesHandler interface {
	Handle(ctx context.Context, cmd commands.MarkOverdueInvoicesCommand) (int, error)
}

// OverdueInvoicesJob moves Sent invoices past their due date to Overdue.
type OverdueInvoicesJob struct {
	handler  OverdueInvoicesHandler
	schedule string
	now      func() time.Time
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOverdueInvoicesJob runs handler on the cron schedule.
func NewOverdueInvoicesJob(handler OverdueInvoicesHandler, schedule string, logger *slog.Logger) *OverdueInvoicesJob {
	if schedule == "" {
		schedule = DefaultOverdueInvoicesSchedule
	}
	return &OverdueInvoicesJob{
		handler:  handler,
		schedule: schedule,
		now:      time.Now,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "overdue_invoices_job"),
	}
}

// Start registers the job with its schedule and starts the scheduler.
func (j *OverdueInvoicesJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue invoices job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running pass to finish.
func (j *OverdueInvoicesJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Overdue invoices job stopped")
}

func (j *OverdueInvoicesJob) run(ctx context.Context) {
	cmd, err := commands.NewMarkOverdueInvoicesCommand(j.now(), OverdueInvoicesActor)
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue invoices job failed", "error", err)
		return
	}

	flagged, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue invoices job failed", "error", err)
		return
	}
	if flagged > 0 {
		j.logger.InfoContext(ctx, "Invoices marked overdue", "count", flagged)
	}
}
