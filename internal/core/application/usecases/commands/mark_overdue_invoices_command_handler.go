package commands

import (
	"context"
	"log/slog"

	"logistics/internal/core/ports"
)

type MarkOverdueInvoicesCommandHandler struct {
	uowFactory InvoiceUoWFactory
	effects    sideEffects
}

// NewMarkOverdueInvoicesCommandHandler wires the handler used by the overdue invoices job.
func NewMarkOverdueInvoicesCommandHandler(
	uowFactory InvoiceUoWFactory,
	auditor ports.Auditor,
	logger *slog.Logger,
) MarkOverdueInvoicesCommandHandler {
	return MarkOverdueInvoicesCommandHandler{
		uowFactory: uowFactory,
		effects:    newSideEffects(nil, auditor, logger),
	}
}

// Handle returns the number of invoices moved to Overdue. All of them change
// in one transaction.
func (h *MarkOverdueInvoicesCommandHandler) Handle(ctx context.Context, cmd MarkOverdueInvoicesCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	invoices, err := uow.InvoiceRepository().GetSentDueBefore(ctx, cmd.Today())
	if err != nil {
		return 0, err
	}
	if len(invoices) == 0 {
		return 0, nil
	}

	for _, inv := range invoices {
		if err = inv.MarkOverdue(cmd.Today()); err != nil {
			return 0, err
		}
		if err = uow.InvoiceRepository().Update(ctx, inv); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	for _, inv := range invoices {
		h.effects.audit(ctx, ports.AuditRecord{
			Actor:      cmd.Actor(),
			Action:     "invoice.overdue",
			EntityKind: "invoice",
			EntityID:   inv.ID().String(),
			Changes:    map[string]any{"due_date": inv.DueDate().Format("2006-01-02")},
		})
	}

	return len(invoices), nil
}
