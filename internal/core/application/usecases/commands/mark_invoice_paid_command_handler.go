package commands

import (
	"context"
	"log/slog"
	"time"

	"logistics/internal/core/domain/model/invoice"
	"logistics/internal/core/ports"
)

type MarkInvoicePaidCommandHandler struct {
	uowFactory InvoiceUoWFactory
	effects    sideEffects
}

// NewMarkInvoicePaidCommandHandler wires the handler. A nil auditor or logger is allowed.
func NewMarkInvoicePaidCommandHandler(
	uowFactory InvoiceUoWFactory,
	auditor ports.Auditor,
	logger *slog.Logger,
) MarkInvoicePaidCommandHandler {
	return MarkInvoicePaidCommandHandler{
		uowFactory: uowFactory,
		effects:    newSideEffects(nil, auditor, logger),
	}
}

func (h *MarkInvoicePaidCommandHandler) Handle(ctx context.Context, cmd MarkInvoicePaidCommand) (*invoice.Invoice, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	inv, err := uow.InvoiceRepository().Get(ctx, cmd.InvoiceID())
	if err != nil {
		return nil, err
	}
	if err = inv.MarkPaid(cmd.PaymentMethod(), time.Now()); err != nil {
		return nil, err
	}
	if err = uow.InvoiceRepository().Update(ctx, inv); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.effects.audit(ctx, ports.AuditRecord{
		Actor:      cmd.Actor(),
		Action:     "invoice.paid",
		EntityKind: "invoice",
		EntityID:   inv.ID().String(),
		Changes:    map[string]any{"payment_method": inv.PaymentMethod().String()},
	})

	return inv, nil
}
