package commands

import (
	"context"
	"fmt"
	"log/slog"

	"logistics/internal/core/domain/model/invoice"
	"logistics/internal/core/ports"
)

type SendInvoiceCommandHandler struct {
	uowFactory InvoiceUoWFactory
	effects    sideEffects
}

// NewSendInvoiceCommandHandler wires the handler. The notifier, auditor and
// logger may be nil.
//
// Example:
//
//	h := commands.NewSendInvoiceCommandHandler(uowFactory, notifier, auditor, logger)
//	cmd, _ := commands.NewSendInvoiceCommand(invoiceID, "billing:mert")
//	inv, err := h.Handle(ctx, cmd)
func NewSendInvoiceCommandHandler(
	uowFactory InvoiceUoWFactory,
	notifier ports.Notifier,
	auditor ports.Auditor,
	logger *slog.Logger,
) SendInvoiceCommandHandler {
	return SendInvoiceCommandHandler{
		uowFactory: uowFactory,
		effects:    newSideEffects(notifier, auditor, logger),
	}
}

func (h *SendInvoiceCommandHandler) Handle(ctx context.Context, cmd SendInvoiceCommand) (*invoice.Invoice, error) {
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
	if err = inv.Send(); err != nil {
		return nil, err
	}
	if err = uow.InvoiceRepository().Update(ctx, inv); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.effects.notify(ctx, ports.Notification{
		UserID:        inv.CustomerID().String(),
		Title:         "invoice sent",
		Message:       fmt.Sprintf("Invoice %s over %s is due on %s", inv.Number(), inv.Total(), inv.DueDate().Format("2006-01-02")),
		Kind:          "invoice",
		RelatedEntity: "invoice",
		RelatedID:     inv.ID().String(),
	})
	h.effects.audit(ctx, ports.AuditRecord{
		Actor:      cmd.Actor(),
		Action:     "invoice.sent",
		EntityKind: "invoice",
		EntityID:   inv.ID().String(),
		Changes:    map[string]any{"status": inv.Status().String()},
	})

	return inv, nil
}
