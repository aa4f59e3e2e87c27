package commands

import (
	"context"
	"fmt"
	"log/slog"

	"logistics/internal/core/domain/model/invoice"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

type CreateInvoiceCommandHandler struct {
	uowFactory InvoiceUoWFactory
	effects    sideEffects
}

// NewCreateInvoiceCommandHandler wires the handler. A nil auditor or logger is allowed.
func NewCreateInvoiceCommandHandler(
	uowFactory InvoiceUoWFactory,
	auditor ports.Auditor,
	logger *slog.Logger,
) CreateInvoiceCommandHandler {
	return CreateInvoiceCommandHandler{
		uowFactory: uowFactory,
		effects:    newSideEffects(nil, auditor, logger),
	}
}

// Handle creates a Draft invoice with one item per shipment, priced at the
// shipment total. The number is drawn from the sequence of the issue year.
func (h *CreateInvoiceCommandHandler) Handle(ctx context.Context, cmd CreateInvoiceCommand) (*invoice.Invoice, error) {
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

	if _, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID()); err != nil {
		return nil, err
	}
	shipments, err := uow.ShipmentRepository().GetByIDs(ctx, cmd.ShipmentIDs())
	if err != nil {
		return nil, err
	}

	year := cmd.IssueDate().Year()
	seq, err := uow.SequenceGenerator().Next(ctx, invoice.NumberPrefix, year)
	if err != nil {
		return nil, err
	}
	number, err := invoice.NewNumber(year, seq)
	if err != nil {
		return nil, err
	}

	inv, err := invoice.NewInvoice(kernel.NewUUID(), number, cmd.CustomerID(),
		cmd.IssueDate(), cmd.DueDate(), cmd.TaxRate(), cmd.Discount(), cmd.Notes())
	if err != nil {
		return nil, err
	}
	for _, s := range shipments {
		item, itemErr := itemForShipment(cmd.CustomerID(), s)
		if itemErr != nil {
			return nil, itemErr
		}
		if err = inv.AddItem(item); err != nil {
			return nil, err
		}
	}

	if err = uow.InvoiceRepository().Add(ctx, inv); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.effects.audit(ctx, ports.AuditRecord{
		Actor:      cmd.Actor(),
		Action:     "invoice.created",
		EntityKind: "invoice",
		EntityID:   inv.ID().String(),
		Changes: map[string]any{
			"number": inv.Number().String(),
			"total":  inv.Total().String(),
		},
	})

	return inv, nil
}

func itemForShipment(customerID kernel.UUID, s *shipment.Shipment) (invoice.Item, error) {
	if !s.CustomerID().IsEqual(customerID) {
		return invoice.Item{}, errs.NewValueIsInvalidErrorWithCause("shipment ids",
			fmt.Errorf("shipment %s belongs to another customer", s.Reference()))
	}
	id := s.ID()
	return invoice.NewItem(kernel.NewUUID(), &id, "Shipment "+s.Reference().String(), 1, s.TotalPrice())
}
