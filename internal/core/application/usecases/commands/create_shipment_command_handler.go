package commands

import (
	"context"
	"log/slog"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/ports"
)

const shipmentCreatedNote = "shipment created"

type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	effects    sideEffects
}

// NewCreateShipmentCommandHandler wires the handler. A nil auditor or logger is allowed.
//
// Example:
//
//	h := commands.NewCreateShipmentCommandHandler(uowFactory, auditor, logger)
//	cmd, _ := commands.NewCreateShipmentCommand(customerID, origin, destination, pricing, ...)
//	s, err := h.Handle(ctx, cmd) // s.Reference() == "SHP-2024-00001"

func NewCreateShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	auditor ports.Auditor,
	logger *slog.Logger,
) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		effects:    newSideEffects(nil, auditor, logger),
	}
}

// Handle registers a Pending shipment with the next yearly reference and a
// fresh tracking token, and writes its first history entry.
func (h *CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) (*shipment.Shipment, error) {
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

	now := time.Now().UTC()
	seq, err := uow.SequenceGenerator().Next(ctx, shipment.ReferencePrefix, now.Year())
	if err != nil {
		return nil, err
	}
	reference, err := shipment.NewReference(now.Year(), seq)
	if err != nil {
		return nil, err
	}
	token, err := shipment.NewTrackingToken()
	if err != nil {
		return nil, err
	}

	s, err := shipment.NewShipment(kernel.NewUUID(), reference, token, cmd.CustomerID(),
		cmd.Origin(), cmd.Destination(), cmd.Pricing(), cmd.EstimatedDelivery(), now)
	if err != nil {
		return nil, err
	}
	entry, err := shipment.NewHistoryEntry(kernel.NewUUID(), s.ID(), s.Status(), cmd.Actor(),
		shipmentCreatedNote, s.Origin().Point(), s.Origin().Text(), now)
	if err != nil {
		return nil, err
	}

	if err = uow.ShipmentRepository().Add(ctx, s); err != nil {
		return nil, err
	}
	if err = uow.ShipmentHistoryRepository().Append(ctx, entry); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.effects.audit(ctx, ports.AuditRecord{
		Actor:      cmd.Actor(),
		Action:     "shipment.created",
		EntityKind: "shipment",
		EntityID:   s.ID().String(),
		Changes:    map[string]any{"reference": s.Reference().String()},
	})

	return s, nil
}
