package commands

import (
	"context"
	"log/slog"

	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/ports"
)

type AssignShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	effects    sideEffects
}

// NewAssignShipmentCommandHandler wires the handler. A nil auditor or logger is allowed.
func NewAssignShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	auditor ports.Auditor,
	logger *slog.Logger,
) AssignShipmentCommandHandler {
	return AssignShipmentCommandHandler{
		uowFactory: uowFactory,
		effects:    newSideEffects(nil, auditor, logger),
	}
}

func (h *AssignShipmentCommandHandler) Handle(ctx context.Context, cmd AssignShipmentCommand) (*shipment.Shipment, error) {
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

	s, err := uow.ShipmentRepository().Get(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, err
	}
	if _, err = uow.VehicleRepository().Get(ctx, cmd.VehicleID()); err != nil {
		return nil, err
	}
	if cmd.DriverID() != nil {
		if _, err = uow.DriverRepository().Get(ctx, *cmd.DriverID()); err != nil {
			return nil, err
		}
	}

	if err = s.AssignResources(cmd.VehicleID(), cmd.DriverID()); err != nil {
		return nil, err
	}
	if err = uow.ShipmentRepository().Update(ctx, s); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	changes := map[string]any{"vehicle_id": cmd.VehicleID().String()}
	if cmd.DriverID() != nil {
		changes["driver_id"] = cmd.DriverID().String()
	}
	h.effects.audit(ctx, ports.AuditRecord{
		Actor:      cmd.Actor(),
		Action:     "shipment.assigned",
		EntityKind: "shipment",
		EntityID:   s.ID().String(),
		Changes:    changes,
	})

	return s, nil
}
