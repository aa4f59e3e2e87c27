package commands

import (
	"context"
	"log/slog"

	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/core/ports"
)

type SetVehicleMaintenanceCommandHandler struct {
	uowFactory FleetUoWFactory
	effects    sideEffects
}

// NewSetVehicleMaintenanceCommandHandler wires the handler. A nil auditor or logger is allowed.
func NewSetVehicleMaintenanceCommandHandler(
	uowFactory FleetUoWFactory,
	auditor ports.Auditor,
	logger *slog.Logger,
) SetVehicleMaintenanceCommandHandler {
	return SetVehicleMaintenanceCommandHandler{
		uowFactory: uowFactory,
		effects:    newSideEffects(nil, auditor, logger),
	}
}

func (h *SetVehicleMaintenanceCommandHandler) Handle(
	ctx context.Context,
	cmd SetVehicleMaintenanceCommand,
) (*vehicle.Vehicle, error) {
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

	v, err := uow.VehicleRepository().Get(ctx, cmd.VehicleID())
	if err != nil {
		return nil, err
	}
	previous := v.Status()

	if cmd.InMaintenance() {
		err = v.StartMaintenance()
	} else {
		err = v.EndMaintenance()
	}
	if err != nil {
		return nil, err
	}

	if err = uow.VehicleRepository().Update(ctx, v); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.effects.audit(ctx, ports.AuditRecord{
		Actor:      cmd.Actor(),
		Action:     "vehicle.maintenance_changed",
		EntityKind: "vehicle",
		EntityID:   v.ID().String(),
		Changes:    map[string]any{"from": previous.String(), "to": v.Status().String()},
	})

	return v, nil
}
