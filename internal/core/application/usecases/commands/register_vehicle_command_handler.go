package commands

import (
	"context"
	"log/slog"

	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/core/ports"
)

type RegisterVehicleCommandHandler struct {
	uowFactory FleetUoWFactory
	effects    sideEffects
}

// NewRegisterVehicleCommandHandler wires the handler. A nil auditor or logger is allowed.
func NewRegisterVehicleCommandHandler(
	uowFactory FleetUoWFactory,
	auditor ports.Auditor,
	logger *slog.Logger,
) RegisterVehicleCommandHandler {
	return RegisterVehicleCommandHandler{
		uowFactory: uowFactory,
		effects:    newSideEffects(nil, auditor, logger),
	}
}

// Handle stores a new Idle vehicle. A plate already in use surfaces as
// errs.ConflictError from the repository.
func (h *RegisterVehicleCommandHandler) Handle(ctx context.Context, cmd RegisterVehicleCommand) (*vehicle.Vehicle, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	v, err := vehicle.NewVehicle(cmd.VehicleID(), cmd.PlateNumber(), cmd.CapacityKg())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.VehicleRepository().Add(ctx, v); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.effects.audit(ctx, ports.AuditRecord{
		Actor:      cmd.Actor(),
		Action:     "vehicle.registered",
		EntityKind: "vehicle",
		EntityID:   v.ID().String(),
		Changes:    map[string]any{"plate_number": v.PlateNumber(), "capacity_kg": v.CapacityKg()},
	})

	return v, nil
}
