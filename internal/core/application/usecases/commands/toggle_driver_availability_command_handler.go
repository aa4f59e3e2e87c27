package commands

import (
	"context"
	"log/slog"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/ports"
)

type ToggleDriverAvailabilityCommandHandler struct {
	uowFactory FleetUoWFactory
	effects    sideEffects
}

// NewToggleDriverAvailabilityCommandHandler wires the handler. A nil auditor or logger is allowed.
func NewToggleDriverAvailabilityCommandHandler(
	uowFactory FleetUoWFactory,
	auditor ports.Auditor,
	logger *slog.Logger,
) ToggleDriverAvailabilityCommandHandler {
	return ToggleDriverAvailabilityCommandHandler{
		uowFactory: uowFactory,
		effects:    newSideEffects(nil, auditor, logger),
	}
}

func (h *ToggleDriverAvailabilityCommandHandler) Handle(
	ctx context.Context,
	cmd ToggleDriverAvailabilityCommand,
) (*driver.Driver, error) {
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

	d, err := uow.DriverRepository().Get(ctx, cmd.DriverID())
	if err != nil {
		return nil, err
	}
	d.ToggleAvailability()

	if err = uow.DriverRepository().Update(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.effects.audit(ctx, ports.AuditRecord{
		Actor:      cmd.Actor(),
		Action:     "driver.availability_toggled",
		EntityKind: "driver",
		EntityID:   d.ID().String(),
		Changes:    map[string]any{"is_available": d.IsAvailable()},
	})

	return d, nil
}
