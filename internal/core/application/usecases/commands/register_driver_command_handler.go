package commands

import (
	"context"
	"log/slog"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/ports"
)

type RegisterDriverCommandHandler struct {
	uowFactory FleetUoWFactory
	effects    sideEffects
}

// NewRegisterDriverCommandHandler wires the handler. A nil auditor or logger is allowed.
func NewRegisterDriverCommandHandler(
	uowFactory FleetUoWFactory,
	auditor ports.Auditor,
	logger *slog.Logger,
) RegisterDriverCommandHandler {
	return RegisterDriverCommandHandler{
		uowFactory: uowFactory,
		effects:    newSideEffects(nil, auditor, logger),
	}
}

func (h *RegisterDriverCommandHandler) Handle(ctx context.Context, cmd RegisterDriverCommand) (*driver.Driver, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	d, err := driver.NewDriver(cmd.DriverID(), cmd.Name(), cmd.LicenseNumber())
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

	if err = uow.DriverRepository().Add(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.effects.audit(ctx, ports.AuditRecord{
		Actor:      cmd.Actor(),
		Action:     "driver.registered",
		EntityKind: "driver",
		EntityID:   d.ID().String(),
		Changes:    map[string]any{"license_number": d.LicenseNumber()},
	})

	return d, nil
}
