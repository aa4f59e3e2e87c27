package commands

import (
	"context"
	"log/slog"
	"time"

	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/ports"
)

// CancelRouteCommandHandler abandons a route that has not finished. Resources
// of a route in progress are released.
type CancelRouteCommandHandler struct {
	uowFactory RouteUoWFactory
	effects    sideEffects
}

// NewCancelRouteCommandHandler wires the handler. A nil auditor or logger is allowed.
//
// Example:
//
//	h := commands.NewCancelRouteCommandHandler(uowFactory, auditor, logger)
//	cmd, _ := commands.NewCancelRouteCommand(routeID, "dispatcher:ayse")
//	r, err := h.Handle(ctx, cmd)
func NewCancelRouteCommandHandler(
	uowFactory RouteUoWFactory,
	auditor ports.Auditor,
	logger *slog.Logger,
) CancelRouteCommandHandler {
	return CancelRouteCommandHandler{
		uowFactory: uowFactory,
		effects:    newSideEffects(nil, auditor, logger),
	}
}

func (h *CancelRouteCommandHandler) Handle(ctx context.Context, cmd CancelRouteCommand) (*route.Route, error) {
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

	r, err := uow.RouteRepository().Get(ctx, cmd.RouteID())
	if err != nil {
		return nil, err
	}

	wasInProgress, err := r.Cancel(time.Now())
	if err != nil {
		return nil, err
	}
	if err = uow.RouteRepository().Update(ctx, r); err != nil {
		return nil, err
	}

	if wasInProgress {
		res, resErr := loadRouteResources(ctx, uow, r)
		if resErr != nil {
			return nil, resErr
		}
		if err = res.release(); err != nil {
			return nil, err
		}
		if err = res.save(ctx, uow); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.effects.audit(ctx, ports.AuditRecord{
		Actor:      cmd.Actor(),
		Action:     "route.cancelled",
		EntityKind: "route",
		EntityID:   r.ID().String(),
		Changes:    map[string]any{"released_resources": wasInProgress},
	})

	return r, nil
}
