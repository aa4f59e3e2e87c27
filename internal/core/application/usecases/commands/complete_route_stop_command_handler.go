package commands

import (
	"context"
	"log/slog"
	"time"

	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/ports"
)

// CompleteRouteStopCommandHandler marks a stop done. Completing the last open
// stop completes the route and releases its vehicle and driver.
type CompleteRouteStopCommandHandler struct {
	uowFactory RouteUoWFactory
	effects    sideEffects
}

// NewCompleteRouteStopCommandHandler wires the handler. A nil auditor or logger is allowed.
//
// Example:
//
//	h := commands.NewCompleteRouteStopCommandHandler(uowFactory, auditor, logger)
//	cmd, _ := commands.NewCompleteRouteStopCommand(routeID, stopID, "driver:42")
//	r, err := h.Handle(ctx, cmd)
func NewCompleteRouteStopCommandHandler(
	uowFactory RouteUoWFactory,
	auditor ports.Auditor,
	logger *slog.Logger,
) CompleteRouteStopCommandHandler {
	return CompleteRouteStopCommandHandler{
		uowFactory: uowFactory,
		effects:    newSideEffects(nil, auditor, logger),
	}
}

func (h *CompleteRouteStopCommandHandler) Handle(
	ctx context.Context,
	cmd CompleteRouteStopCommand,
) (*route.Route, error) {
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

	finished, err := r.CompleteStop(cmd.StopID(), time.Now())
	if err != nil {
		return nil, err
	}

	if err = uow.RouteRepository().Update(ctx, r); err != nil {
		return nil, err
	}

	if finished {
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
		Action:     "route.stop_completed",
		EntityKind: "route",
		EntityID:   r.ID().String(),
		Changes: map[string]any{
			"stop_id":      cmd.StopID().String(),
			"route_status": r.Status().String(),
		},
	})

	return r, nil
}
