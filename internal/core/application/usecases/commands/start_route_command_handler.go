package commands

import (
	"context"
	"log/slog"
	"time"

	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/ports"
)

// StartRouteCommandHandler puts a Planned route in progress. The bound vehicle
// must be Idle and enters Transit, the bound driver must be available and
// goes off duty. All three are written in the same transaction; any failed
// check rolls it back.
type StartRouteCommandHandler struct {
	uowFactory RouteUoWFactory
	effects    sideEffects
}

// NewStartRouteCommandHandler wires the handler. A nil auditor or logger is allowed.
//
// Example:
//
//	h := commands.NewStartRouteCommandHandler(uowFactory, auditor, logger)
//	cmd, _ := commands.NewStartRouteCommand(routeID, "dispatcher:ayse")
//	r, err := h.Handle(ctx, cmd)
func NewStartRouteCommandHandler(
	uowFactory RouteUoWFactory,
	auditor ports.Auditor,
	logger *slog.Logger,
) StartRouteCommandHandler {
	return StartRouteCommandHandler{
		uowFactory: uowFactory,
		effects:    newSideEffects(nil, auditor, logger),
	}
}

func (h *StartRouteCommandHandler) Handle(ctx context.Context, cmd StartRouteCommand) (*route.Route, error) {
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
	res, err := loadRouteResources(ctx, uow, r)
	if err != nil {
		return nil, err
	}

	if _, err = r.Status().Start(); err != nil {
		return nil, err
	}
	if err = res.start(); err != nil {
		return nil, err
	}
	if err = r.Start(time.Now()); err != nil {
		return nil, err
	}

	if err = uow.RouteRepository().Update(ctx, r); err != nil {
		return nil, err
	}
	if err = res.save(ctx, uow); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.effects.audit(ctx, ports.AuditRecord{
		Actor:      cmd.Actor(),
		Action:     "route.started",
		EntityKind: "route",
		EntityID:   r.ID().String(),
		Changes:    map[string]any{"status": r.Status().String()},
	})

	return r, nil
}
