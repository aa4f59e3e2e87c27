package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

const routeNameLayout = "02.01.2006 15:04"

// OptimizeRouteCommandHandler sequences the shipments with the nearest
// neighbour heuristic and stores the result as a Planned route.
//
// Example:
//
//	cmd, _ := NewOptimizeRouteCommand(ids, vehicleID, nil, "Tuzla Depo", depot,
//	    services.ObjectiveDistance, nil, "dispatcher")
//	r, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(r.Metrics().TotalDistanceKm, r.Metrics().DurationMinutes)
type OptimizeRouteCommandHandler struct {
	uowFactory RouteUoWFactory
	sequencer  services.RouteSequencer
	effects    sideEffects
}

// NewOptimizeRouteCommandHandler wires the handler. A nil auditor or logger is allowed.
//
// Example:
//
//	h := commands.NewOptimizeRouteCommandHandler(uowFactory, auditor, logger)
//	cmd, _ := commands.NewOptimizeRouteCommand(ids, vehicleID, nil, "Depot", depot, services.ObjectiveDistance, nil, "dispatcher:ayse")
//	r, err := h.Handle(ctx, cmd)
func NewOptimizeRouteCommandHandler(
	uowFactory RouteUoWFactory,
	auditor ports.Auditor,
	logger *slog.Logger,
) OptimizeRouteCommandHandler {
	return OptimizeRouteCommandHandler{
		uowFactory: uowFactory,
		sequencer:  services.NewRouteSequencer(),
		effects:    newSideEffects(nil, auditor, logger),
	}
}

func (h *OptimizeRouteCommandHandler) Handle(ctx context.Context, cmd OptimizeRouteCommand) (*route.Route, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if len(cmd.ShipmentIDs()) == 0 {
		return nil, errs.NewObjectNotFoundError("shipments", "empty selection")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipments, err := uow.ShipmentRepository().GetByIDs(ctx, cmd.ShipmentIDs())
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

	inputs := make([]services.StopInput, 0, len(shipments))
	for _, s := range shipments {
		if s.Status().IsFinal() {
			return nil, errs.NewInvalidStateError("shipment", s.Status().String(), "route")
		}
		inputs = append(inputs, services.StopInput{ShipmentID: s.ID(), Destination: s.Destination().Point()})
	}

	plan, err := h.sequencer.Sequence(inputs, cmd.StartPoint())
	if err != nil {
		return nil, err
	}

	r, err := h.buildRoute(cmd, plan, time.Now())
	if err != nil {
		return nil, err
	}

	if err = uow.RouteRepository().Add(ctx, r); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.effects.audit(ctx, ports.AuditRecord{
		Actor:      cmd.Actor(),
		Action:     "route.optimized",
		EntityKind: "route",
		EntityID:   r.ID().String(),
		Changes: map[string]any{
			"objective":         cmd.Objective().String(),
			"stop_count":        r.StopCount(),
			"total_distance_km": r.Metrics().TotalDistanceKm,
			"duration_minutes":  r.Metrics().DurationMinutes,
		},
	})

	return r, nil
}

func (h *OptimizeRouteCommandHandler) buildRoute(
	cmd OptimizeRouteCommand,
	plan services.SequencePlan,
	now time.Time,
) (*route.Route, error) {
	vehicleID := cmd.VehicleID()
	r, err := route.NewRoute(
		kernel.NewUUID(),
		fmt.Sprintf("Route - %s", now.Format(routeNameLayout)),
		&vehicleID,
		cmd.DriverID(),
		cmd.StartLocation(),
		cmd.StartPoint(),
		now,
	)
	if err != nil {
		return nil, err
	}

	for i, planned := range plan.Stops {
		stop, stopErr := route.NewStop(
			kernel.NewUUID(),
			planned.ShipmentID,
			planned.Sequence,
			route.Delivery,
			nil,
			estimatedArrival(cmd.PlannedStart(), planned.CumulativeDistanceKm, i),
			route.DefaultServiceTimeMinutes,
		)
		if stopErr != nil {
			return nil, stopErr
		}
		if stopErr = r.AddStop(stop); stopErr != nil {
			return nil, stopErr
		}
	}

	metrics := route.Metrics{TotalDistanceKm: plan.TotalDistanceKm, DurationMinutes: plan.DurationMinutes}
	if err = r.Plan(metrics, cmd.PlannedStart()); err != nil {
		return nil, err
	}
	return r, nil
}

// estimatedArrival adds the driving time to the stop and the service time of
// every earlier stop to plannedStart.
func estimatedArrival(plannedStart *time.Time, cumulativeKm float64, earlierStops int) *time.Time {
	if plannedStart == nil {
		return nil
	}
	minutes := services.EstimateDurationMinutes(cumulativeKm) + earlierStops*route.DefaultServiceTimeMinutes
	at := plannedStart.UTC().Add(time.Duration(minutes) * time.Minute)
	return &at
}
