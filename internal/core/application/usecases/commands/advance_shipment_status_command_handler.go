package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
)

type AdvanceShipmentStatusCommandHandler struct {
	uowFactory ShipmentUoWFactory
	advancer   services.ShipmentStatusAdvancer
	cache      ports.TrackingCache
	effects    sideEffects
}

// NewAdvanceShipmentStatusCommandHandler wires the handler. The tracking cache,
// notifier, auditor and logger may each be nil; the matching side effect is
// then skipped.
//
// Example:
//
//	h := commands.NewAdvanceShipmentStatusCommandHandler(uowFactory, cache, notifier, auditor, logger)
//	cmd, _ := commands.NewAdvanceShipmentStatusCommand(id, "InTransit", "driver:42", "left depot", nil, "", "")
//	s, err := h.Handle(ctx, cmd)
func NewAdvanceShipmentStatusCommandHandler(
	uowFactory ShipmentUoWFactory,
	cache ports.TrackingCache,
	notifier ports.Notifier,
	auditor ports.Auditor,
	logger *slog.Logger,
) AdvanceShipmentStatusCommandHandler {
	return AdvanceShipmentStatusCommandHandler{
		uowFactory: uowFactory,
		advancer:   services.NewShipmentStatusAdvancer(),
		cache:      cache,
		effects:    newSideEffects(notifier, auditor, logger),
	}
}

// Handle applies the status change, its side effects on vehicle, driver and
// customer, and the history entry in one transaction.
func (h *AdvanceShipmentStatusCommandHandler) Handle(
	ctx context.Context,
	cmd AdvanceShipmentStatusCommand,
) (*shipment.Shipment, error) {
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
	previous := s.Status()

	res, err := loadBoundResources(ctx, uow, s)
	if err != nil {
		return nil, err
	}

	entry, err := h.advancer.Advance(s, res, services.StatusChange{
		Target:        cmd.Target(),
		Actor:         cmd.Actor(),
		Notes:         cmd.Notes(),
		Point:         cmd.Point(),
		Address:       cmd.Address(),
		RecipientName: cmd.RecipientName(),
	}, time.Now())
	if err != nil {
		return nil, err
	}

	if err = uow.ShipmentRepository().Update(ctx, s); err != nil {
		return nil, err
	}
	if err = saveBoundResources(ctx, uow, res, cmd.Target()); err != nil {
		return nil, err
	}
	if err = uow.ShipmentHistoryRepository().Append(ctx, entry); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.effects.notify(ctx, ports.Notification{
		UserID:        s.CustomerID().String(),
		Title:         "shipment status updated",
		Message:       fmt.Sprintf("Shipment %s is now %s", s.Reference(), s.Status()),
		Kind:          "shipment_status",
		RelatedEntity: "shipment",
		RelatedID:     s.ID().String(),
	})
	h.effects.audit(ctx, ports.AuditRecord{
		Actor:      cmd.Actor(),
		Action:     "shipment.status_changed",
		EntityKind: "shipment",
		EntityID:   s.ID().String(),
		Changes:    map[string]any{"from": previous.String(), "to": s.Status().String()},
	})
	h.invalidateTracking(ctx, s)

	return s, nil
}

func (h *AdvanceShipmentStatusCommandHandler) invalidateTracking(ctx context.Context, s *shipment.Shipment) {
	if h.cache == nil {
		return
	}
	if err := h.cache.Invalidate(ctx, s.TrackingToken().String()); err != nil {
		h.effects.logger.WarnContext(ctx, "tracking cache invalidation failed",
			"shipment_id", s.ID().String(), "error", err)
	}
}

func loadBoundResources(ctx context.Context, uow ShipmentUoW, s *shipment.Shipment) (services.BoundResources, error) {
	var res services.BoundResources

	c, err := uow.CustomerRepository().Get(ctx, s.CustomerID())
	if err != nil {
		return services.BoundResources{}, err
	}
	res.Customer = c

	if id := s.VehicleID(); id != nil {
		v, vErr := uow.VehicleRepository().Get(ctx, *id)
		if vErr != nil {
			return services.BoundResources{}, vErr
		}
		res.Vehicle = v
	}
	if id := s.DriverID(); id != nil {
		d, dErr := uow.DriverRepository().Get(ctx, *id)
		if dErr != nil {
			return services.BoundResources{}, dErr
		}
		res.Driver = d
	}
	return res, nil
}

// saveBoundResources writes back only the aggregates the target touches.
func saveBoundResources(ctx context.Context, uow ShipmentUoW, res services.BoundResources, target shipment.Status) error {
	if target != shipment.Dispatched && target != shipment.Delivered {
		return nil
	}
	if res.Vehicle != nil {
		if err := uow.VehicleRepository().Update(ctx, res.Vehicle); err != nil {
			return err
		}
	}
	if res.Driver != nil {
		if err := uow.DriverRepository().Update(ctx, res.Driver); err != nil {
			return err
		}
	}
	if target == shipment.Delivered {
		return uow.CustomerRepository().Update(ctx, res.Customer)
	}
	return nil
}
