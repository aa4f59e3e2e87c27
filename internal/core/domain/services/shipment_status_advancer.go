package services

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/pkg/errs"
)

// BoundResources are the aggregates a shipment status change may touch.
// Vehicle and Driver are nil when the shipment has none assigned.
type BoundResources struct {
	Vehicle  *vehicle.Vehicle
	Driver   *driver.Driver
	Customer *customer.Customer
}

// StatusChange describes one requested shipment status change.
type StatusChange struct {
	Target        shipment.Status
	Actor         string
	Notes         string
	Point         *kernel.GeoPoint
	Address       string
	RecipientName string
}

// ShipmentStatusAdvancer applies a status change and its side effects:
//
//	Dispatched: vehicle -> Transit, driver unavailable
//	Delivered:  delivery time and recipient recorded, driver delivery counted,
//	            customer shipment count and revenue increased, vehicle -> Idle
//	otherwise:  status only
//
// Driver availability is left alone on delivery: the driver may still have
// other shipments or a route in progress. Every change produces exactly one history entry. Nothing is mutated when any
// check fails.
type ShipmentStatusAdvancer struct{}

// NewShipmentStatusAdvancer returns the stateless advancer.
func NewShipmentStatusAdvancer() ShipmentStatusAdvancer {
	return ShipmentStatusAdvancer{}
}

func (a ShipmentStatusAdvancer) Advance(
	s *shipment.Shipment,
	res BoundResources,
	change StatusChange,
	now time.Time,
) (shipment.HistoryEntry, error) {
	if err := s.Validate(); err != nil {
		return shipment.HistoryEntry{}, err
	}
	if err := a.checkResources(s, res); err != nil {
		return shipment.HistoryEntry{}, err
	}
	if _, err := s.Status().TransitionTo(change.Target); err != nil {
		return shipment.HistoryEntry{}, err
	}
	if change.Target == shipment.Dispatched && res.Vehicle != nil {
		if _, err := res.Vehicle.Status().EnterTransit(); err != nil {
			return shipment.HistoryEntry{}, err
		}
	}

	entry, err := shipment.NewHistoryEntry(kernel.NewUUID(), s.ID(), change.Target, change.Actor,
		change.Notes, change.Point, change.Address, now)
	if err != nil {
		return shipment.HistoryEntry{}, err
	}

	if err = s.TransitionTo(change.Target, change.RecipientName, now); err != nil {
		return shipment.HistoryEntry{}, err
	}

	switch change.Target { //nolint:exhaustive // other targets only record the status
	case shipment.Dispatched:
		if res.Vehicle != nil {
			if err = res.Vehicle.EnterTransit(); err != nil {
				return shipment.HistoryEntry{}, err
			}
		}
		if res.Driver != nil {
			res.Driver.Assign()
		}
	case shipment.Delivered:
		if res.Driver != nil {
			res.Driver.RecordDelivery(true)
		}
		if err = res.Customer.RecordDeliveredShipment(s.TotalPrice()); err != nil {
			return shipment.HistoryEntry{}, err
		}
		if res.Vehicle != nil {
			if err = res.Vehicle.Release(); err != nil {
				return shipment.HistoryEntry{}, err
			}
		}
	}

	return entry, nil
}

func (a ShipmentStatusAdvancer) checkResources(s *shipment.Shipment, res BoundResources) error {
	if err := res.Customer.Validate(); err != nil {
		return err
	}
	if !res.Customer.ID().IsEqual(s.CustomerID()) {
		return errs.NewValueIsInvalidErrorWithCause("customer", errors.New("does not own the shipment"))
	}
	var vehicleID, driverID *kernel.UUID
	if res.Vehicle != nil {
		id := res.Vehicle.ID()
		vehicleID = &id
	}
	if res.Driver != nil {
		id := res.Driver.ID()
		driverID = &id
	}
	return errors.Join(
		matchBinding("vehicle", s.VehicleID(), vehicleID),
		matchBinding("driver", s.DriverID(), driverID),
	)
}

func matchBinding(name string, bound, loaded *kernel.UUID) error {
	switch {
	case bound == nil && loaded == nil:
		return nil
	case bound == nil || loaded == nil || !bound.IsEqual(*loaded):
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("loaded %s does not match the assignment", name))
	}
	return nil
}
