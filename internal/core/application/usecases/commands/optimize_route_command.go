package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrOptimizeRouteCommandIsNotConstructed = errors.New(
	"OptimizeRouteCommand must be created via NewOptimizeRouteCommand constructor",
)

// OptimizeRouteCommand asks for a Planned route visiting the given shipments
// with one vehicle. An empty shipment list is accepted here and rejected by
// the handler as not found.
type OptimizeRouteCommand struct { //nolint:recvcheck //using for validation
	shipmentIDs   []kernel.UUID
	vehicleID     kernel.UUID
	driverID      *kernel.UUID
	startLocation string
	startPoint    kernel.GeoPoint
	objective     services.Objective
	plannedStart  *time.Time
	actor         string

	guard guard.ConstructorGuard
}

// NewOptimizeRouteCommand rejects duplicate shipment ids and every objective but distance. An empty selection is accepted and reported as not found by the handler.
func NewOptimizeRouteCommand(
	shipmentIDs []kernel.UUID,
	vehicleID kernel.UUID,
	driverID *kernel.UUID,
	startLocation string,
	startPoint kernel.GeoPoint,
	objective services.Objective,
	plannedStart *time.Time,
	actor string,
) (OptimizeRouteCommand, error) {
	cmd := OptimizeRouteCommand{
		startLocation: strings.TrimSpace(startLocation),
		plannedStart:  plannedStart,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentIDs(shipmentIDs),
		cmd.setVehicleID(vehicleID),
		cmd.setDriverID(driverID),
		cmd.setStartPoint(startPoint),
		cmd.setObjective(objective),
		cmd.setActor(actor),
	); err != nil {
		return OptimizeRouteCommand{}, err
	}

	return cmd, nil
}

// Validate fails for a zero value not built by NewOptimizeRouteCommand.
func (c OptimizeRouteCommand) Validate() error {
	return c.guard.Validate(ErrOptimizeRouteCommandIsNotConstructed)
}

func (c OptimizeRouteCommand) ShipmentIDs() []kernel.UUID {
	out := make([]kernel.UUID, len(c.shipmentIDs))
	copy(out, c.shipmentIDs)
	return out
}

func (c OptimizeRouteCommand) VehicleID() kernel.UUID        { return c.vehicleID }
func (c OptimizeRouteCommand) DriverID() *kernel.UUID        { return c.driverID }
func (c OptimizeRouteCommand) StartLocation() string         { return c.startLocation }
func (c OptimizeRouteCommand) StartPoint() kernel.GeoPoint   { return c.startPoint }
func (c OptimizeRouteCommand) Objective() services.Objective { return c.objective }
func (c OptimizeRouteCommand) PlannedStart() *time.Time      { return c.plannedStart }
func (c OptimizeRouteCommand) Actor() string                 { return c.actor }

func (c *OptimizeRouteCommand) setShipmentIDs(ids []kernel.UUID) error {
	seen := make(map[kernel.UUID]struct{}, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
		if _, dup := seen[id]; dup {
			return errs.NewValueIsInvalidErrorWithCause("shipment ids", fmt.Errorf("%s is listed twice", id))
		}
		seen[id] = struct{}{}
	}
	c.shipmentIDs = append([]kernel.UUID(nil), ids...)
	return nil
}

func (c *OptimizeRouteCommand) setVehicleID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("vehicle id", err)
	}
	c.vehicleID = id
	return nil
}

func (c *OptimizeRouteCommand) setDriverID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}
	c.driverID = id
	return nil
}

func (c *OptimizeRouteCommand) setStartPoint(p kernel.GeoPoint) error {
	if err := p.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("start point", err)
	}
	c.startPoint = p
	return nil
}

func (c *OptimizeRouteCommand) setObjective(o services.Objective) error {
	if err := o.ValidateSupported(); err != nil {
		return err
	}
	c.objective = o
	return nil
}

func (c *OptimizeRouteCommand) setActor(actor string) error {
	actor = strings.TrimSpace(actor)
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	c.actor = actor
	return nil
}
