package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrAssignShipmentCommandIsNotConstructed = errors.New(
	"AssignShipmentCommand must be created via NewAssignShipmentCommand constructor",
)

type AssignShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	vehicleID  kernel.UUID
	driverID   *kernel.UUID
	actor      string

	guard guard.ConstructorGuard
}

// NewAssignShipmentCommand requires a vehicle; the driver is optional.
func NewAssignShipmentCommand(
	shipmentID kernel.UUID,
	vehicleID kernel.UUID,
	driverID *kernel.UUID,
	actor string,
) (AssignShipmentCommand, error) {
	var driverErr error
	if driverID != nil {
		driverErr = driverID.Validate()
	}
	if err := errors.Join(shipmentID.Validate(), vehicleID.Validate(), driverErr, requireActor(actor)); err != nil {
		return AssignShipmentCommand{}, err
	}
	return AssignShipmentCommand{
		shipmentID: shipmentID,
		vehicleID:  vehicleID,
		driverID:   driverID,
		actor:      strings.TrimSpace(actor),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate fails for a zero value not built by NewAssignShipmentCommand.
func (c AssignShipmentCommand) Validate() error {
	return c.guard.Validate(ErrAssignShipmentCommandIsNotConstructed)
}

func (c AssignShipmentCommand) ShipmentID() kernel.UUID { return c.shipmentID }
func (c AssignShipmentCommand) VehicleID() kernel.UUID  { return c.vehicleID }
func (c AssignShipmentCommand) DriverID() *kernel.UUID  { return c.driverID }
func (c AssignShipmentCommand) Actor() string           { return c.actor }
