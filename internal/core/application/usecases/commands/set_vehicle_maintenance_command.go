package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrSetVehicleMaintenanceCommandIsNotConstructed = errors.New(
	"SetVehicleMaintenanceCommand must be created via NewSetVehicleMaintenanceCommand constructor",
)

// SetVehicleMaintenanceCommand takes a vehicle into maintenance or brings it back.
type SetVehicleMaintenanceCommand struct { //nolint:recvcheck //using for validation
	vehicleID     kernel.UUID
	inMaintenance bool
	actor         string

	guard guard.ConstructorGuard
}

// NewSetVehicleMaintenanceCommand records whether the vehicle enters or leaves maintenance.
func NewSetVehicleMaintenanceCommand(
	vehicleID kernel.UUID,
	inMaintenance bool,
	actor string,
) (SetVehicleMaintenanceCommand, error) {
	if err := errors.Join(vehicleID.Validate(), requireActor(actor)); err != nil {
		return SetVehicleMaintenanceCommand{}, err
	}
	return SetVehicleMaintenanceCommand{
		vehicleID:     vehicleID,
		inMaintenance: inMaintenance,
		actor:         strings.TrimSpace(actor),
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate fails for a zero value not built by NewSetVehicleMaintenanceCommand.
func (c SetVehicleMaintenanceCommand) Validate() error {
	return c.guard.Validate(ErrSetVehicleMaintenanceCommandIsNotConstructed)
}

func (c SetVehicleMaintenanceCommand) VehicleID() kernel.UUID { return c.vehicleID }
func (c SetVehicleMaintenanceCommand) InMaintenance() bool    { return c.inMaintenance }
func (c SetVehicleMaintenanceCommand) Actor() string          { return c.actor }
