package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrRegisterVehicleCommandIsNotConstructed = errors.New(
	"RegisterVehicleCommand must be created via NewRegisterVehicleCommand constructor",
)

// RegisterVehicleCommand adds a vehicle to the fleet. Plate format and capacity
// are checked by the vehicle aggregate itself.
//
// Example:
//
//	cmd, err := NewRegisterVehicleCommand(kernel.NewUUID(), "34 ABC 123", 1200, "dispatcher@acme")
//	if err != nil {
//	    return err
//	}
//	v, err := handler.Handle(ctx, cmd)
type RegisterVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID   kernel.UUID
	plateNumber string
	capacityKg  int
	actor       string

	guard guard.ConstructorGuard
}

// NewRegisterVehicleCommand requires a vehicle id and an actor. Plate and capacity are checked by the aggregate.
func NewRegisterVehicleCommand(
	vehicleID kernel.UUID,
	plateNumber string,
	capacityKg int,
	actor string,
) (RegisterVehicleCommand, error) {
	if err := errors.Join(vehicleID.Validate(), requireActor(actor)); err != nil {
		return RegisterVehicleCommand{}, err
	}
	return RegisterVehicleCommand{
		vehicleID:   vehicleID,
		plateNumber: strings.TrimSpace(plateNumber),
		capacityKg:  capacityKg,
		actor:       strings.TrimSpace(actor),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate fails for a zero value not built by NewRegisterVehicleCommand.
func (c RegisterVehicleCommand) Validate() error {
	return c.guard.Validate(ErrRegisterVehicleCommandIsNotConstructed)
}

func (c RegisterVehicleCommand) VehicleID() kernel.UUID { return c.vehicleID }
func (c RegisterVehicleCommand) PlateNumber() string    { return c.plateNumber }
func (c RegisterVehicleCommand) CapacityKg() int        { return c.capacityKg }
func (c RegisterVehicleCommand) Actor() string          { return c.actor }
