package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrToggleDriverAvailabilityCommandIsNotConstructed = errors.New(
	"ToggleDriverAvailabilityCommand must be created via NewToggleDriverAvailabilityCommand constructor",
)

type ToggleDriverAvailabilityCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	actor    string

	guard guard.ConstructorGuard
}

// NewToggleDriverAvailabilityCommand requires a driver id and an actor.
func NewToggleDriverAvailabilityCommand(driverID kernel.UUID, actor string) (ToggleDriverAvailabilityCommand, error) {
	if err := errors.Join(driverID.Validate(), requireActor(actor)); err != nil {
		return ToggleDriverAvailabilityCommand{}, err
	}
	return ToggleDriverAvailabilityCommand{
		driverID: driverID,
		actor:    strings.TrimSpace(actor),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate fails for a zero value not built by NewToggleDriverAvailabilityCommand.
func (c ToggleDriverAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrToggleDriverAvailabilityCommandIsNotConstructed)
}

func (c ToggleDriverAvailabilityCommand) DriverID() kernel.UUID { return c.driverID }
func (c ToggleDriverAvailabilityCommand) Actor() string         { return c.actor }
