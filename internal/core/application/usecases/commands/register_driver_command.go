package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrRegisterDriverCommandIsNotConstructed = errors.New(
	"RegisterDriverCommand must be created via NewRegisterDriverCommand constructor",
)

type RegisterDriverCommand struct { //nolint:recvcheck //using for validation
	driverID      kernel.UUID
	name          string
	licenseNumber string
	actor         string

	guard guard.ConstructorGuard
}

// NewRegisterDriverCommand requires a driver id and an actor. Name and license are checked by the aggregate.
func NewRegisterDriverCommand(
	driverID kernel.UUID,
	name string,
	licenseNumber string,
	actor string,
) (RegisterDriverCommand, error) {
	if err := errors.Join(driverID.Validate(), requireActor(actor)); err != nil {
		return RegisterDriverCommand{}, err
	}
	return RegisterDriverCommand{
		driverID:      driverID,
		name:          strings.TrimSpace(name),
		licenseNumber: strings.TrimSpace(licenseNumber),
		actor:         strings.TrimSpace(actor),
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate fails for a zero value not built by NewRegisterDriverCommand.
func (c RegisterDriverCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDriverCommandIsNotConstructed)
}

func (c RegisterDriverCommand) DriverID() kernel.UUID { return c.driverID }
func (c RegisterDriverCommand) Name() string          { return c.name }
func (c RegisterDriverCommand) LicenseNumber() string { return c.licenseNumber }
func (c RegisterDriverCommand) Actor() string         { return c.actor }
