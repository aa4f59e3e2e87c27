package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrRegisterCustomerCommandIsNotConstructed = errors.New(
	"RegisterCustomerCommand must be created via NewRegisterCustomerCommand constructor",
)

type RegisterCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	name       string
	email      string
	actor      string

	guard guard.ConstructorGuard
}

// NewRegisterCustomerCommand requires a customer id and an actor. Name and email are checked by the aggregate.
func NewRegisterCustomerCommand(customerID kernel.UUID, name, email, actor string) (RegisterCustomerCommand, error) {
	if err := errors.Join(customerID.Validate(), requireActor(actor)); err != nil {
		return RegisterCustomerCommand{}, err
	}
	return RegisterCustomerCommand{
		customerID: customerID,
		name:       strings.TrimSpace(name),
		email:      strings.TrimSpace(email),
		actor:      strings.TrimSpace(actor),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate fails for a zero value not built by NewRegisterCustomerCommand.
func (c RegisterCustomerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCustomerCommandIsNotConstructed)
}

func (c RegisterCustomerCommand) CustomerID() kernel.UUID { return c.customerID }
func (c RegisterCustomerCommand) Name() string            { return c.name }
func (c RegisterCustomerCommand) Email() string           { return c.email }
func (c RegisterCustomerCommand) Actor() string           { return c.actor }
