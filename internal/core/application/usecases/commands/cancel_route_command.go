package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrCancelRouteCommandIsNotConstructed = errors.New(
	"CancelRouteCommand must be created via NewCancelRouteCommand constructor",
)

type CancelRouteCommand struct { //nolint:recvcheck //using for validation
	routeID kernel.UUID
	actor   string

	guard guard.ConstructorGuard
}

// NewCancelRouteCommand requires a route id and an actor.
func NewCancelRouteCommand(routeID kernel.UUID, actor string) (CancelRouteCommand, error) {
	if err := errors.Join(routeID.Validate(), requireActor(actor)); err != nil {
		return CancelRouteCommand{}, err
	}
	return CancelRouteCommand{
		routeID: routeID,
		actor:   strings.TrimSpace(actor),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate fails for a zero value not built by NewCancelRouteCommand.
func (c CancelRouteCommand) Validate() error {
	return c.guard.Validate(ErrCancelRouteCommandIsNotConstructed)
}

func (c CancelRouteCommand) RouteID() kernel.UUID { return c.routeID }
func (c CancelRouteCommand) Actor() string        { return c.actor }
