package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrStartRouteCommandIsNotConstructed = errors.New(
	"StartRouteCommand must be created via NewStartRouteCommand constructor",
)

type StartRouteCommand struct { //nolint:recvcheck //using for validation
	routeID kernel.UUID
	actor   string

	guard guard.ConstructorGuard
}

// NewStartRouteCommand requires a route id and an actor.
func NewStartRouteCommand(routeID kernel.UUID, actor string) (StartRouteCommand, error) {
	if err := errors.Join(routeID.Validate(), requireActor(actor)); err != nil {
		return StartRouteCommand{}, err
	}
	return StartRouteCommand{
		routeID: routeID,
		actor:   strings.TrimSpace(actor),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate fails for a zero value not built by NewStartRouteCommand.
func (c StartRouteCommand) Validate() error {
	return c.guard.Validate(ErrStartRouteCommandIsNotConstructed)
}

func (c StartRouteCommand) RouteID() kernel.UUID {
	return c.routeID
}

func (c StartRouteCommand) Actor() string {
	return c.actor
}

func requireActor(actor string) error {
	if strings.TrimSpace(actor) == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	return nil
}
