package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrCompleteRouteStopCommandIsNotConstructed = errors.New(
	"CompleteRouteStopCommand must be created via NewCompleteRouteStopCommand constructor",
)

type CompleteRouteStopCommand struct { //nolint:recvcheck //using for validation
	routeID kernel.UUID
	stopID  kernel.UUID
	actor   string

	guard guard.ConstructorGuard
}

// NewCompleteRouteStopCommand requires the route, the stop and an actor.
func NewCompleteRouteStopCommand(routeID, stopID kernel.UUID, actor string) (CompleteRouteStopCommand, error) {
	if err := errors.Join(routeID.Validate(), stopID.Validate(), requireActor(actor)); err != nil {
		return CompleteRouteStopCommand{}, err
	}
	return CompleteRouteStopCommand{
		routeID: routeID,
		stopID:  stopID,
		actor:   strings.TrimSpace(actor),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate fails for a zero value not built by NewCompleteRouteStopCommand.
func (c CompleteRouteStopCommand) Validate() error {
	return c.guard.Validate(ErrCompleteRouteStopCommandIsNotConstructed)
}

func (c CompleteRouteStopCommand) RouteID() kernel.UUID { return c.routeID }
func (c CompleteRouteStopCommand) StopID() kernel.UUID  { return c.stopID }
func (c CompleteRouteStopCommand) Actor() string        { return c.actor }
