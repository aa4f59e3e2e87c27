package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/guard"
)

var ErrAdvanceShipmentStatusCommandIsNotConstructed = errors.New(
	"AdvanceShipmentStatusCommand must be created via NewAdvanceShipmentStatusCommand constructor",
)

type AdvanceShipmentStatusCommand struct { //nolint:recvcheck //using for validation
	shipmentID    kernel.UUID
	target        shipment.Status
	actor         string
	notes         string
	point         *kernel.GeoPoint
	address       string
	recipientName string

	guard guard.ConstructorGuard
}

// NewAdvanceShipmentStatusCommand parses target by name; an unknown name is a
// validation error.
func NewAdvanceShipmentStatusCommand(
	shipmentID kernel.UUID,
	target string,
	actor string,
	notes string,
	point *kernel.GeoPoint,
	address string,
	recipientName string,
) (AdvanceShipmentStatusCommand, error) {
	status, statusErr := shipment.ParseStatus(target)
	var pointErr error
	if point != nil {
		pointErr = point.Validate()
	}
	if err := errors.Join(shipmentID.Validate(), statusErr, requireActor(actor), pointErr); err != nil {
		return AdvanceShipmentStatusCommand{}, err
	}

	return AdvanceShipmentStatusCommand{
		shipmentID:    shipmentID,
		target:        status,
		actor:         strings.TrimSpace(actor),
		notes:         strings.TrimSpace(notes),
		point:         point,
		address:       strings.TrimSpace(address),
		recipientName: strings.TrimSpace(recipientName),
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate fails for a zero value not built by NewAdvanceShipmentStatusCommand.
func (c AdvanceShipmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceShipmentStatusCommandIsNotConstructed)
}

func (c AdvanceShipmentStatusCommand) ShipmentID() kernel.UUID { return c.shipmentID }
func (c AdvanceShipmentStatusCommand) Target() shipment.Status { return c.target }
func (c AdvanceShipmentStatusCommand) Actor() string           { return c.actor }
func (c AdvanceShipmentStatusCommand) Notes() string           { return c.notes }
func (c AdvanceShipmentStatusCommand) Point() *kernel.GeoPoint { return c.point }
func (c AdvanceShipmentStatusCommand) Address() string         { return c.address }
func (c AdvanceShipmentStatusCommand) RecipientName() string   { return c.recipientName }
