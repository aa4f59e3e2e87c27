package commands

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	customerID        kernel.UUID
	origin            shipment.Address
	destination       shipment.Address
	pricing           shipment.Pricing
	estimatedDelivery *time.Time
	actor             string

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand validates the customer, both addresses and the pricing.
func NewCreateShipmentCommand(
	customerID kernel.UUID,
	origin shipment.Address,
	destination shipment.Address,
	pricing shipment.Pricing,
	estimatedDelivery *time.Time,
	actor string,
) (CreateShipmentCommand, error) {
	var pricingErr error
	if err := pricing.Price().Validate(); err != nil {
		pricingErr = errs.NewValueIsRequiredErrorWithCause("pricing", err)
	}
	if err := errors.Join(
		customerID.Validate(),
		origin.Validate(),
		destination.Validate(),
		pricingErr,
		requireActor(actor),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return CreateShipmentCommand{
		customerID:        customerID,
		origin:            origin,
		destination:       destination,
		pricing:           pricing,
		estimatedDelivery: estimatedDelivery,
		actor:             strings.TrimSpace(actor),
		guard:             guard.NewConstructorGuard(),
	}, nil
}

// Validate fails for a zero value not built by NewCreateShipmentCommand.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

func (c CreateShipmentCommand) CustomerID() kernel.UUID       { return c.customerID }
func (c CreateShipmentCommand) Origin() shipment.Address      { return c.origin }
func (c CreateShipmentCommand) Destination() shipment.Address { return c.destination }
func (c CreateShipmentCommand) Pricing() shipment.Pricing     { return c.pricing }
func (c CreateShipmentCommand) EstimatedDelivery() *time.Time { return c.estimatedDelivery }
func (c CreateShipmentCommand) Actor() string                 { return c.actor }
