package shipment

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

// Shipment is the aggregate root for a consignment moving from origin to destination.
type Shipment struct {
	id                kernel.UUID
	reference         kernel.DocumentNumber
	trackingToken     TrackingToken
	customerID        kernel.UUID
	origin            Address
	destination       Address
	pricing           Pricing
	status            Status
	vehicleID         *kernel.UUID
	driverID          *kernel.UUID
	estimatedDelivery *time.Time
	actualDelivery    *time.Time
	recipientName     string
	createdAt         time.Time
	version           int

	isConstructed bool
}

// NewShipment creates a Pending shipment without assigned resources.
func NewShipment(
	id kernel.UUID,
	reference kernel.DocumentNumber,
	trackingToken TrackingToken,
	customerID kernel.UUID,
	origin Address,
	destination Address,
	pricing Pricing,
	estimatedDelivery *time.Time,
	createdAt time.Time,
) (*Shipment, error) {
	var refErr error
	if reference.IsZero() || reference.Prefix() != ReferencePrefix {
		refErr = errs.NewValueIsRequiredError("reference")
	}
	var pricingErr error
	if err := pricing.Price().Validate(); err != nil {
		pricingErr = errs.NewValueIsRequiredErrorWithCause("pricing", err)
	}

	if err := errors.Join(
		id.Validate(),
		refErr,
		trackingToken.Validate(),
		customerID.Validate(),
		origin.Validate(),
		destination.Validate(),
		pricingErr,
	); err != nil {
		return nil, err
	}

	return &Shipment{
		id:                id,
		reference:         reference,
		trackingToken:     trackingToken,
		customerID:        customerID,
		origin:            origin,
		destination:       destination,
		pricing:           pricing,
		status:            Pending,
		estimatedDelivery: estimatedDelivery,
		createdAt:         createdAt.UTC(),
		isConstructed:     true,
	}, nil
}

// Snapshot carries persisted shipment state into RestoreShipment.
type Snapshot struct {
	ID                kernel.UUID
	Reference         kernel.DocumentNumber
	TrackingToken     TrackingToken
	CustomerID        kernel.UUID
	Origin            Address
	Destination       Address
	Pricing           Pricing
	Status            Status
	VehicleID         *kernel.UUID
	DriverID          *kernel.UUID
	EstimatedDelivery *time.Time
	ActualDelivery    *time.Time
	RecipientName     string
	CreatedAt         time.Time
	Version           int
}

// RestoreShipment rebuilds a shipment from a stored snapshot without running creation rules.
func RestoreShipment(s Snapshot) (*Shipment, error) {
	sh, err := NewShipment(
		s.ID, s.Reference, s.TrackingToken, s.CustomerID,
		s.Origin, s.Destination, s.Pricing, s.EstimatedDelivery, s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err = s.Status.Validate(); err != nil {
		return nil, err
	}
	sh.status = s.Status
	sh.vehicleID = s.VehicleID
	sh.driverID = s.DriverID
	sh.actualDelivery = s.ActualDelivery
	sh.recipientName = s.RecipientName
	sh.version = s.Version
	return sh, nil
}

// Validate reports a nil or zero shipment.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// IsEqual compares identities.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID is the shipment identity.
func (s *Shipment) ID() kernel.UUID { return s.id }

// Reference is the SHP-YYYY-NNNNN document number.
func (s *Shipment) Reference() kernel.DocumentNumber { return s.reference }

// TrackingToken is the public lookup key.
func (s *Shipment) TrackingToken() TrackingToken { return s.trackingToken }

// CustomerID is the sender.
func (s *Shipment) CustomerID() kernel.UUID { return s.customerID }

// Origin is the pickup address.
func (s *Shipment) Origin() Address { return s.origin }

// Destination is the delivery address.
func (s *Shipment) Destination() Address { return s.destination }

// Pricing holds price, extras and discount.
func (s *Shipment) Pricing() Pricing { return s.pricing }

// Status is the current lifecycle state.
func (s *Shipment) Status() Status { return s.status }

// VehicleID is nil until a vehicle is assigned.
func (s *Shipment) VehicleID() *kernel.UUID { return s.vehicleID }

// DriverID is nil until a driver is assigned.
func (s *Shipment) DriverID() *kernel.UUID { return s.driverID }

// EstimatedDelivery is the promised date given at registration, if any.
func (s *Shipment) EstimatedDelivery() *time.Time { return s.estimatedDelivery }

// ActualDelivery is set on delivery.
func (s *Shipment) ActualDelivery() *time.Time { return s.actualDelivery }

// RecipientName is who signed for the parcel.
func (s *Shipment) RecipientName() string { return s.recipientName }

// CreatedAt is the registration time.
func (s *Shipment) CreatedAt() time.Time { return s.createdAt }

// Version is the optimistic lock counter of the stored row.
func (s *Shipment) Version() int { return s.version }

// IncrementVersion is called by the repository after a successful update.
func (s *Shipment) IncrementVersion() {
	s.version++
}

// TotalPrice is derived from the pricing components on every call.
func (s *Shipment) TotalPrice() kernel.Money {
	return s.pricing.Total()
}

// AssignResources binds a vehicle and optionally a driver before dispatch.
func (s *Shipment) AssignResources(vehicleID kernel.UUID, driverID *kernel.UUID) error {
	if !s.status.CanBeAssigned() {
		return errs.NewInvalidStateError("shipment", s.status.String(), "assign resources to")
	}
	if err := vehicleID.Validate(); err != nil {
		return err
	}
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return err
		}
	}
	s.vehicleID = &vehicleID
	s.driverID = driverID
	return nil
}

// TransitionTo moves the shipment to target. Delivered also stamps the actual
// delivery time and the recipient.
func (s *Shipment) TransitionTo(target Status, recipientName string, now time.Time) error {
	next, err := s.status.TransitionTo(target)
	if err != nil {
		return err
	}

	s.status = next
	if next == Delivered {
		delivered := now.UTC()
		s.actualDelivery = &delivered
		s.recipientName = strings.TrimSpace(recipientName)
	}
	return nil
}
