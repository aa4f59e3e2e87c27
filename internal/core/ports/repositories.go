package ports

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/invoice"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/vehicle"
)

// Update methods of every repository compare the aggregate's version with the
// stored one and fail with errs.ConflictError when they differ.

type VehicleRepository interface {
	Add(ctx context.Context, aggregate *vehicle.Vehicle) error

	Update(ctx context.Context, aggregate *vehicle.Vehicle) error

	Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)
}

type DriverRepository interface {
	Add(ctx context.Context, aggregate *driver.Driver) error

	Update(ctx context.Context, aggregate *driver.Driver) error

	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)
}

type CustomerRepository interface {
	Add(ctx context.Context, aggregate *customer.Customer) error

	Update(ctx context.Context, aggregate *customer.Customer) error

	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
}

type ShipmentRepository interface {
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	Update(ctx context.Context, aggregate *shipment.Shipment) error

	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetByIDs returns the shipments in the order of ids. Any unknown id
	// fails the whole call with errs.ObjectNotFoundError.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*shipment.Shipment, error)

	GetByTrackingToken(ctx context.Context, token shipment.TrackingToken) (*shipment.Shipment, error)
}

// ShipmentHistoryRepository is append-only.
type ShipmentHistoryRepository interface {
	Append(ctx context.Context, entry shipment.HistoryEntry) error

	// ListByShipment returns entries oldest first.
	ListByShipment(ctx context.Context, shipmentID kernel.UUID) ([]shipment.HistoryEntry, error)
}

type RouteRepository interface {
	// Add stores the route together with its stops.
	Add(ctx context.Context, aggregate *route.Route) error

	// Update stores route fields and stop completion state.
	Update(ctx context.Context, aggregate *route.Route) error

	Get(ctx context.Context, id kernel.UUID) (*route.Route, error)
}

type InvoiceRepository interface {
	// Add stores the invoice together with its items.
	Add(ctx context.Context, aggregate *invoice.Invoice) error

	Update(ctx context.Context, aggregate *invoice.Invoice) error

	Get(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error)

	// GetSentDueBefore lists Sent invoices with a due date before day.
	GetSentDueBefore(ctx context.Context, day time.Time) ([]*invoice.Invoice, error)
}

// SequenceGenerator hands out gap-tolerant, collision-free yearly sequence
// numbers. It must run inside the caller's transaction.
type SequenceGenerator interface {
	Next(ctx context.Context, name string, year int) (int64, error)
}
