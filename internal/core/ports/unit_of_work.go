package ports

import (
	"context"
)

type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork spans one database transaction. Repositories obtained after
// Begin take part in it.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	Commit(ctx context.Context) error

	Rollback(ctx context.Context) error

	VehicleRepository() VehicleRepository

	DriverRepository() DriverRepository

	CustomerRepository() CustomerRepository

	ShipmentRepository() ShipmentRepository

	ShipmentHistoryRepository() ShipmentHistoryRepository

	RouteRepository() RouteRepository

	InvoiceRepository() InvoiceRepository

	SequenceGenerator() SequenceGenerator
}
