// Package commands contains the operations that change system state. Each
// command is validated by its constructor and executed by a handler inside
// one unit of work.
package commands

import (
	"context"

	"logistics/internal/core/ports"
)

// Handlers depend on the narrowest unit of work that covers the aggregates
// they touch.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	ShipmentHistoryRepoFactory interface {
		ShipmentHistoryRepository() ports.ShipmentHistoryRepository
	}

	RouteRepoFactory interface {
		RouteRepository() ports.RouteRepository
	}

	InvoiceRepoFactory interface {
		InvoiceRepository() ports.InvoiceRepository
	}

	SequenceGeneratorFactory interface {
		SequenceGenerator() ports.SequenceGenerator
	}

	// FleetUoW covers vehicles, drivers and customers on their own.
	FleetUoW interface {
		TxManager
		VehicleRepoFactory
		DriverRepoFactory
		CustomerRepoFactory
	}

	FleetUoWFactory interface {
		Create() FleetUoW
	}

	// RouteUoW covers a route together with the resources it binds.
	RouteUoW interface {
		TxManager
		RouteRepoFactory
		ShipmentRepoFactory
		VehicleRepoFactory
		DriverRepoFactory
	}

	RouteUoWFactory interface {
		Create() RouteUoW
	}

	// ShipmentUoW covers a shipment, its history and everything a status
	// change may touch.
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
		ShipmentHistoryRepoFactory
		VehicleRepoFactory
		DriverRepoFactory
		CustomerRepoFactory
		SequenceGeneratorFactory
	}

	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	InvoiceUoW interface {
		TxManager
		InvoiceRepoFactory
		ShipmentRepoFactory
		CustomerRepoFactory
		SequenceGeneratorFactory
	}

	InvoiceUoWFactory interface {
		Create() InvoiceUoW
	}
)
