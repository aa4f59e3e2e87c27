package postgres

import (
	"logistics/internal/adapters/out/postgres/customerrepo"
	"logistics/internal/adapters/out/postgres/driverrepo"
	"logistics/internal/adapters/out/postgres/invoicerepo"
	"logistics/internal/adapters/out/postgres/routerepo"
	"logistics/internal/adapters/out/postgres/sequencerepo"
	"logistics/internal/adapters/out/postgres/shipmentrepo"
	"logistics/internal/adapters/out/postgres/vehiclerepo"

	"gorm.io/gorm"
)

// Models lists every table the repositories use, parents first.
func Models() []any {
	return []any{
		&vehiclerepo.VehicleDTO{},
		&driverrepo.DriverDTO{},
		&customerrepo.CustomerDTO{},
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.HistoryDTO{},
		&routerepo.RouteDTO{},
		&routerepo.StopDTO{},
		&invoicerepo.InvoiceDTO{},
		&invoicerepo.ItemDTO{},
		&sequencerepo.SequenceDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
