package cmd

import (
	"log/slog"

	httpin "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/ports"
	"logistics/internal/jobs"

	"gorm.io/gorm"
)

// EventSink receives notifications and audit records after commits.
type EventSink interface {
	ports.Notifier
	ports.Auditor
}

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	cache      ports.TrackingCache
	events     EventSink
	logger     *slog.Logger
}

// NewCompositionRoot wires the use cases. cache may be nil, in which case
// tracking lookups always read the database.
func NewCompositionRoot(
	cfg Config,
	gormDB *gorm.DB,
	cache ports.TrackingCache,
	events EventSink,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		cache:      cache,
		events:     events,
		logger:     logger,
	}
}

func (c *CompositionRoot) fleetUoWFactory() commands.FleetUoWFactory {
	return FuncFleetUoWFactory(func() commands.FleetUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) routeUoWFactory() commands.RouteUoWFactory {
	return FuncRouteUoWFactory(func() commands.RouteUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) shipmentUoWFactory() commands.ShipmentUoWFactory {
	return FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) invoiceUoWFactory() commands.InvoiceUoWFactory {
	return FuncInvoiceUoWFactory(func() commands.InvoiceUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateOptimizeRouteCommandHandler() *commands.OptimizeRouteCommandHandler {
	h := commands.NewOptimizeRouteCommandHandler(c.routeUoWFactory(), c.events, c.logger)
	return &h
}

func (c *CompositionRoot) CreateStartRouteCommandHandler() *commands.StartRouteCommandHandler {
	h := commands.NewStartRouteCommandHandler(c.routeUoWFactory(), c.events, c.logger)
	return &h
}

func (c *CompositionRoot) CreateCompleteRouteStopCommandHandler() *commands.CompleteRouteStopCommandHandler {
	h := commands.NewCompleteRouteStopCommandHandler(c.routeUoWFactory(), c.events, c.logger)
	return &h
}

func (c *CompositionRoot) CreateCancelRouteCommandHandler() *commands.CancelRouteCommandHandler {
	h := commands.NewCancelRouteCommandHandler(c.routeUoWFactory(), c.events, c.logger)
	return &h
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() *commands.CreateShipmentCommandHandler {
	h := commands.NewCreateShipmentCommandHandler(c.shipmentUoWFactory(), c.events, c.logger)
	return &h
}

func (c *CompositionRoot) CreateAssignShipmentCommandHandler() *commands.AssignShipmentCommandHandler {
	h := commands.NewAssignShipmentCommandHandler(c.shipmentUoWFactory(), c.events, c.logger)
	return &h
}

func (c *CompositionRoot) CreateAdvanceShipmentStatusCommandHandler() *commands.AdvanceShipmentStatusCommandHandler {
	h := commands.NewAdvanceShipmentStatusCommandHandler(c.shipmentUoWFactory(), c.cache, c.events, c.events, c.logger)
	return &h
}

func (c *CompositionRoot) CreateCreateInvoiceCommandHandler() *commands.CreateInvoiceCommandHandler {
	h := commands.NewCreateInvoiceCommandHandler(c.invoiceUoWFactory(), c.events, c.logger)
	return &h
}

func (c *CompositionRoot) CreateSendInvoiceCommandHandler() *commands.SendInvoiceCommandHandler {
	h := commands.NewSendInvoiceCommandHandler(c.invoiceUoWFactory(), c.events, c.events, c.logger)
	return &h
}

func (c *CompositionRoot) CreateMarkInvoicePaidCommandHandler() *commands.MarkInvoicePaidCommandHandler {
	h := commands.NewMarkInvoicePaidCommandHandler(c.invoiceUoWFactory(), c.events, c.logger)
	return &h
}

func (c *CompositionRoot) CreateMarkOverdueInvoicesCommandHandler() *commands.MarkOverdueInvoicesCommandHandler {
	h := commands.NewMarkOverdueInvoicesCommandHandler(c.invoiceUoWFactory(), c.events, c.logger)
	return &h
}

func (c *CompositionRoot) CreateRegisterVehicleCommandHandler() *commands.RegisterVehicleCommandHandler {
	h := commands.NewRegisterVehicleCommandHandler(c.fleetUoWFactory(), c.events, c.logger)
	return &h
}

func (c *CompositionRoot) CreateRegisterDriverCommandHandler() *commands.RegisterDriverCommandHandler {
	h := commands.NewRegisterDriverCommandHandler(c.fleetUoWFactory(), c.events, c.logger)
	return &h
}

func (c *CompositionRoot) CreateRegisterCustomerCommandHandler() *commands.RegisterCustomerCommandHandler {
	h := commands.NewRegisterCustomerCommandHandler(c.fleetUoWFactory(), c.events, c.logger)
	return &h
}

func (c *CompositionRoot) CreateSetVehicleMaintenanceCommandHandler() *commands.SetVehicleMaintenanceCommandHandler {
	h := commands.NewSetVehicleMaintenanceCommandHandler(c.fleetUoWFactory(), c.events, c.logger)
	return &h
}

func (c *CompositionRoot) CreateToggleDriverAvailabilityCommandHandler() *commands.ToggleDriverAvailabilityCommandHandler {
	h := commands.NewToggleDriverAvailabilityCommandHandler(c.fleetUoWFactory(), c.events, c.logger)
	return &h
}

func (c *CompositionRoot) CreateGetRouteQueryHandler() queries.GetRouteQueryHandler {
	return queries.NewGetRouteQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateTrackShipmentQueryHandler() queries.TrackShipmentQueryHandler {
	return queries.NewTrackShipmentQueryHandler(c.gormDB, c.cache, c.logger)
}

func (c *CompositionRoot) CreateGetAvailableVehiclesQueryHandler() queries.GetAvailableVehiclesQueryHandler {
	return queries.NewGetAvailableVehiclesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableDriversQueryHandler() queries.GetAvailableDriversQueryHandler {
	return queries.NewGetAvailableDriversQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingShipmentsQueryHandler() queries.GetPendingShipmentsQueryHandler {
	return queries.NewGetPendingShipmentsQueryHandler(c.gormDB)
}

// HTTPHandlers groups every use case the REST API exposes.
func (c *CompositionRoot) HTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		OptimizeRoute:     c.CreateOptimizeRouteCommandHandler(),
		GetRoute:          c.CreateGetRouteQueryHandler(),
		StartRoute:        c.CreateStartRouteCommandHandler(),
		CompleteRouteStop: c.CreateCompleteRouteStopCommandHandler(),
		CancelRoute:       c.CreateCancelRouteCommandHandler(),

		CreateShipment:        c.CreateCreateShipmentCommandHandler(),
		AssignShipment:        c.CreateAssignShipmentCommandHandler(),
		AdvanceShipmentStatus: c.CreateAdvanceShipmentStatusCommandHandler(),
		TrackShipment:         c.CreateTrackShipmentQueryHandler(),
		GetPendingShipments:   c.CreateGetPendingShipmentsQueryHandler(),

		CreateInvoice:   c.CreateCreateInvoiceCommandHandler(),
		SendInvoice:     c.CreateSendInvoiceCommandHandler(),
		MarkInvoicePaid: c.CreateMarkInvoicePaidCommandHandler(),

		RegisterVehicle:          c.CreateRegisterVehicleCommandHandler(),
		RegisterDriver:           c.CreateRegisterDriverCommandHandler(),
		RegisterCustomer:         c.CreateRegisterCustomerCommandHandler(),
		SetVehicleMaintenance:    c.CreateSetVehicleMaintenanceCommandHandler(),
		ToggleDriverAvailability: c.CreateToggleDriverAvailabilityCommandHandler(),
		GetAvailableVehicles:     c.CreateGetAvailableVehiclesQueryHandler(),
		GetAvailableDrivers:      c.CreateGetAvailableDriversQueryHandler(),
	}
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateMarkOverdueInvoicesCommandHandler(), c.cfg.OverdueSchedule, c.logger)
}

type FuncFleetUoWFactory func() commands.FleetUoW

func (f FuncFleetUoWFactory) Create() commands.FleetUoW {
	return f()
}

type FuncRouteUoWFactory func() commands.RouteUoW

func (f FuncRouteUoWFactory) Create() commands.RouteUoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncInvoiceUoWFactory func() commands.InvoiceUoW

func (f FuncInvoiceUoWFactory) Create() commands.InvoiceUoW {
	return f()
}
