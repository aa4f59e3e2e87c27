// Package http exposes the application use cases as a JSON REST API on echo.
package http

import (
	"context"
	"log/slog"
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/invoice"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ActorHeader names the caller on whose behalf a command runs. Identity is
// established upstream; the API only records it.
const ActorHeader = "X-Actor"

// Handler is the shape shared by every command and query handler.
type Handler[In, Out any] interface {
	Handle(ctx context.Context, in In) (Out, error)
}

// Handlers groups the use cases the server dispatches to.
type Handlers struct {
	OptimizeRoute     Handler[commands.OptimizeRouteCommand, *route.Route]
	GetRoute          Handler[queries.GetRouteQuery, *queries.GetRouteQueryResponse]
	StartRoute        Handler[commands.StartRouteCommand, *route.Route]
	CompleteRouteStop Handler[commands.CompleteRouteStopCommand, *route.Route]
	CancelRoute       Handler[commands.CancelRouteCommand, *route.Route]

	CreateShipment        Handler[commands.CreateShipmentCommand, *shipment.Shipment]
	AssignShipment        Handler[commands.AssignShipmentCommand, *shipment.Shipment]
	AdvanceShipmentStatus Handler[commands.AdvanceShipmentStatusCommand, *shipment.Shipment]
	TrackShipment         Handler[queries.TrackShipmentQuery, *queries.TrackShipmentResponse]
	GetPendingShipments   Handler[queries.GetPendingShipmentsQuery, []queries.GetPendingShipmentsQueryResponse]

	CreateInvoice   Handler[commands.CreateInvoiceCommand, *invoice.Invoice]
	SendInvoice     Handler[commands.SendInvoiceCommand, *invoice.Invoice]
	MarkInvoicePaid Handler[commands.MarkInvoicePaidCommand, *invoice.Invoice]

	RegisterVehicle          Handler[commands.RegisterVehicleCommand, *vehicle.Vehicle]
	RegisterDriver           Handler[commands.RegisterDriverCommand, *driver.Driver]
	RegisterCustomer         Handler[commands.RegisterCustomerCommand, *customer.Customer]
	SetVehicleMaintenance    Handler[commands.SetVehicleMaintenanceCommand, *vehicle.Vehicle]
	ToggleDriverAvailability Handler[commands.ToggleDriverAvailabilityCommand, *driver.Driver]
	GetAvailableVehicles     Handler[queries.GetAvailableVehiclesQuery, []queries.GetAvailableVehiclesQueryResponse]
	GetAvailableDrivers      Handler[queries.GetAvailableDriversQuery, []queries.GetAvailableDriversQueryResponse]
}

// HealthCheck reports whether a dependency is reachable.
type HealthCheck func(ctx context.Context) error

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	h      Handlers
	health map[string]HealthCheck
	logger *slog.Logger
}

// NewServer registers all routes. Every entry in health is checked by GET /health.
func NewServer(h Handlers, health map[string]HealthCheck, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{h: h, health: health, logger: logger.With("component", "http")}
}

// Register mounts every route on e. The tracking endpoint is public and
// gets its own security headers and rate limit.
func (s *Server) Register(e *echo.Echo, trackingRatePerMinute int) {
	e.Validator = newRequestValidator()

	e.GET("/health", s.Health)
	registerDocs(e)

	v1 := e.Group("/api/v1")

	v1.POST("/routes/optimize", s.OptimizeRoute)
	v1.GET("/routes/:id", s.GetRoute)
	v1.POST("/routes/:id/start", s.StartRoute)
	v1.POST("/routes/:id/stops/:stopId/complete", s.CompleteRouteStop)
	v1.POST("/routes/:id/cancel", s.CancelRoute)

	v1.POST("/shipments", s.CreateShipment)
	v1.GET("/shipments/pending", s.GetPendingShipments)
	v1.POST("/shipments/:id/assign", s.AssignShipment)
	v1.POST("/shipments/:id/status", s.AdvanceShipmentStatus)

	v1.GET("/track/:token", s.TrackShipment, publicMiddleware(trackingRatePerMinute)...)

	v1.POST("/invoices", s.CreateInvoice)
	v1.POST("/invoices/:id/send", s.SendInvoice)
	v1.POST("/invoices/:id/pay", s.MarkInvoicePaid)

	v1.POST("/vehicles", s.RegisterVehicle)
	v1.GET("/vehicles/available", s.GetAvailableVehicles)
	v1.POST("/vehicles/:id/maintenance", s.SetVehicleMaintenance)
	v1.POST("/drivers", s.RegisterDriver)
	v1.GET("/drivers/available", s.GetAvailableDrivers)
	v1.POST("/drivers/:id/availability", s.ToggleDriverAvailability)
	v1.POST("/customers", s.RegisterCustomer)
}

// Health handles GET /health - pings every registered dependency.
func (s *Server) Health(c echo.Context) error {
	status := map[string]string{}
	code := http.StatusOK
	for name, check := range s.health {
		if err := check(c.Request().Context()); err != nil {
			s.logger.WarnContext(c.Request().Context(), "health check failed", "dependency", name, "error", err)
			status[name] = "down"
			code = http.StatusServiceUnavailable
			continue
		}
		status[name] = "up"
	}
	return c.JSON(code, status)
}

// bind decodes and validates the JSON body into req. Both failures are
// reported as validation errors.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}
	if err := c.Validate(req); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}
	return nil
}
