package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// RegisterVehicle handles POST /api/v1/vehicles.
func (s *Server) RegisterVehicle(c echo.Context) error {
	var req RegisterVehicleRequest
	if err := bind(c, &req); err != nil {
		return s.writeError(c, err)
	}
	cmd, err := commands.NewRegisterVehicleCommand(kernel.NewUUID(), req.PlateNumber, req.CapacityKg, actor(c))
	if err != nil {
		return s.writeError(c, err)
	}

	v, err := s.h.RegisterVehicle.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusCreated, toVehicle(v))
}

// SetVehicleMaintenance handles POST /api/v1/vehicles/{id}/maintenance.
func (s *Server) SetVehicleMaintenance(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return s.writeError(c, err)
	}
	var req SetMaintenanceRequest
	if err = bind(c, &req); err != nil {
		return s.writeError(c, err)
	}
	cmd, err := commands.NewSetVehicleMaintenanceCommand(id, *req.InMaintenance, actor(c))
	if err != nil {
		return s.writeError(c, err)
	}

	v, err := s.h.SetVehicleMaintenance.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, toVehicle(v))
}

// GetAvailableVehicles handles GET /api/v1/vehicles/available - idle vehicles by plate.
func (s *Server) GetAvailableVehicles(c echo.Context) error {
	vehicles, err := s.h.GetAvailableVehicles.Handle(c.Request().Context(), queries.NewGetAvailableVehiclesQuery())
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, toAvailableVehicles(vehicles))
}

// RegisterDriver handles POST /api/v1/drivers.
func (s *Server) RegisterDriver(c echo.Context) error {
	var req RegisterDriverRequest
	if err := bind(c, &req); err != nil {
		return s.writeError(c, err)
	}
	cmd, err := commands.NewRegisterDriverCommand(kernel.NewUUID(), req.Name, req.LicenseNumber, actor(c))
	if err != nil {
		return s.writeError(c, err)
	}

	d, err := s.h.RegisterDriver.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusCreated, toDriver(d))
}

// ToggleDriverAvailability handles POST /api/v1/drivers/{id}/availability.
func (s *Server) ToggleDriverAvailability(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return s.writeError(c, err)
	}
	cmd, err := commands.NewToggleDriverAvailabilityCommand(id, actor(c))
	if err != nil {
		return s.writeError(c, err)
	}

	d, err := s.h.ToggleDriverAvailability.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, toDriver(d))
}

// GetAvailableDrivers handles GET /api/v1/drivers/available - available drivers by name.
func (s *Server) GetAvailableDrivers(c echo.Context) error {
	drivers, err := s.h.GetAvailableDrivers.Handle(c.Request().Context(), queries.NewGetAvailableDriversQuery())
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, toAvailableDrivers(drivers))
}

// RegisterCustomer handles POST /api/v1/customers.
func (s *Server) RegisterCustomer(c echo.Context) error {
	var req RegisterCustomerRequest
	if err := bind(c, &req); err != nil {
		return s.writeError(c, err)
	}
	cmd, err := commands.NewRegisterCustomerCommand(kernel.NewUUID(), req.Name, req.Email, actor(c))
	if err != nil {
		return s.writeError(c, err)
	}

	cust, err := s.h.RegisterCustomer.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusCreated, toCustomer(cust))
}
