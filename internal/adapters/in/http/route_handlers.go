package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

// OptimizeRoute handles POST /api/v1/routes/optimize - builds a planned route.
func (s *Server) OptimizeRoute(c echo.Context) error {
	var req OptimizeRouteRequest
	if err := bind(c, &req); err != nil {
		return s.writeError(c, err)
	}

	shipmentIDs, err := uuids(req.ShipmentIDs)
	if err != nil {
		return s.writeError(c, err)
	}
	vehicleID, err := kernel.UUIDFromBytes(req.VehicleID[:])
	if err != nil {
		return s.writeError(c, err)
	}
	driverID, err := optionalUUID(req.DriverID)
	if err != nil {
		return s.writeError(c, err)
	}
	start, err := kernel.NewGeoPoint(*req.StartLat, *req.StartLon)
	if err != nil {
		return s.writeError(c, err)
	}
	objective, err := services.ParseObjective(req.Objective)
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewOptimizeRouteCommand(shipmentIDs, vehicleID, driverID,
		req.StartLocation, start, objective, req.PlannedStart, actor(c))
	if err != nil {
		return s.writeError(c, err)
	}

	r, err := s.h.OptimizeRoute.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusCreated, toRoute(r))
}

// GetRoute handles GET /api/v1/routes/{id}.
func (s *Server) GetRoute(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return s.writeError(c, err)
	}
	query, err := queries.NewGetRouteQuery(id)
	if err != nil {
		return s.writeError(c, err)
	}

	r, err := s.h.GetRoute.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, toRouteFromQuery(r))
}

// StartRoute handles POST /api/v1/routes/{id}/start.
func (s *Server) StartRoute(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return s.writeError(c, err)
	}
	cmd, err := commands.NewStartRouteCommand(id, actor(c))
	if err != nil {
		return s.writeError(c, err)
	}

	r, err := s.h.StartRoute.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, toRoute(r))
}

// CompleteRouteStop handles POST /api/v1/routes/{id}/stops/{stopId}/complete.
func (s *Server) CompleteRouteStop(c echo.Context) error {
	routeID, err := pathUUID(c, "id")
	if err != nil {
		return s.writeError(c, err)
	}
	stopID, err := pathUUID(c, "stopId")
	if err != nil {
		return s.writeError(c, err)
	}
	cmd, err := commands.NewCompleteRouteStopCommand(routeID, stopID, actor(c))
	if err != nil {
		return s.writeError(c, err)
	}

	r, err := s.h.CompleteRouteStop.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, toRoute(r))
}

// CancelRoute handles POST /api/v1/routes/{id}/cancel.
func (s *Server) CancelRoute(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return s.writeError(c, err)
	}
	cmd, err := commands.NewCancelRouteCommand(id, actor(c))
	if err != nil {
		return s.writeError(c, err)
	}

	r, err := s.h.CancelRoute.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, toRoute(r))
}
