package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"

	"github.com/labstack/echo/v4"
)

// CreateShipment handles POST /api/v1/shipments.
func (s *Server) CreateShipment(c echo.Context) error {
	var req CreateShipmentRequest
	if err := bind(c, &req); err != nil {
		return s.writeError(c, err)
	}

	customerID, err := kernel.UUIDFromBytes(req.CustomerID[:])
	if err != nil {
		return s.writeError(c, err)
	}
	origin, err := toDomainAddress(req.Origin)
	if err != nil {
		return s.writeError(c, err)
	}
	destination, err := toDomainAddress(req.Destination)
	if err != nil {
		return s.writeError(c, err)
	}
	pricing, err := toPricing(req)
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewCreateShipmentCommand(customerID, origin, destination, pricing,
		req.EstimatedDelivery, actor(c))
	if err != nil {
		return s.writeError(c, err)
	}

	created, err := s.h.CreateShipment.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusCreated, toShipment(created))
}

// AssignShipment handles POST /api/v1/shipments/{id}/assign.
func (s *Server) AssignShipment(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return s.writeError(c, err)
	}
	var req AssignShipmentRequest
	if err = bind(c, &req); err != nil {
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

	cmd, err := commands.NewAssignShipmentCommand(id, vehicleID, driverID, actor(c))
	if err != nil {
		return s.writeError(c, err)
	}

	assigned, err := s.h.AssignShipment.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, toShipment(assigned))
}

// AdvanceShipmentStatus handles POST /api/v1/shipments/{id}/status.
func (s *Server) AdvanceShipmentStatus(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return s.writeError(c, err)
	}
	var req AdvanceShipmentStatusRequest
	if err = bind(c, &req); err != nil {
		return s.writeError(c, err)
	}
	point, err := kernel.NewOptionalGeoPoint(req.Lat, req.Lon)
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewAdvanceShipmentStatusCommand(id, req.Status, actor(c),
		req.Notes, point, req.Address, req.RecipientName)
	if err != nil {
		return s.writeError(c, err)
	}

	updated, err := s.h.AdvanceShipmentStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, toShipment(updated))
}

// TrackShipment handles GET /api/v1/track/{token} - the public tracking view.
func (s *Server) TrackShipment(c echo.Context) error {
	query, err := queries.NewTrackShipmentQuery(c.Param("token"))
	if err != nil {
		return s.writeError(c, err)
	}

	view, err := s.h.TrackShipment.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

// GetPendingShipments handles GET /api/v1/shipments/pending - shipments awaiting
// dispatch, oldest first.
func (s *Server) GetPendingShipments(c echo.Context) error {
	shipments, err := s.h.GetPendingShipments.Handle(c.Request().Context(), queries.NewGetPendingShipmentsQuery())
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, toPendingShipments(shipments))
}

func toDomainAddress(a AddressRequest) (shipment.Address, error) {
	point, err := kernel.NewOptionalGeoPoint(a.Lat, a.Lon)
	if err != nil {
		return shipment.Address{}, err
	}
	return shipment.NewAddress(a.Text, point)
}

func toPricing(req CreateShipmentRequest) (shipment.Pricing, error) {
	price, err := kernel.NewMoneyFromString(req.Price)
	if err != nil {
		return shipment.Pricing{}, err
	}
	extra, err := moneyOrZero(req.ExtraCharges)
	if err != nil {
		return shipment.Pricing{}, err
	}
	discount, err := moneyOrZero(req.Discount)
	if err != nil {
		return shipment.Pricing{}, err
	}
	return shipment.NewPricing(price, extra, discount)
}

func moneyOrZero(s string) (kernel.Money, error) {
	if s == "" {
		return kernel.ZeroMoney(), nil
	}
	return kernel.NewMoneyFromString(s)
}
