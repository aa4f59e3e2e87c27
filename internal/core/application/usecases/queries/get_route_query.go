package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetRouteQueryIsNotConstructed = errors.New(
	"GetRouteQuery must be created via NewGetRouteQuery constructor",
)

// GetRouteQuery reads one route with its stops in visiting order.
type GetRouteQuery struct {
	routeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRouteQuery requires a valid route id.
func NewGetRouteQuery(routeID kernel.UUID) (GetRouteQuery, error) {
	if err := routeID.Validate(); err != nil {
		return GetRouteQuery{}, err
	}
	return GetRouteQuery{routeID: routeID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetRouteQuery) RouteID() kernel.UUID {
	return q.routeID
}

// Validate fails for a zero value not built by NewGetRouteQuery.
func (q GetRouteQuery) Validate() error {
	return q.guard.Validate(ErrGetRouteQueryIsNotConstructed)
}

type GetRouteQueryResponse struct {
	ID              kernel.UUID
	Name            string
	Status          string
	VehicleID       *kernel.UUID
	DriverID        *kernel.UUID
	StartLocation   string
	StartPoint      kernel.GeoPoint
	TotalDistanceKm float64
	DurationMinutes int
	PlannedStart    *time.Time
	PlannedEnd      *time.Time
	ActualStart     *time.Time
	ActualEnd       *time.Time
	Stops           []RouteStopResponse
}

// RouteStopResponse joins the stop with the reference of the shipment it serves.
type RouteStopResponse struct {
	ID                 kernel.UUID
	ShipmentID         kernel.UUID
	ShipmentReference  string
	Sequence           int
	Type               string
	EstimatedArrival   *time.Time
	ActualArrival      *time.Time
	ServiceTimeMinutes int
	Completed          bool
	CompletedAt        *time.Time
}
