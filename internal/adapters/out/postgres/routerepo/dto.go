// Package routerepo persists routes together with their stops.
package routerepo

import (
	"time"

	"logistics/internal/adapters/out/postgres/pgutil"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"

	"github.com/google/uuid"
)

type RouteDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name            string     `gorm:"type:varchar(255);not null"`
	VehicleID       *uuid.UUID `gorm:"type:uuid;index"`
	DriverID        *uuid.UUID `gorm:"type:uuid;index"`
	Status          int        `gorm:"type:smallint;not null;index"`
	StartLocation   string     `gorm:"type:text"`
	StartLat        float64    `gorm:"type:double precision;not null"`
	StartLon        float64    `gorm:"type:double precision;not null"`
	TotalDistanceKm float64    `gorm:"type:numeric(10,2);not null;default:0"`
	DurationMinutes int        `gorm:"type:int;not null;default:0"`
	PlannedStart    *time.Time `gorm:"type:timestamptz"`
	PlannedEnd      *time.Time `gorm:"type:timestamptz"`
	ActualStart     *time.Time `gorm:"type:timestamptz"`
	ActualEnd       *time.Time `gorm:"type:timestamptz"`
	CreatedAt       time.Time  `gorm:"type:timestamptz;not null"`
	Version         int        `gorm:"type:int;not null;default:0"`
	Stops           []StopDTO  `gorm:"foreignKey:RouteID;constraint:OnDelete:CASCADE"`
}

func (RouteDTO) TableName() string {
	return "routes"
}

type StopDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RouteID            uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_route_stops_route_sequence,priority:1"`
	ShipmentID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	Sequence           int        `gorm:"type:int;not null;uniqueIndex:idx_route_stops_route_sequence,priority:2"`
	StopType           int        `gorm:"type:smallint;not null"`
	WindowStart        *time.Time `gorm:"type:timestamptz"`
	WindowEnd          *time.Time `gorm:"type:timestamptz"`
	EstimatedArrival   *time.Time `gorm:"type:timestamptz"`
	ActualArrival      *time.Time `gorm:"type:timestamptz"`
	ServiceTimeMinutes int        `gorm:"type:int;not null"`
	Completed          bool       `gorm:"not null"`
	CompletedAt        *time.Time `gorm:"type:timestamptz"`
}

func (StopDTO) TableName() string {
	return "route_stops"
}

func fromDomain(r *route.Route) RouteDTO {
	routeID := r.ID().Bytes()
	stops := make([]StopDTO, 0, r.StopCount())
	for _, s := range r.Stops() {
		stops = append(stops, stopFromDomain(routeID, s))
	}

	return RouteDTO{
		ID:              routeID,
		Name:            r.Name(),
		VehicleID:       pgutil.NullableID(r.VehicleID()),
		DriverID:        pgutil.NullableID(r.DriverID()),
		Status:          int(r.Status()),
		StartLocation:   r.StartLocation(),
		StartLat:        r.StartPoint().Lat(),
		StartLon:        r.StartPoint().Lon(),
		TotalDistanceKm: r.Metrics().TotalDistanceKm,
		DurationMinutes: r.Metrics().DurationMinutes,
		PlannedStart:    r.PlannedStart(),
		PlannedEnd:      r.PlannedEnd(),
		ActualStart:     r.ActualStart(),
		ActualEnd:       r.ActualEnd(),
		CreatedAt:       r.CreatedAt(),
		Version:         r.Version(),
		Stops:           stops,
	}
}

func stopFromDomain(routeID uuid.UUID, s *route.Stop) StopDTO {
	dto := StopDTO{
		ID:                 s.ID().Bytes(),
		RouteID:            routeID,
		ShipmentID:         s.ShipmentID().Bytes(),
		Sequence:           s.Sequence(),
		StopType:           int(s.Type()),
		EstimatedArrival:   s.EstimatedArrival(),
		ActualArrival:      s.ActualArrival(),
		ServiceTimeMinutes: s.ServiceTimeMinutes(),
		Completed:          s.IsCompleted(),
		CompletedAt:        s.CompletedAt(),
	}
	if w := s.Window(); w != nil {
		start, end := w.Start(), w.End()
		dto.WindowStart, dto.WindowEnd = &start, &end
	}
	return dto
}

func toDomain(dto RouteDTO) (*route.Route, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	vehicleID, err := pgutil.ParseNullableID(dto.VehicleID)
	if err != nil {
		return nil, err
	}
	driverID, err := pgutil.ParseNullableID(dto.DriverID)
	if err != nil {
		return nil, err
	}
	startPoint, err := kernel.NewGeoPoint(dto.StartLat, dto.StartLon)
	if err != nil {
		return nil, err
	}

	stops := make([]*route.Stop, 0, len(dto.Stops))
	for _, stopDTO := range dto.Stops {
		s, stopErr := stopToDomain(stopDTO)
		if stopErr != nil {
			return nil, stopErr
		}
		stops = append(stops, s)
	}

	return route.RestoreRoute(route.Snapshot{
		ID:            id,
		Name:          dto.Name,
		VehicleID:     vehicleID,
		DriverID:      driverID,
		Status:        route.Status(dto.Status),
		StartLocation: dto.StartLocation,
		StartPoint:    startPoint,
		Metrics: route.Metrics{
			TotalDistanceKm: dto.TotalDistanceKm,
			DurationMinutes: dto.DurationMinutes,
		},
		Stops:        stops,
		PlannedStart: dto.PlannedStart,
		PlannedEnd:   dto.PlannedEnd,
		ActualStart:  dto.ActualStart,
		ActualEnd:    dto.ActualEnd,
		CreatedAt:    dto.CreatedAt,
		Version:      dto.Version,
	})
}

func stopToDomain(dto StopDTO) (*route.Stop, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}

	var window *route.TimeWindow
	if dto.WindowStart != nil && dto.WindowEnd != nil {
		w, windowErr := route.NewTimeWindow(*dto.WindowStart, *dto.WindowEnd)
		if windowErr != nil {
			return nil, windowErr
		}
		window = &w
	}

	return route.RestoreStop(
		id,
		shipmentID,
		dto.Sequence,
		route.StopType(dto.StopType),
		window,
		dto.EstimatedArrival,
		dto.ActualArrival,
		dto.ServiceTimeMinutes,
		dto.Completed,
		dto.CompletedAt,
	)
}
