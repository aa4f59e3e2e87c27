package queries

import (
	"context"
	"database/sql"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetRouteQueryHandler struct {
	db *gorm.DB
}

// NewGetRouteQueryHandler reads routes and their stops straight from db.
func NewGetRouteQueryHandler(db *gorm.DB) GetRouteQueryHandler {
	return GetRouteQueryHandler{db: db}
}

type routeRow struct {
	ID              uuid.UUID
	Name            string
	Status          int
	VehicleID       *uuid.UUID
	DriverID        *uuid.UUID
	StartLocation   string
	StartLat        float64
	StartLon        float64
	TotalDistanceKm float64
	DurationMinutes int
	PlannedStart    *time.Time
	PlannedEnd      *time.Time
	ActualStart     *time.Time
	ActualEnd       *time.Time
}

func (h GetRouteQueryHandler) Handle(ctx context.Context, query GetRouteQuery) (*GetRouteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var row routeRow
	result := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			status,
			vehicle_id,
			driver_id,
			start_location,
			start_lat,
			start_lon,
			total_distance_km,
			duration_minutes,
			planned_start,
			planned_end,
			actual_start,
			actual_end
		FROM routes
		WHERE id = ?
	`, query.RouteID().Bytes()).Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundError("route", query.RouteID().String())
	}

	resp, err := toRouteResponse(row)
	if err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			rs.id,
			rs.shipment_id,
			s.reference,
			rs.sequence,
			rs.stop_type,
			rs.estimated_arrival,
			rs.actual_arrival,
			rs.service_time_minutes,
			rs.completed,
			rs.completed_at
		FROM route_stops rs
		LEFT JOIN shipments s ON s.id = rs.shipment_id
		WHERE rs.route_id = ?
		ORDER BY rs.sequence
	`, query.RouteID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			stop       RouteStopResponse
			stopID     uuid.UUID
			shipmentID uuid.UUID
			reference  sql.NullString
			stopType   int
		)
		err = rows.Scan(
			&stopID,
			&shipmentID,
			&reference,
			&stop.Sequence,
			&stopType,
			&stop.EstimatedArrival,
			&stop.ActualArrival,
			&stop.ServiceTimeMinutes,
			&stop.Completed,
			&stop.CompletedAt,
		)
		if err != nil {
			return nil, err
		}

		if stop.ID, err = kernel.UUIDFromBytes(stopID[:]); err != nil {
			return nil, err
		}
		if stop.ShipmentID, err = kernel.UUIDFromBytes(shipmentID[:]); err != nil {
			return nil, err
		}
		stop.ShipmentReference = reference.String
		stop.Type = route.StopType(stopType).String()
		resp.Stops = append(resp.Stops, stop)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return resp, nil
}

func toRouteResponse(row routeRow) (*GetRouteQueryResponse, error) {
	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return nil, err
	}
	vehicleID, err := optionalID(row.VehicleID)
	if err != nil {
		return nil, err
	}
	driverID, err := optionalID(row.DriverID)
	if err != nil {
		return nil, err
	}
	start, err := kernel.NewGeoPoint(row.StartLat, row.StartLon)
	if err != nil {
		return nil, err
	}

	return &GetRouteQueryResponse{
		ID:              id,
		Name:            row.Name,
		Status:          route.Status(row.Status).String(),
		VehicleID:       vehicleID,
		DriverID:        driverID,
		StartLocation:   row.StartLocation,
		StartPoint:      start,
		TotalDistanceKm: row.TotalDistanceKm,
		DurationMinutes: row.DurationMinutes,
		PlannedStart:    row.PlannedStart,
		PlannedEnd:      row.PlannedEnd,
		ActualStart:     row.ActualStart,
		ActualEnd:       row.ActualEnd,
		Stops:           make([]RouteStopResponse, 0),
	}, nil
}

func optionalID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil //nolint:nilnil // unassigned
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
