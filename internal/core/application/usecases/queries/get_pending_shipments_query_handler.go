package queries

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetPendingShipmentsQueryHandler reads undispatched shipments oldest first.
// The total price is computed in SQL from the stored pricing columns.
type GetPendingShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingShipmentsQueryHandler reads shipments straight from db.
func NewGetPendingShipmentsQueryHandler(db *gorm.DB) GetPendingShipmentsQueryHandler {
	return GetPendingShipmentsQueryHandler{db: db}
}

func (h GetPendingShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetPendingShipmentsQuery,
) ([]GetPendingShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shipments := make([]GetPendingShipmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			reference,
			customer_id,
			origin_text,
			destination_text,
			destination_lat,
			destination_lon,
			status,
			vehicle_id,
			driver_id,
			price + extra_charges - discount AS total_price,
			estimated_delivery,
			created_at
		FROM shipments
		WHERE status IN ?
		ORDER BY created_at, reference
	`, []int{int(shipment.Pending), int(shipment.Confirmed)}).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		resp, scanErr := scanPendingShipment(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		shipments = append(shipments, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPendingShipment(rows rowScanner) (GetPendingShipmentsQueryResponse, error) {
	var (
		resp                GetPendingShipmentsQueryResponse
		id, customerID      uuid.UUID
		vehicleID, driverID *uuid.UUID
		destLat, destLon    *float64
		status              int
		total               decimal.Decimal
		estimated           *time.Time
	)
	err := rows.Scan(
		&id,
		&resp.Reference,
		&customerID,
		&resp.Origin,
		&resp.Destination,
		&destLat,
		&destLon,
		&status,
		&vehicleID,
		&driverID,
		&total,
		&estimated,
		&resp.CreatedAt,
	)
	if err != nil {
		return GetPendingShipmentsQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetPendingShipmentsQueryResponse{}, err
	}
	if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return GetPendingShipmentsQueryResponse{}, err
	}
	if resp.VehicleID, err = optionalID(vehicleID); err != nil {
		return GetPendingShipmentsQueryResponse{}, err
	}
	if resp.DriverID, err = optionalID(driverID); err != nil {
		return GetPendingShipmentsQueryResponse{}, err
	}
	if destLat != nil && destLon != nil {
		point, pointErr := kernel.NewGeoPoint(*destLat, *destLon)
		if pointErr != nil {
			return GetPendingShipmentsQueryResponse{}, pointErr
		}
		resp.DestinationPoint = &point
	}
	if resp.TotalPrice, err = kernel.NewMoney(total); err != nil {
		return GetPendingShipmentsQueryResponse{}, err
	}
	resp.Status = shipment.Status(status).String()
	resp.EstimatedDelivery = estimated
	resp.CreatedAt = resp.CreatedAt.UTC()
	return resp, nil
}
