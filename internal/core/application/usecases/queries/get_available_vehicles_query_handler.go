package queries

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableVehiclesQueryHandler reads Idle vehicles straight from the
// vehicles table, ordered by plate number.
type GetAvailableVehiclesQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableVehiclesQueryHandler creates a handler backed by db.
func NewGetAvailableVehiclesQueryHandler(db *gorm.DB) GetAvailableVehiclesQueryHandler {
	return GetAvailableVehiclesQueryHandler{db: db}
}

// Handle returns an empty, non-nil slice when no vehicle is idle.
func (h GetAvailableVehiclesQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableVehiclesQuery,
) ([]GetAvailableVehiclesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	vehicles := make([]GetAvailableVehiclesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			plate_number,
			capacity_kg
		FROM vehicles
		WHERE status = ?
		ORDER BY plate_number
	`, int(vehicle.Idle)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp GetAvailableVehiclesQueryResponse
			id   uuid.UUID
		)
		if err = rows.Scan(&id, &resp.PlateNumber, &resp.CapacityKg); err != nil {
			return nil, err
		}

		vehicleID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = vehicleID
		vehicles = append(vehicles, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return vehicles, nil
}
