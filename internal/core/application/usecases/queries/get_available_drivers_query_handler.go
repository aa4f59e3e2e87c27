package queries

import (
	"context"

	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableDriversQueryHandler reads available drivers ordered by name.
//
// Example:
//
//	handler := NewGetAvailableDriversQueryHandler(db)
//	drivers, err := handler.Handle(ctx, NewGetAvailableDriversQuery())
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d drivers can take a route\n", len(drivers))
type GetAvailableDriversQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableDriversQueryHandler reads drivers straight from db.
func NewGetAvailableDriversQueryHandler(db *gorm.DB) GetAvailableDriversQueryHandler {
	return GetAvailableDriversQueryHandler{db: db}
}

func (h GetAvailableDriversQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableDriversQuery,
) ([]GetAvailableDriversQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	drivers := make([]GetAvailableDriversQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			license_number,
			total_deliveries,
			successful_deliveries
		FROM drivers
		WHERE is_available
		ORDER BY name, license_number
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp GetAvailableDriversQueryResponse
			id   uuid.UUID
		)
		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.LicenseNumber,
			&resp.TotalDeliveries,
			&resp.SuccessfulDeliveries,
		)
		if err != nil {
			return nil, err
		}

		driverID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = driverID
		resp.SuccessRate = successRate(resp.SuccessfulDeliveries, resp.TotalDeliveries)
		drivers = append(drivers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}

func successRate(successful, total int) float64 {
	if total == 0 {
		return 100
	}
	return float64(successful) / float64(total) * 100
}
