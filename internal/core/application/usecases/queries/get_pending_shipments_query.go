package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetPendingShipmentsQueryIsNotConstructed = errors.New(
	"GetPendingShipmentsQuery must be created via NewGetPendingShipmentsQuery constructor",
)

// GetPendingShipmentsQuery lists shipments awaiting dispatch, that is Pending
// or Confirmed. These are the candidates for route optimization.
//
// Example:
//
//	query := NewGetPendingShipmentsQuery()
//	handler := NewGetPendingShipmentsQueryHandler(db)
//
//	shipments, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	ids := make([]kernel.UUID, 0, len(shipments))
//	for _, s := range shipments {
//	    ids = append(ids, s.ID)
//	}
type GetPendingShipmentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingShipmentsQuery creates the parameterless query.
func NewGetPendingShipmentsQuery() GetPendingShipmentsQuery {
	return GetPendingShipmentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingShipmentsQueryIsNotConstructed)
}

type GetPendingShipmentsQueryResponse struct {
	ID                kernel.UUID
	Reference         string
	CustomerID        kernel.UUID
	Origin            string
	Destination       string
	DestinationPoint  *kernel.GeoPoint
	Status            string
	VehicleID         *kernel.UUID
	DriverID          *kernel.UUID
	TotalPrice        kernel.Money
	EstimatedDelivery *time.Time
	CreatedAt         time.Time
}
