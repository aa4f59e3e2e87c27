package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetAvailableVehiclesQueryIsNotConstructed = errors.New(
	"GetAvailableVehiclesQuery must be created via NewGetAvailableVehiclesQuery constructor",
)

// GetAvailableVehiclesQuery lists the Idle vehicles a dispatcher can put on a route.
//
// Example:
//
//	query := NewGetAvailableVehiclesQuery()
//	handler := NewGetAvailableVehiclesQueryHandler(db)
//
//	vehicles, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	for _, v := range vehicles {
//	    fmt.Printf("%s can carry %d kg\n", v.PlateNumber, v.CapacityKg)
//	}
type GetAvailableVehiclesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableVehiclesQuery creates the parameterless query.
func NewGetAvailableVehiclesQuery() GetAvailableVehiclesQuery {
	return GetAvailableVehiclesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableVehiclesQueryIsNotConstructed)
}

type GetAvailableVehiclesQueryResponse struct {
	ID          kernel.UUID
	PlateNumber string
	CapacityKg  int
}
