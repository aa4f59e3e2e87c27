package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetAvailableDriversQueryIsNotConstructed = errors.New(
	"GetAvailableDriversQuery must be created via NewGetAvailableDriversQuery constructor",
)

// GetAvailableDriversQuery lists drivers that are not assigned to a vehicle in
// transit or a route in progress.
type GetAvailableDriversQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableDriversQuery takes no parameters.
func NewGetAvailableDriversQuery() GetAvailableDriversQuery {
	return GetAvailableDriversQuery{guard: guard.NewConstructorGuard()}
}

// Validate fails for a zero value not built by NewGetAvailableDriversQuery.
func (q GetAvailableDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableDriversQueryIsNotConstructed)
}

// GetAvailableDriversQueryResponse carries the delivery record so dispatchers
// can prefer reliable drivers. SuccessRate is 100 for a driver without deliveries.
type GetAvailableDriversQueryResponse struct {
	ID                   kernel.UUID
	Name                 string
	LicenseNumber        string
	TotalDeliveries      int
	SuccessfulDeliveries int
	SuccessRate          float64
}
