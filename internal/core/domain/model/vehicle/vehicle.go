package vehicle

import (
	"errors"
	"fmt"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")

// Vehicle is the aggregate root for a fleet vehicle.
type Vehicle struct {
	id          kernel.UUID
	plateNumber string
	capacityKg  int
	status      Status
	// version is the optimistic concurrency token loaded from storage
	version int

	isConstructed bool
}

// NewVehicle registers an idle vehicle. The plate number is normalised to upper
// case and the capacity must be positive.
//
// Example:
//
//	v, err := vehicle.NewVehicle(kernel.NewUUID(), "34 abc 12", 3500)
//	if err != nil {
//	    return err
//	}
//	_ = v.PlateNumber() // "34 ABC 12"
func NewVehicle(id kernel.UUID, plateNumber string, capacityKg int) (*Vehicle, error) {
	v := &Vehicle{
		status:        Idle,
		isConstructed: true,
	}

	if err := errors.Join(
		v.setID(id),
		v.setPlateNumber(plateNumber),
		v.setCapacityKg(capacityKg),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// RestoreVehicle rebuilds a vehicle from persisted state.
func RestoreVehicle(id kernel.UUID, plateNumber string, capacityKg int, status Status, version int) (*Vehicle, error) {
	v, err := NewVehicle(id, plateNumber, capacityKg)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	v.status = status
	v.version = version
	return v, nil
}

// Validate reports whether the vehicle was built by NewVehicle or RestoreVehicle.
func (v *Vehicle) Validate() error {
	if v == nil || !v.isConstructed {
		return ErrVehicleIsNotConstructed
	}
	return nil
}

// ID returns the vehicle identifier.
func (v *Vehicle) ID() kernel.UUID {
	return v.id
}

// PlateNumber returns the upper-cased plate number.
func (v *Vehicle) PlateNumber() string {
	return v.plateNumber
}

// CapacityKg returns the maximum load in kilograms.
func (v *Vehicle) CapacityKg() int {
	return v.capacityKg
}

// Status returns the current operational state.
func (v *Vehicle) Status() Status {
	return v.status
}

// Version returns the optimistic concurrency token.
func (v *Vehicle) Version() int {
	return v.version
}

// IncrementVersion is called by the repository after a successful write.
func (v *Vehicle) IncrementVersion() {
	v.version++
}

// EnterTransit binds the vehicle to a dispatched shipment. A vehicle already
// in Transit may carry several shipments at once.
func (v *Vehicle) EnterTransit() error {
	next, err := v.status.EnterTransit()
	if err != nil {
		return err
	}
	v.status = next
	return nil
}

// StartRoute binds an idle vehicle to a route that is being started.
func (v *Vehicle) StartRoute() error {
	next, err := v.status.StartRoute()
	if err != nil {
		return err
	}
	v.status = next
	return nil
}

// Release frees the vehicle after its route or shipment ends.
func (v *Vehicle) Release() error {
	next, err := v.status.Release()
	if err != nil {
		return err
	}
	v.status = next
	return nil
}

// StartMaintenance takes the vehicle off the road.
func (v *Vehicle) StartMaintenance() error {
	next, err := v.status.StartMaintenance()
	if err != nil {
		return err
	}
	v.status = next
	return nil
}

func (v *Vehicle) EndMaintenance() error {
	next, err := v.status.EndMaintenance()
	if err != nil {
		return err
	}
	v.status = next
	return nil
}

func (v *Vehicle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Vehicle) setPlateNumber(plateNumber string) error {
	plateNumber = strings.ToUpper(strings.TrimSpace(plateNumber))
	if plateNumber == "" {
		return errs.NewValueIsRequiredError("plate number")
	}
	v.plateNumber = plateNumber
	return nil
}

func (v *Vehicle) setCapacityKg(capacityKg int) error {
	if capacityKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("capacity", fmt.Errorf("%d is not greater than 0", capacityKg))
	}
	v.capacityKg = capacityKg
	return nil
}
