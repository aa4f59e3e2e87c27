// Package driver models a driver's availability and delivery record.
package driver

import (
	"errors"
	"fmt"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")

// Driver is unavailable while assigned to a vehicle in transit or a route in progress.
type Driver struct {
	id                   kernel.UUID
	name                 string
	licenseNumber        string
	isAvailable          bool
	totalDeliveries      int
	successfulDeliveries int
	version              int

	isConstructed bool
}

// NewDriver registers an available driver with no delivery history.
// Name and license number are trimmed and required.
//
// Example:
//
//	d, err := driver.NewDriver(kernel.NewUUID(), "Kemal Yilmaz", "B-123456")
//	if err != nil {
//	    return err
//	}
//	_ = d.IsAvailable() // true
func NewDriver(id kernel.UUID, name string, licenseNumber string) (*Driver, error) {
	d := &Driver{
		isAvailable:   true,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setLicenseNumber(licenseNumber),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver rebuilds a driver from persisted state.
func RestoreDriver(
	id kernel.UUID,
	name string,
	licenseNumber string,
	isAvailable bool,
	totalDeliveries int,
	successfulDeliveries int,
	version int,
) (*Driver, error) {
	d, err := NewDriver(id, name, licenseNumber)
	if err != nil {
		return nil, err
	}
	if totalDeliveries < 0 || successfulDeliveries < 0 || successfulDeliveries > totalDeliveries {
		return nil, errs.NewValueIsInvalidErrorWithCause("deliveries",
			fmt.Errorf("successful %d out of total %d", successfulDeliveries, totalDeliveries))
	}
	d.isAvailable = isAvailable
	d.totalDeliveries = totalDeliveries
	d.successfulDeliveries = successfulDeliveries
	d.version = version
	return d, nil
}

// Validate reports whether the driver was built by NewDriver or RestoreDriver.
func (d *Driver) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDriverIsNotConstructed
	}
	return nil
}

// ID returns the driver identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Name returns the trimmed full name.
func (d *Driver) Name() string {
	return d.name
}

// LicenseNumber returns the driving license number.
func (d *Driver) LicenseNumber() string {
	return d.licenseNumber
}

// IsAvailable reports whether the driver can take a route or shipment.
func (d *Driver) IsAvailable() bool {
	return d.isAvailable
}

// TotalDeliveries counts every finished delivery.
func (d *Driver) TotalDeliveries() int {
	return d.totalDeliveries
}

// SuccessfulDeliveries counts deliveries that reached the recipient.
func (d *Driver) SuccessfulDeliveries() int {
	return d.successfulDeliveries
}

// Version returns the optimistic concurrency token.
func (d *Driver) Version() int {
	return d.version
}

// IncrementVersion is called by the repository after a successful write.
func (d *Driver) IncrementVersion() {
	d.version++
}

// SuccessRate is successful/total as a percentage, 100 when nothing was delivered yet.
func (d *Driver) SuccessRate() float64 {
	if d.totalDeliveries == 0 {
		return 100
	}
	return float64(d.successfulDeliveries) / float64(d.totalDeliveries) * 100
}

// StartRoute takes an available driver off duty for a route. An unavailable
// driver is already busy elsewhere and is rejected.
func (d *Driver) StartRoute() error {
	if !d.isAvailable {
		return errs.NewInvalidStateError("driver", "Unavailable", "start a route with")
	}
	d.isAvailable = false
	return nil
}

// Assign marks the driver as busy.
func (d *Driver) Assign() {
	d.isAvailable = false
}

// Release marks the driver as available again.
func (d *Driver) Release() {
	d.isAvailable = true
}

// ToggleAvailability flips the availability flag.
func (d *Driver) ToggleAvailability() {
	d.isAvailable = !d.isAvailable
}

// RecordDelivery counts a finished delivery.
func (d *Driver) RecordDelivery(successful bool) {
	d.totalDeliveries++
	if successful {
		d.successfulDeliveries++
	}
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}

func (d *Driver) setLicenseNumber(licenseNumber string) error {
	licenseNumber = strings.TrimSpace(licenseNumber)
	if licenseNumber == "" {
		return errs.NewValueIsRequiredError("license number")
	}
	d.licenseNumber = licenseNumber
	return nil
}
