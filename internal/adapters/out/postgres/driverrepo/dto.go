// Package driverrepo persists the driver aggregate with GORM.
package driverrepo

import (
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type DriverDTO struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name                 string    `gorm:"type:varchar(255);not null"`
	LicenseNumber        string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	IsAvailable          bool      `gorm:"not null"`
	TotalDeliveries      int       `gorm:"type:int;not null;default:0"`
	SuccessfulDeliveries int       `gorm:"type:int;not null;default:0"`
	Version              int       `gorm:"type:int;not null;default:0"`
}

func (DriverDTO) TableName() string {
	return "drivers"
}

func fromDomain(d *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:                   d.ID().Bytes(),
		Name:                 d.Name(),
		LicenseNumber:        d.LicenseNumber(),
		IsAvailable:          d.IsAvailable(),
		TotalDeliveries:      d.TotalDeliveries(),
		SuccessfulDeliveries: d.SuccessfulDeliveries(),
		Version:              d.Version(),
	}
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return driver.RestoreDriver(
		id,
		dto.Name,
		dto.LicenseNumber,
		dto.IsAvailable,
		dto.TotalDeliveries,
		dto.SuccessfulDeliveries,
		dto.Version,
	)
}
