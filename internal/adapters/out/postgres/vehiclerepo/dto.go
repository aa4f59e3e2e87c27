// Package vehiclerepo persists the vehicle aggregate with GORM.
package vehiclerepo

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

type VehicleDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	PlateNumber string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	CapacityKg  int       `gorm:"type:int;not null"`
	Status      int       `gorm:"type:smallint;not null;index"`
	Version     int       `gorm:"type:int;not null;default:0"`
}

func (VehicleDTO) TableName() string {
	return "vehicles"
}

func fromDomain(v *vehicle.Vehicle) VehicleDTO {
	return VehicleDTO{
		ID:          v.ID().Bytes(),
		PlateNumber: v.PlateNumber(),
		CapacityKg:  v.CapacityKg(),
		Status:      int(v.Status()),
		Version:     v.Version(),
	}
}

func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return vehicle.RestoreVehicle(id, dto.PlateNumber, dto.CapacityKg, vehicle.Status(dto.Status), dto.Version)
}
