// Package customerrepo persists the customer aggregate with GORM.
package customerrepo

import (
	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CustomerDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name           string          `gorm:"type:varchar(255);not null"`
	Email          string          `gorm:"type:varchar(255)"`
	TotalShipments int             `gorm:"type:int;not null;default:0"`
	TotalRevenue   decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Version        int             `gorm:"type:int;not null;default:0"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:             c.ID().Bytes(),
		Name:           c.Name(),
		Email:          c.Email(),
		TotalShipments: c.TotalShipments(),
		TotalRevenue:   c.TotalRevenue().Amount(),
		Version:        c.Version(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	revenue, err := kernel.NewMoney(dto.TotalRevenue)
	if err != nil {
		return nil, err
	}
	return customer.RestoreCustomer(id, dto.Name, dto.Email, dto.TotalShipments, revenue, dto.Version)
}
