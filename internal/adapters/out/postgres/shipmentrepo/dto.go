// Package shipmentrepo persists shipments and their append-only status
// history with GORM.
package shipmentrepo

import (
	"time"

	"logistics/internal/adapters/out/postgres/pgutil"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ShipmentDTO struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Reference         string          `gorm:"type:varchar(32);not null;uniqueIndex"`
	TrackingToken     string          `gorm:"type:char(32);not null;uniqueIndex"`
	CustomerID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Origin            AddressDTO      `gorm:"embedded;embeddedPrefix:origin_"`
	Destination       AddressDTO      `gorm:"embedded;embeddedPrefix:destination_"`
	Price             decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ExtraCharges      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Discount          decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status            int             `gorm:"type:smallint;not null;index"`
	VehicleID         *uuid.UUID      `gorm:"type:uuid;index"`
	DriverID          *uuid.UUID      `gorm:"type:uuid;index"`
	EstimatedDelivery *time.Time      `gorm:"type:timestamptz"`
	ActualDelivery    *time.Time      `gorm:"type:timestamptz"`
	RecipientName     string          `gorm:"type:varchar(255)"`
	CreatedAt         time.Time       `gorm:"type:timestamptz;not null"`
	Version           int             `gorm:"type:int;not null;default:0"`
}

func (ShipmentDTO) TableName() string {
	return "shipments"
}

type AddressDTO struct {
	Text string   `gorm:"type:text;not null"`
	Lat  *float64 `gorm:"type:double precision"`
	Lon  *float64 `gorm:"type:double precision"`
}

type HistoryDTO struct {
	ID         uuid.UUID    `gorm:"type:uuid;primaryKey"`
	ShipmentID uuid.UUID    `gorm:"type:uuid;not null;index:idx_shipment_history_shipment_recorded,priority:1"`
	Status     int          `gorm:"type:smallint;not null"`
	Actor      string       `gorm:"type:varchar(255);not null"`
	Notes      string       `gorm:"type:text"`
	Lat        *float64     `gorm:"type:double precision"`
	Lon        *float64     `gorm:"type:double precision"`
	Address    string       `gorm:"type:text"`
	RecordedAt time.Time    `gorm:"type:timestamptz;not null;index:idx_shipment_history_shipment_recorded,priority:2"`
	Shipment   *ShipmentDTO `gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE"`
}

func (HistoryDTO) TableName() string {
	return "shipment_history"
}

func fromDomain(s *shipment.Shipment) ShipmentDTO {
	p := s.Pricing()
	return ShipmentDTO{
		ID:                s.ID().Bytes(),
		Reference:         s.Reference().String(),
		TrackingToken:     s.TrackingToken().String(),
		CustomerID:        s.CustomerID().Bytes(),
		Origin:            addressFromDomain(s.Origin()),
		Destination:       addressFromDomain(s.Destination()),
		Price:             p.Price().Amount(),
		ExtraCharges:      p.ExtraCharges().Amount(),
		Discount:          p.Discount().Amount(),
		Status:            int(s.Status()),
		VehicleID:         pgutil.NullableID(s.VehicleID()),
		DriverID:          pgutil.NullableID(s.DriverID()),
		EstimatedDelivery: s.EstimatedDelivery(),
		ActualDelivery:    s.ActualDelivery(),
		RecipientName:     s.RecipientName(),
		CreatedAt:         s.CreatedAt(),
		Version:           s.Version(),
	}
}

func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	reference, err := kernel.ParseDocumentNumber(dto.Reference)
	if err != nil {
		return nil, err
	}
	token, err := shipment.ParseTrackingToken(dto.TrackingToken)
	if err != nil {
		return nil, err
	}
	origin, err := addressToDomain(dto.Origin)
	if err != nil {
		return nil, err
	}
	destination, err := addressToDomain(dto.Destination)
	if err != nil {
		return nil, err
	}
	pricing, err := pricingToDomain(dto)
	if err != nil {
		return nil, err
	}
	vehicleID, err := pgutil.ParseNullableID(dto.VehicleID)
	if err != nil {
		return nil, err
	}
	driverID, err := pgutil.ParseNullableID(dto.DriverID)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(shipment.Snapshot{
		ID:                id,
		Reference:         reference,
		TrackingToken:     token,
		CustomerID:        customerID,
		Origin:            origin,
		Destination:       destination,
		Pricing:           pricing,
		Status:            shipment.Status(dto.Status),
		VehicleID:         vehicleID,
		DriverID:          driverID,
		EstimatedDelivery: dto.EstimatedDelivery,
		ActualDelivery:    dto.ActualDelivery,
		RecipientName:     dto.RecipientName,
		CreatedAt:         dto.CreatedAt,
		Version:           dto.Version,
	})
}

func pricingToDomain(dto ShipmentDTO) (shipment.Pricing, error) {
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return shipment.Pricing{}, err
	}
	extra, err := kernel.NewMoney(dto.ExtraCharges)
	if err != nil {
		return shipment.Pricing{}, err
	}
	discount, err := kernel.NewMoney(dto.Discount)
	if err != nil {
		return shipment.Pricing{}, err
	}
	return shipment.NewPricing(price, extra, discount)
}

func addressFromDomain(a shipment.Address) AddressDTO {
	dto := AddressDTO{Text: a.Text()}
	if p := a.Point(); p != nil {
		lat, lon := p.Lat(), p.Lon()
		dto.Lat, dto.Lon = &lat, &lon
	}
	return dto
}

func addressToDomain(dto AddressDTO) (shipment.Address, error) {
	point, err := kernel.NewOptionalGeoPoint(dto.Lat, dto.Lon)
	if err != nil {
		return shipment.Address{}, err
	}
	return shipment.NewAddress(dto.Text, point)
}

func historyFromDomain(h shipment.HistoryEntry) HistoryDTO {
	dto := HistoryDTO{
		ID:         h.ID().Bytes(),
		ShipmentID: h.ShipmentID().Bytes(),
		Status:     int(h.Status()),
		Actor:      h.Actor(),
		Notes:      h.Notes(),
		Address:    h.Address(),
		RecordedAt: h.RecordedAt(),
	}
	if p := h.Point(); p != nil {
		lat, lon := p.Lat(), p.Lon()
		dto.Lat, dto.Lon = &lat, &lon
	}
	return dto
}

func historyToDomain(dto HistoryDTO) (shipment.HistoryEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return shipment.HistoryEntry{}, err
	}
	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return shipment.HistoryEntry{}, err
	}
	point, err := kernel.NewOptionalGeoPoint(dto.Lat, dto.Lon)
	if err != nil {
		return shipment.HistoryEntry{}, err
	}
	return shipment.NewHistoryEntry(
		id, shipmentID, shipment.Status(dto.Status), dto.Actor, dto.Notes, point, dto.Address, dto.RecordedAt,
	)
}
