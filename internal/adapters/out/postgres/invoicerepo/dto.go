// Package invoicerepo persists invoices together with their items.
package invoicerepo

import (
	"time"

	"logistics/internal/adapters/out/postgres/pgutil"
	"logistics/internal/core/domain/model/invoice"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type InvoiceDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Number        string          `gorm:"type:varchar(32);not null;uniqueIndex"`
	CustomerID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status        int             `gorm:"type:smallint;not null;index:idx_invoices_status_due,priority:1"`
	IssueDate     time.Time       `gorm:"type:date;not null"`
	DueDate       time.Time       `gorm:"type:date;not null;index:idx_invoices_status_due,priority:2"`
	PaidDate      *time.Time      `gorm:"type:timestamptz"`
	PaymentMethod int             `gorm:"type:smallint;not null;default:0"`
	TaxRate       decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	Discount      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Notes         string          `gorm:"type:text"`
	Version       int             `gorm:"type:int;not null;default:0"`
	Items         []ItemDTO       `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
}

func (InvoiceDTO) TableName() string {
	return "invoices"
}

type ItemDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	InvoiceID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position    int             `gorm:"type:int;not null"`
	ShipmentID  *uuid.UUID      `gorm:"type:uuid;index"`
	Description string          `gorm:"type:varchar(500);not null"`
	Quantity    int             `gorm:"type:int;not null"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (ItemDTO) TableName() string {
	return "invoice_items"
}

func fromDomain(inv *invoice.Invoice) InvoiceDTO {
	invoiceID := inv.ID().Bytes()
	items := make([]ItemDTO, 0, len(inv.Items()))
	for i, item := range inv.Items() {
		items = append(items, ItemDTO{
			ID:          item.ID().Bytes(),
			InvoiceID:   invoiceID,
			Position:    i + 1,
			ShipmentID:  pgutil.NullableID(item.ShipmentID()),
			Description: item.Description(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice().Amount(),
		})
	}

	return InvoiceDTO{
		ID:            invoiceID,
		Number:        inv.Number().String(),
		CustomerID:    inv.CustomerID().Bytes(),
		Status:        int(inv.Status()),
		IssueDate:     inv.IssueDate(),
		DueDate:       inv.DueDate(),
		PaidDate:      inv.PaidDate(),
		PaymentMethod: int(inv.PaymentMethod()),
		TaxRate:       inv.TaxRate(),
		Discount:      inv.Discount().Amount(),
		Notes:         inv.Notes(),
		Version:       inv.Version(),
		Items:         items,
	}
}

func toDomain(dto InvoiceDTO) (*invoice.Invoice, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	number, err := kernel.ParseDocumentNumber(dto.Number)
	if err != nil {
		return nil, err
	}
	discount, err := kernel.NewMoney(dto.Discount)
	if err != nil {
		return nil, err
	}

	items := make([]invoice.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return invoice.RestoreInvoice(invoice.Snapshot{
		ID:            id,
		Number:        number,
		CustomerID:    customerID,
		Status:        invoice.Status(dto.Status),
		IssueDate:     dto.IssueDate,
		DueDate:       dto.DueDate,
		PaidDate:      dto.PaidDate,
		PaymentMethod: invoice.PaymentMethod(dto.PaymentMethod),
		Items:         items,
		TaxRate:       dto.TaxRate,
		Discount:      discount,
		Notes:         dto.Notes,
		Version:       dto.Version,
	})
}

func itemToDomain(dto ItemDTO) (invoice.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return invoice.Item{}, err
	}
	shipmentID, err := pgutil.ParseNullableID(dto.ShipmentID)
	if err != nil {
		return invoice.Item{}, err
	}
	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return invoice.Item{}, err
	}
	return invoice.NewItem(id, shipmentID, dto.Description, dto.Quantity, unitPrice)
}
