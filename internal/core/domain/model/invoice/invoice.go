// Package invoice models customer invoices built from delivered shipments.
// Subtotal, tax and grand total are always derived from the items, the tax
// rate and the discount; they are never accepted as input.
package invoice

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const NumberPrefix = "INV"

// DefaultTaxRate is the VAT percentage applied when none is given.
var DefaultTaxRate = decimal.NewFromInt(20)

var ErrInvoiceIsNotConstructed = errors.New("Invoice must be created via NewInvoice constructor")

type Invoice struct {
	id            kernel.UUID
	number        kernel.DocumentNumber
	customerID    kernel.UUID
	status        Status
	issueDate     time.Time
	dueDate       time.Time
	paidDate      *time.Time
	paymentMethod PaymentMethod
	items         []Item
	taxRate       decimal.Decimal
	discount      kernel.Money
	notes         string
	version       int

	isConstructed bool
}

// NewNumber formats the yearly invoice number, e.g. INV-2025-00001.
func NewNumber(year int, sequence int64) (kernel.DocumentNumber, error) {
	return kernel.NewDocumentNumber(NumberPrefix, year, sequence)
}

// NewInvoice creates a Draft invoice and computes its totals from items,
// taxRate and discount. The due date may not precede the issue date.
//
// Example:
//
//	inv, err := invoice.NewInvoice(id, number, customerID, items, issued, issued.AddDate(0, 0, 30), taxRate, discount, "")
func NewInvoice(
	id kernel.UUID,
	number kernel.DocumentNumber,
	customerID kernel.UUID,
	issueDate time.Time,
	dueDate time.Time,
	taxRate decimal.Decimal,
	discount kernel.Money,
	notes string,
) (*Invoice, error) {
	var numberErr, datesErr, rateErr error
	if number.IsZero() || number.Prefix() != NumberPrefix {
		numberErr = errs.NewValueIsRequiredError("number")
	}
	if issueDate.IsZero() || dueDate.Before(issueDate) {
		datesErr = errs.NewValueIsInvalidErrorWithCause("due date", errors.New("must not be before issue date"))
	}
	if taxRate.IsNegative() || taxRate.GreaterThan(decimal.NewFromInt(100)) {
		rateErr = errs.NewValueIsOutOfRangeError("tax rate", taxRate.String(), 0, 100)
	}
	if err := errors.Join(id.Validate(), numberErr, customerID.Validate(), datesErr, rateErr, discount.Validate()); err != nil {
		return nil, err
	}

	return &Invoice{
		id:            id,
		number:        number,
		customerID:    customerID,
		status:        Draft,
		issueDate:     issueDate.UTC(),
		dueDate:       dueDate.UTC(),
		items:         make([]Item, 0),
		taxRate:       taxRate,
		discount:      discount,
		notes:         notes,
		isConstructed: true,
	}, nil
}

// Snapshot carries persisted invoice state into RestoreInvoice.
type Snapshot struct {
	ID            kernel.UUID
	Number        kernel.DocumentNumber
	CustomerID    kernel.UUID
	Status        Status
	IssueDate     time.Time
	DueDate       time.Time
	PaidDate      *time.Time
	PaymentMethod PaymentMethod
	Items         []Item
	TaxRate       decimal.Decimal
	Discount      kernel.Money
	Notes         string
	Version       int
}

// RestoreInvoice rebuilds an invoice from a stored snapshot. Totals are taken as stored.
func RestoreInvoice(s Snapshot) (*Invoice, error) {
	inv, err := NewInvoice(s.ID, s.Number, s.CustomerID, s.IssueDate, s.DueDate, s.TaxRate, s.Discount, s.Notes)
	if err != nil {
		return nil, err
	}
	if err = s.Status.Validate(); err != nil {
		return nil, err
	}
	inv.status = s.Status
	inv.paidDate = s.PaidDate
	inv.paymentMethod = s.PaymentMethod
	inv.items = append(inv.items, s.Items...)
	inv.version = s.Version
	return inv, nil
}

// Validate reports a nil or zero invoice.
func (i *Invoice) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrInvoiceIsNotConstructed
	}
	return nil
}

// ID is the invoice identity.
func (i *Invoice) ID() kernel.UUID { return i.id }

// Number is the INV-YYYY-NNNNN document number.
func (i *Invoice) Number() kernel.DocumentNumber { return i.number }

// CustomerID is the billed customer.
func (i *Invoice) CustomerID() kernel.UUID { return i.customerID }

// Status is the current lifecycle state.
func (i *Invoice) Status() Status { return i.status }

// IssueDate is the UTC issue day.
func (i *Invoice) IssueDate() time.Time { return i.issueDate }

// DueDate is the UTC payment deadline.
func (i *Invoice) DueDate() time.Time { return i.dueDate }

// PaidDate is nil until the invoice is paid.
func (i *Invoice) PaidDate() *time.Time { return i.paidDate }

// PaymentMethod is set when the invoice is paid.
func (i *Invoice) PaymentMethod() PaymentMethod { return i.paymentMethod }

// TaxRate is a fraction, e.g. 0.18.
func (i *Invoice) TaxRate() decimal.Decimal { return i.taxRate }

// Discount is subtracted before tax.
func (i *Invoice) Discount() kernel.Money { return i.discount }

// Notes is free text printed on the invoice.
func (i *Invoice) Notes() string { return i.notes }

// Version is the optimistic lock counter of the stored row.
func (i *Invoice) Version() int { return i.version }

// IncrementVersion is called by the repository after a successful update.
func (i *Invoice) IncrementVersion() { i.version++ }

// Items returns a copy of the line items.
func (i *Invoice) Items() []Item {
	out := make([]Item, len(i.items))
	copy(out, i.items)
	return out
}

// Subtotal is the sum of item totals.
func (i *Invoice) Subtotal() kernel.Money {
	sum := kernel.ZeroMoney()
	for _, item := range i.items {
		sum = sum.Add(item.Total())
	}
	return sum
}

// TaxAmount is subtotal × tax rate / 100.
func (i *Invoice) TaxAmount() kernel.Money {
	return i.Subtotal().Percent(i.taxRate)
}

// Total is subtotal + tax - discount, or zero when the discount exceeds it.
func (i *Invoice) Total() kernel.Money {
	total, err := i.Subtotal().Add(i.TaxAmount()).Sub(i.discount)
	if err != nil {
		return kernel.ZeroMoney()
	}
	return total
}

// AddItem appends a line to a Draft invoice. A shipment is billed at most once.
func (i *Invoice) AddItem(item Item) error {
	if i.status != Draft {
		return errs.NewInvalidStateError("invoice", i.status.String(), "add an item to")
	}
	if err := item.ID().Validate(); err != nil {
		return err
	}
	if sid := item.ShipmentID(); sid != nil {
		for _, existing := range i.items {
			if existing.ShipmentID() != nil && existing.ShipmentID().IsEqual(*sid) {
				return errs.NewValueIsInvalidErrorWithCause("item",
					fmt.Errorf("shipment %s is already billed", sid))
			}
		}
	}
	i.items = append(i.items, item)
	return nil
}

// Send issues a Draft invoice to the customer.
func (i *Invoice) Send() error {
	if i.status != Draft {
		return errs.NewInvalidStateError("invoice", i.status.String(), "send")
	}
	if len(i.items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	if _, err := i.Subtotal().Add(i.TaxAmount()).Sub(i.discount); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("discount", errors.New("exceeds subtotal and tax"))
	}
	i.status = Sent
	return nil
}

// MarkPaid settles a Sent or Overdue invoice.
func (i *Invoice) MarkPaid(method PaymentMethod, paidAt time.Time) error {
	if i.status != Sent && i.status != Overdue {
		return errs.NewInvalidStateError("invoice", i.status.String(), "mark paid")
	}
	if method == UnknownPaymentMethod {
		method = BankTransfer
	}
	at := paidAt.UTC()
	i.status = Paid
	i.paidDate = &at
	i.paymentMethod = method
	return nil
}

// IsOverdueAt reports whether a Sent invoice is past its due date on day today.
func (i *Invoice) IsOverdueAt(today time.Time) bool {
	return i.status == Sent && truncateDay(i.dueDate).Before(truncateDay(today))
}

// MarkOverdue flags a Sent invoice whose due date has passed.
func (i *Invoice) MarkOverdue(today time.Time) error {
	if !i.IsOverdueAt(today) {
		return errs.NewInvalidStateError("invoice", i.status.String(), "mark overdue")
	}
	i.status = Overdue
	return nil
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
