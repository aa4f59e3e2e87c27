package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"logistics/internal/core/domain/model/invoice"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateInvoiceCommandIsNotConstructed = errors.New(
	"CreateInvoiceCommand must be created via NewCreateInvoiceCommand constructor",
)

type CreateInvoiceCommand struct { //nolint:recvcheck //using for validation
	customerID  kernel.UUID
	shipmentIDs []kernel.UUID
	issueDate   time.Time
	dueDate     time.Time
	taxRate     decimal.Decimal
	discount    kernel.Money
	notes       string
	actor       string

	guard guard.ConstructorGuard
}

// NewCreateInvoiceCommand falls back to invoice.DefaultTaxRate when taxRate is
// nil and to no discount when discount is the zero value.
func NewCreateInvoiceCommand(
	customerID kernel.UUID,
	shipmentIDs []kernel.UUID,
	issueDate time.Time,
	dueDate time.Time,
	taxRate *decimal.Decimal,
	discount kernel.Money,
	notes string,
	actor string,
) (CreateInvoiceCommand, error) {
	cmd := CreateInvoiceCommand{
		customerID: customerID,
		issueDate:  issueDate.UTC(),
		dueDate:    dueDate.UTC(),
		taxRate:    invoice.DefaultTaxRate,
		discount:   kernel.ZeroMoney(),
		notes:      strings.TrimSpace(notes),
		actor:      strings.TrimSpace(actor),
		guard:      guard.NewConstructorGuard(),
	}
	if taxRate != nil {
		cmd.taxRate = *taxRate
	}
	if discount.Validate() == nil {
		cmd.discount = discount
	}

	var datesErr error
	if issueDate.IsZero() || dueDate.Before(issueDate) {
		datesErr = errs.NewValueIsInvalidErrorWithCause("due date", errors.New("must not be before issue date"))
	}
	if err := errors.Join(
		customerID.Validate(),
		cmd.setShipmentIDs(shipmentIDs),
		datesErr,
		requireActor(actor),
	); err != nil {
		return CreateInvoiceCommand{}, err
	}
	return cmd, nil
}

// Validate fails for a zero value not built by NewCreateInvoiceCommand.
func (c CreateInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrCreateInvoiceCommandIsNotConstructed)
}

func (c CreateInvoiceCommand) CustomerID() kernel.UUID { return c.customerID }

func (c CreateInvoiceCommand) ShipmentIDs() []kernel.UUID {
	out := make([]kernel.UUID, len(c.shipmentIDs))
	copy(out, c.shipmentIDs)
	return out
}

func (c CreateInvoiceCommand) IssueDate() time.Time     { return c.issueDate }
func (c CreateInvoiceCommand) DueDate() time.Time       { return c.dueDate }
func (c CreateInvoiceCommand) TaxRate() decimal.Decimal { return c.taxRate }
func (c CreateInvoiceCommand) Discount() kernel.Money   { return c.discount }
func (c CreateInvoiceCommand) Notes() string            { return c.notes }
func (c CreateInvoiceCommand) Actor() string            { return c.actor }

func (c *CreateInvoiceCommand) setShipmentIDs(ids []kernel.UUID) error {
	if len(ids) == 0 {
		return errs.NewValueIsRequiredError("shipment ids")
	}
	seen := make(map[kernel.UUID]struct{}, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
		if _, dup := seen[id]; dup {
			return errs.NewValueIsInvalidErrorWithCause("shipment ids", fmt.Errorf("%s is listed twice", id))
		}
		seen[id] = struct{}{}
	}
	c.shipmentIDs = append([]kernel.UUID(nil), ids...)
	return nil
}
