package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/invoice"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrMarkInvoicePaidCommandIsNotConstructed = errors.New(
	"MarkInvoicePaidCommand must be created via NewMarkInvoicePaidCommand constructor",
)

type MarkInvoicePaidCommand struct { //nolint:recvcheck //using for validation
	invoiceID kernel.UUID
	method    invoice.PaymentMethod
	actor     string

	guard guard.ConstructorGuard
}

// NewMarkInvoicePaidCommand parses method by name; empty means bank transfer.
func NewMarkInvoicePaidCommand(invoiceID kernel.UUID, method string, actor string) (MarkInvoicePaidCommand, error) {
	pm, methodErr := invoice.ParsePaymentMethod(method)
	if err := errors.Join(invoiceID.Validate(), methodErr, requireActor(actor)); err != nil {
		return MarkInvoicePaidCommand{}, err
	}
	return MarkInvoicePaidCommand{
		invoiceID: invoiceID,
		method:    pm,
		actor:     strings.TrimSpace(actor),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate fails for a zero value not built by NewMarkInvoicePaidCommand.
func (c MarkInvoicePaidCommand) Validate() error {
	return c.guard.Validate(ErrMarkInvoicePaidCommandIsNotConstructed)
}

func (c MarkInvoicePaidCommand) InvoiceID() kernel.UUID               { return c.invoiceID }
func (c MarkInvoicePaidCommand) PaymentMethod() invoice.PaymentMethod { return c.method }
func (c MarkInvoicePaidCommand) Actor() string                        { return c.actor }
