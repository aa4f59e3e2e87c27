package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrSendInvoiceCommandIsNotConstructed = errors.New(
	"SendInvoiceCommand must be created via NewSendInvoiceCommand constructor",
)

type SendInvoiceCommand struct { //nolint:recvcheck //using for validation
	invoiceID kernel.UUID
	actor     string

	guard guard.ConstructorGuard
}

// NewSendInvoiceCommand requires an invoice id and an actor.
func NewSendInvoiceCommand(invoiceID kernel.UUID, actor string) (SendInvoiceCommand, error) {
	if err := errors.Join(invoiceID.Validate(), requireActor(actor)); err != nil {
		return SendInvoiceCommand{}, err
	}
	return SendInvoiceCommand{
		invoiceID: invoiceID,
		actor:     strings.TrimSpace(actor),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate fails for a zero value not built by NewSendInvoiceCommand.
func (c SendInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrSendInvoiceCommandIsNotConstructed)
}

func (c SendInvoiceCommand) InvoiceID() kernel.UUID { return c.invoiceID }
func (c SendInvoiceCommand) Actor() string          { return c.actor }
