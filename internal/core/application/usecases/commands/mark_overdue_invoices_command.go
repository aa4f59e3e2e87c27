package commands

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrMarkOverdueInvoicesCommandIsNotConstructed = errors.New(
	"MarkOverdueInvoicesCommand must be created via NewMarkOverdueInvoicesCommand constructor",
)

// MarkOverdueInvoicesCommand flags every Sent invoice due before today.
type MarkOverdueInvoicesCommand struct { //nolint:recvcheck //using for validation
	today time.Time
	actor string

	guard guard.ConstructorGuard
}

// NewMarkOverdueInvoicesCommand takes the reference date invoices are compared against.
func NewMarkOverdueInvoicesCommand(today time.Time, actor string) (MarkOverdueInvoicesCommand, error) {
	var todayErr error
	if today.IsZero() {
		todayErr = errs.NewValueIsRequiredError("today")
	}
	if err := errors.Join(todayErr, requireActor(actor)); err != nil {
		return MarkOverdueInvoicesCommand{}, err
	}
	return MarkOverdueInvoicesCommand{
		today: today.UTC(),
		actor: strings.TrimSpace(actor),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate fails for a zero value not built by NewMarkOverdueInvoicesCommand.
func (c MarkOverdueInvoicesCommand) Validate() error {
	return c.guard.Validate(ErrMarkOverdueInvoicesCommandIsNotConstructed)
}

func (c MarkOverdueInvoicesCommand) Today() time.Time { return c.today }
func (c MarkOverdueInvoicesCommand) Actor() string    { return c.actor }
