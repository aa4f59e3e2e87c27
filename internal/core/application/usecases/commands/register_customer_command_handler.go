package commands

import (
	"context"
	"log/slog"

	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/ports"
)

type RegisterCustomerCommandHandler struct {
	uowFactory FleetUoWFactory
	effects    sideEffects
}

// NewRegisterCustomerCommandHandler wires the handler. A nil auditor or logger is allowed.
func NewRegisterCustomerCommandHandler(
	uowFactory FleetUoWFactory,
	auditor ports.Auditor,
	logger *slog.Logger,
) RegisterCustomerCommandHandler {
	return RegisterCustomerCommandHandler{
		uowFactory: uowFactory,
		effects:    newSideEffects(nil, auditor, logger),
	}
}

func (h *RegisterCustomerCommandHandler) Handle(ctx context.Context, cmd RegisterCustomerCommand) (*customer.Customer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	c, err := customer.NewCustomer(cmd.CustomerID(), cmd.Name(), cmd.Email())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CustomerRepository().Add(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.effects.audit(ctx, ports.AuditRecord{
		Actor:      cmd.Actor(),
		Action:     "customer.registered",
		EntityKind: "customer",
		EntityID:   c.ID().String(),
	})

	return c, nil
}
