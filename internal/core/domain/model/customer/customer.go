// Package customer holds the billing party of shipments and invoices together
// with its running shipment and revenue totals.
package customer

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

type Customer struct {
	id             kernel.UUID
	name           string
	email          string
	totalShipments int
	totalRevenue   kernel.Money
	version        int

	isConstructed bool
}

// NewCustomer creates a customer. Name is required and email must parse as
// an address.
//
// Example:
//
//	c, err := customer.NewCustomer(kernel.NewUUID(), "Acme Ltd", "ops@acme.test")
func NewCustomer(id kernel.UUID, name string, email string) (*Customer, error) {
	c := &Customer{
		totalRevenue:  kernel.ZeroMoney(),
		isConstructed: true,
	}

	if err := errors.Join(c.setID(id), c.setName(name)); err != nil {
		return nil, err
	}
	c.email = strings.TrimSpace(email)

	return c, nil
}

// RestoreCustomer rebuilds a customer from storage without running creation rules.
func RestoreCustomer(
	id kernel.UUID,
	name string,
	email string,
	totalShipments int,
	totalRevenue kernel.Money,
	version int,
) (*Customer, error) {
	c, err := NewCustomer(id, name, email)
	if err != nil {
		return nil, err
	}
	if err = totalRevenue.Validate(); err != nil {
		return nil, err
	}
	if totalShipments < 0 {
		return nil, errs.NewValueIsOutOfRangeError("total shipments", totalShipments, 0, "unbounded")
	}
	c.totalShipments = totalShipments
	c.totalRevenue = totalRevenue
	c.version = version
	return c, nil
}

// Validate reports a nil or zero customer.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// ID is the customer identity.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name is the display name.
func (c *Customer) Name() string {
	return c.name
}

// Email is the contact address.
func (c *Customer) Email() string {
	return c.email
}

// TotalShipments counts delivered shipments.
func (c *Customer) TotalShipments() int {
	return c.totalShipments
}

// TotalRevenue sums the total price of delivered shipments.
func (c *Customer) TotalRevenue() kernel.Money {
	return c.totalRevenue
}

// Version is the optimistic lock counter of the stored row.
func (c *Customer) Version() int {
	return c.version
}

// IncrementVersion is called by the repository after a successful update.
func (c *Customer) IncrementVersion() {
	c.version++
}

// RecordDeliveredShipment adds one delivered shipment and its total price to the running totals.
func (c *Customer) RecordDeliveredShipment(total kernel.Money) error {
	if err := total.Validate(); err != nil {
		return err
	}
	c.totalShipments++
	c.totalRevenue = c.totalRevenue.Add(total)
	return nil
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}
