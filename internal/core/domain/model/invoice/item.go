package invoice

import (
	"errors"
	"fmt"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// Item is one invoice line. Its total is quantity × unit price.
type Item struct {
	id          kernel.UUID
	shipmentID  *kernel.UUID
	description string
	quantity    int
	unitPrice   kernel.Money
}

// NewItem creates a line item. Quantity must be positive and the description non-blank.
func NewItem(id kernel.UUID, shipmentID *kernel.UUID, description string, quantity int, unitPrice kernel.Money) (Item, error) {
	var descErr, qtyErr error
	if strings.TrimSpace(description) == "" {
		descErr = errs.NewValueIsRequiredError("description")
	}
	if quantity <= 0 {
		qtyErr = errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if err := errors.Join(id.Validate(), descErr, qtyErr, unitPrice.Validate()); err != nil {
		return Item{}, err
	}
	return Item{
		id:          id,
		shipmentID:  shipmentID,
		description: strings.TrimSpace(description),
		quantity:    quantity,
		unitPrice:   unitPrice,
	}, nil
}

func (i Item) ID() kernel.UUID          { return i.id }
func (i Item) ShipmentID() *kernel.UUID { return i.shipmentID }
func (i Item) Description() string      { return i.description }
func (i Item) Quantity() int            { return i.quantity }
func (i Item) UnitPrice() kernel.Money  { return i.unitPrice }

func (i Item) Total() kernel.Money {
	return i.unitPrice.MulInt(int64(i.quantity))
}
