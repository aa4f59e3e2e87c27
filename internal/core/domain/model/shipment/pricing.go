package shipment

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// Pricing holds the monetary components of a shipment.
type Pricing struct {
	price        kernel.Money
	extraCharges kernel.Money
	discount     kernel.Money
}

// NewPricing rejects a discount larger than price plus extra charges.
func NewPricing(price, extraCharges, discount kernel.Money) (Pricing, error) {
	if err := errors.Join(price.Validate(), extraCharges.Validate(), discount.Validate()); err != nil {
		return Pricing{}, err
	}
	p := Pricing{price: price, extraCharges: extraCharges, discount: discount}
	if _, err := p.price.Add(p.extraCharges).Sub(p.discount); err != nil {
		return Pricing{}, errs.NewValueIsInvalidErrorWithCause("discount",
			fmt.Errorf("%s exceeds price and extra charges", discount))
	}
	return p, nil
}

func (p Pricing) Price() kernel.Money {
	return p.price
}

func (p Pricing) ExtraCharges() kernel.Money {
	return p.extraCharges
}

func (p Pricing) Discount() kernel.Money {
	return p.discount
}

// Total is price + extra charges - discount.
func (p Pricing) Total() kernel.Money {
	total, err := p.price.Add(p.extraCharges).Sub(p.discount)
	if err != nil {
		return kernel.ZeroMoney()
	}
	return total
}
