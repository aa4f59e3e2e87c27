package shipment

import (
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// Address is a free-text location with optional coordinates.
type Address struct {
	text  string
	point *kernel.GeoPoint
}

// NewAddress requires non-blank text. The point is optional; shipments
// without one cannot be routed.
func NewAddress(text string, point *kernel.GeoPoint) (Address, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Address{}, errs.NewValueIsRequiredError("address")
	}
	if point != nil {
		if err := point.Validate(); err != nil {
			return Address{}, err
		}
	}
	return Address{text: text, point: point}, nil
}

func (a Address) Text() string {
	return a.text
}

// Point returns nil when the address was never geocoded.
func (a Address) Point() *kernel.GeoPoint {
	return a.point
}

// Validate reports a blank address.
func (a Address) Validate() error {
	if a.text == "" {
		return errs.NewValueIsRequiredError("address")
	}
	return nil
}
