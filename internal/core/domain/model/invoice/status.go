package invoice

import (
	"fmt"
	"strings"

	"logistics/internal/pkg/errs"
)

type Status int

const (
	Unknown Status = iota
	Draft
	Sent
	Paid
	Overdue
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Draft:     "Draft",
		Sent:      "Sent",
		Paid:      "Paid",
		Overdue:   "Overdue",
		Cancelled: "Cancelled",
	}
}

// Validate rejects values outside the known statuses.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// PaymentMethod records how a paid invoice was settled.
type PaymentMethod int

const (
	UnknownPaymentMethod PaymentMethod = iota
	BankTransfer
	CreditCard
	Cash
	Check
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		UnknownPaymentMethod: "Unknown",
		BankTransfer:         "BankTransfer",
		CreditCard:           "CreditCard",
		Cash:                 "Cash",
		Check:                "Check",
	}
}

// ParsePaymentMethod accepts "bank_transfer", "BANK_TRANSFER" or "BankTransfer".
// An empty string means BankTransfer.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	if s == "" {
		return BankTransfer, nil
	}
	normalized := strings.ReplaceAll(s, "_", "")
	for m, name := range getPaymentMethodStrings() {
		if m != UnknownPaymentMethod && strings.EqualFold(name, normalized) {
			return m, nil
		}
	}
	return UnknownPaymentMethod, errs.NewValueIsInvalidErrorWithCause("payment method",
		fmt.Errorf("%q is not a valid payment method", s))
}

func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "Unknown"
}
