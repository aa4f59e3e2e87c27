package invoice_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/invoice"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var issued = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func newInvoice(t *testing.T, discount string) *invoice.Invoice {
	t.Helper()
	number, err := invoice.NewNumber(2025, 12)
	require.NoError(t, err)
	inv, err := invoice.NewInvoice(kernel.NewUUID(), number, kernel.NewUUID(), issued, issued.AddDate(0, 0, 30),
		invoice.DefaultTaxRate, money(t, discount), "")
	require.NoError(t, err)
	return inv
}

func addItem(t *testing.T, inv *invoice.Invoice, qty int, price string) {
	t.Helper()
	shipmentID := kernel.NewUUID()
	item, err := invoice.NewItem(kernel.NewUUID(), &shipmentID, "Shipment SHP-2025-00001", qty, money(t, price))
	require.NoError(t, err)
	require.NoError(t, inv.AddItem(item))
}

func TestInvoice_Totals(t *testing.T) {
	inv := newInvoice(t, "10.00")
	addItem(t, inv, 1, "150.00")
	addItem(t, inv, 2, "25.50")

	assert.Equal(t, "INV-2025-00012", inv.Number().String())
	assert.Equal(t, "201.00", inv.Subtotal().String())
	assert.Equal(t, "40.20", inv.TaxAmount().String())
	assert.Equal(t, "231.20", inv.Total().String())
}

func TestNewInvoice_Validation(t *testing.T) {
	number, _ := invoice.NewNumber(2025, 1)

	t.Run("due date before issue date", func(t *testing.T) {
		_, err := invoice.NewInvoice(kernel.NewUUID(), number, kernel.NewUUID(), issued, issued.AddDate(0, 0, -1),
			invoice.DefaultTaxRate, kernel.ZeroMoney(), "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("tax rate above 100", func(t *testing.T) {
		_, err := invoice.NewInvoice(kernel.NewUUID(), number, kernel.NewUUID(), issued, issued,
			decimal.NewFromInt(101), kernel.ZeroMoney(), "")

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("shipment reference is not an invoice number", func(t *testing.T) {
		ref, _ := kernel.NewDocumentNumber("SHP", 2025, 1)

		_, err := invoice.NewInvoice(kernel.NewUUID(), ref, kernel.NewUUID(), issued, issued,
			invoice.DefaultTaxRate, kernel.ZeroMoney(), "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestInvoice_Lifecycle(t *testing.T) {
	t.Run("draft without items cannot be sent", func(t *testing.T) {
		inv := newInvoice(t, "0")

		require.ErrorIs(t, inv.Send(), errs.ErrValueIsRequired)
	})

	t.Run("discount larger than total blocks sending", func(t *testing.T) {
		inv := newInvoice(t, "500")
		addItem(t, inv, 1, "100")

		require.ErrorIs(t, inv.Send(), errs.ErrValueIsInvalid)
		assert.True(t, inv.Total().IsZero())
	})

	t.Run("sent invoice becomes overdue and is paid", func(t *testing.T) {
		inv := newInvoice(t, "0")
		addItem(t, inv, 1, "100")
		require.NoError(t, inv.Send())

		assert.False(t, inv.IsOverdueAt(inv.DueDate()))
		require.ErrorIs(t, inv.MarkOverdue(inv.DueDate()), errs.ErrInvalidState)

		require.NoError(t, inv.MarkOverdue(inv.DueDate().AddDate(0, 0, 1)))
		assert.Equal(t, invoice.Overdue, inv.Status())

		paidAt := inv.DueDate().AddDate(0, 0, 3)
		require.NoError(t, inv.MarkPaid(invoice.UnknownPaymentMethod, paidAt))
		assert.Equal(t, invoice.Paid, inv.Status())
		assert.Equal(t, invoice.BankTransfer, inv.PaymentMethod())
		assert.Equal(t, paidAt, *inv.PaidDate())
	})

	t.Run("draft cannot be paid and sent cannot take items", func(t *testing.T) {
		inv := newInvoice(t, "0")
		require.ErrorIs(t, inv.MarkPaid(invoice.Cash, issued), errs.ErrInvalidState)

		addItem(t, inv, 1, "1")
		require.NoError(t, inv.Send())
		shipmentID := kernel.NewUUID()
		item, _ := invoice.NewItem(kernel.NewUUID(), &shipmentID, "late", 1, money(t, "1"))
		require.ErrorIs(t, inv.AddItem(item), errs.ErrInvalidState)
	})

	t.Run("same shipment cannot be billed twice", func(t *testing.T) {
		inv := newInvoice(t, "0")
		shipmentID := kernel.NewUUID()
		first, _ := invoice.NewItem(kernel.NewUUID(), &shipmentID, "a", 1, money(t, "1"))
		second, _ := invoice.NewItem(kernel.NewUUID(), &shipmentID, "b", 1, money(t, "1"))

		require.NoError(t, inv.AddItem(first))
		require.ErrorIs(t, inv.AddItem(second), errs.ErrValueIsInvalid)
	})
}

func TestParsePaymentMethod(t *testing.T) {
	for in, want := range map[string]invoice.PaymentMethod{
		"":             invoice.BankTransfer,
		"CREDIT_CARD":  invoice.CreditCard,
		"cash":         invoice.Cash,
		"BankTransfer": invoice.BankTransfer,
	} {
		got, err := invoice.ParsePaymentMethod(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := invoice.ParsePaymentMethod("bitcoin")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
