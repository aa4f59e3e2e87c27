package http

import (
	"net/http"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// CreateInvoice handles POST /api/v1/invoices - bills a customer's shipments.
func (s *Server) CreateInvoice(c echo.Context) error {
	var req CreateInvoiceRequest
	if err := bind(c, &req); err != nil {
		return s.writeError(c, err)
	}

	customerID, err := kernel.UUIDFromBytes(req.CustomerID[:])
	if err != nil {
		return s.writeError(c, err)
	}
	shipmentIDs, err := uuids(req.ShipmentIDs)
	if err != nil {
		return s.writeError(c, err)
	}
	issueDate, err := time.Parse(dateLayout, req.IssueDate)
	if err != nil {
		return s.writeError(c, errs.NewValueIsInvalidErrorWithCause("issueDate", err))
	}
	dueDate, err := time.Parse(dateLayout, req.DueDate)
	if err != nil {
		return s.writeError(c, errs.NewValueIsInvalidErrorWithCause("dueDate", err))
	}
	var taxRate *decimal.Decimal
	if req.TaxRate != nil {
		rate, rateErr := decimal.NewFromString(*req.TaxRate)
		if rateErr != nil {
			return s.writeError(c, errs.NewValueIsInvalidErrorWithCause("taxRate", rateErr))
		}
		taxRate = &rate
	}
	discount, err := moneyOrZero(req.Discount)
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewCreateInvoiceCommand(customerID, shipmentIDs, issueDate, dueDate,
		taxRate, discount, req.Notes, actor(c))
	if err != nil {
		return s.writeError(c, err)
	}

	created, err := s.h.CreateInvoice.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusCreated, toInvoice(created))
}

// SendInvoice handles POST /api/v1/invoices/{id}/send.
func (s *Server) SendInvoice(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return s.writeError(c, err)
	}
	cmd, err := commands.NewSendInvoiceCommand(id, actor(c))
	if err != nil {
		return s.writeError(c, err)
	}

	sent, err := s.h.SendInvoice.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, toInvoice(sent))
}

// MarkInvoicePaid handles POST /api/v1/invoices/{id}/pay. The body is optional.
func (s *Server) MarkInvoicePaid(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return s.writeError(c, err)
	}
	var req MarkInvoicePaidRequest
	if err = bind(c, &req); err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewMarkInvoicePaidCommand(id, req.PaymentMethod, actor(c))
	if err != nil {
		return s.writeError(c, err)
	}

	paid, err := s.h.MarkInvoicePaid.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, toInvoice(paid))
}
