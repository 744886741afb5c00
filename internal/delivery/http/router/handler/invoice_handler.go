package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "tourgenius/internal/delivery/context"
	"tourgenius/internal/delivery/http/response"
	"tourgenius/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// InvoiceHandler holds dependencies for invoice-related handlers.
type InvoiceHandler struct {
	uc     usecase.InvoiceUsecase
	logger *slog.Logger
}

// NewInvoiceHandler is the constructor for InvoiceHandler, injected by Fx.
func NewInvoiceHandler(uc usecase.InvoiceUsecase, logger *slog.Logger) *InvoiceHandler {
	return &InvoiceHandler{
		uc:     uc,
		logger: logger,
	}
}

type generateInvoiceRequest struct {
	ItineraryID   uuid.UUID  `json:"itinerary_id" validate:"required"`
	CustomerID    *uuid.UUID `json:"customer_id"`
	CustomerName  string     `json:"customer_name"`
	CustomerEmail string     `json:"customer_email" validate:"omitempty,email"`
}

// Generate builds a draft invoice from an itinerary's current pricing.
func (h *InvoiceHandler) Generate(c echo.Context) error {
	var req generateInvoiceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid invoice input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	invoice, err := h.uc.GenerateInvoice(c.Request().Context(), &usecase.GenerateInvoiceInput{
		UserID:        deliverycontext.GetUserID(c),
		ItineraryID:   req.ItineraryID,
		CustomerID:    req.CustomerID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, invoice)
}

// List returns all invoices issued by the authenticated user.
func (h *InvoiceHandler) List(c echo.Context) error {
	invoices, err := h.uc.ListInvoices(c.Request().Context(), deliverycontext.GetUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, invoices)
}

// Get returns a single invoice.
func (h *InvoiceHandler) Get(c echo.Context) error {
	invoiceID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	invoice, err := h.uc.GetInvoice(c.Request().Context(), deliverycontext.GetUserID(c), invoiceID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, invoice)
}

// Send transitions a draft invoice to sent.
func (h *InvoiceHandler) Send(c echo.Context) error {
	invoiceID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	invoice, err := h.uc.SendInvoice(c.Request().Context(), deliverycontext.GetUserID(c), invoiceID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, invoice)
}

// MarkPaid transitions a sent invoice to paid.
func (h *InvoiceHandler) MarkPaid(c echo.Context) error {
	invoiceID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	invoice, err := h.uc.MarkInvoicePaid(c.Request().Context(), deliverycontext.GetUserID(c), invoiceID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, invoice)
}
