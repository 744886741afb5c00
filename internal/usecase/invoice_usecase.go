package usecase

import (
	"context"

	"tourgenius/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// GenerateInvoiceInput defines the data required to generate an invoice from
// an itinerary. The customer can be referenced by ID, in which case the
// stored name and email are snapshotted onto the invoice, or given inline.
type GenerateInvoiceInput struct {
	UserID        uuid.UUID
	ItineraryID   uuid.UUID
	CustomerID    *uuid.UUID
	CustomerName  string
	CustomerEmail string
}

// InvoiceUsecase defines the interface for invoice management use cases.
type InvoiceUsecase interface {
	// GenerateInvoice builds and persists a draft invoice from the itinerary's
	// current pricing. The invoice is a frozen snapshot: later itinerary edits
	// do not change it.
	GenerateInvoice(ctx context.Context, input *GenerateInvoiceInput) (*entity.Invoice, error)

	// GetInvoice retrieves a single invoice owned by the user.
	GetInvoice(ctx context.Context, userID, invoiceID uuid.UUID) (*entity.Invoice, error)

	// ListInvoices retrieves all invoices issued by the user.
	ListInvoices(ctx context.Context, userID uuid.UUID) ([]*entity.Invoice, error)

	// SendInvoice transitions a draft invoice to sent.
	SendInvoice(ctx context.Context, userID, invoiceID uuid.UUID) (*entity.Invoice, error)

	// MarkInvoicePaid transitions a sent invoice to paid.
	MarkInvoicePaid(ctx context.Context, userID, invoiceID uuid.UUID) (*entity.Invoice, error)
}
