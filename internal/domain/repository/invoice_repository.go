package repository

import (
	"context"

	"tourgenius/internal/domain/entity"
	"tourgenius/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for invoice persistence.
var (
	// ErrInvoiceNotFound is returned when an invoice is not found.
	ErrInvoiceNotFound = errors.New("invoice not found")
)

// InvoiceRepository defines the interface for invoice-related database operations.
type InvoiceRepository interface {
	// CreateInvoice persists a new invoice.
	CreateInvoice(ctx context.Context, invoice *entity.Invoice) error

	// FindInvoiceByID retrieves an invoice by its unique ID.
	FindInvoiceByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)

	// FindInvoicesByUser retrieves all invoices issued by a specific user,
	// newest first.
	FindInvoicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Invoice, error)

	// CountInvoicesByUserAndYear returns how many invoices the user has issued
	// in the given year. Used to derive the next invoice number suffix.
	CountInvoicesByUserAndYear(ctx context.Context, userID uuid.UUID, year int) (int, error)

	// UpdateInvoiceStatus updates the lifecycle status of an invoice.
	UpdateInvoiceStatus(ctx context.Context, id uuid.UUID, status entity.InvoiceStatus) error
}
