package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"tourgenius/config"
	deliverycontext "tourgenius/internal/delivery/context"
	"tourgenius/internal/domain/entity"
	domainerrors "tourgenius/internal/domain/errors"
	"tourgenius/internal/domain/pricing"
	"tourgenius/internal/domain/repository"
	"tourgenius/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// defaultInvoiceDueDays is used when no due period is configured.
const defaultInvoiceDueDays = 14

// invoiceService implements the InvoiceUsecase interface.
type invoiceService struct {
	txManager      repository.TransactionManager
	invoiceRepo    repository.InvoiceRepository
	customerRepo   repository.CustomerRepository
	serviceFeeRate float64
	taxRate        float64
	dueDays        int
	logger         *slog.Logger
}

// InvoiceServiceParams holds dependencies for InvoiceService, injected by Fx.
type InvoiceServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	InvoiceRepo  repository.InvoiceRepository
	CustomerRepo repository.CustomerRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewInvoiceService creates a new invoice service instance.
func NewInvoiceService(params InvoiceServiceParams) usecase.InvoiceUsecase {
	serviceFeeRate := pricing.DefaultServiceFeeRate
	taxRate := pricing.DefaultTaxRate
	if params.Config != nil && params.Config.Pricing != nil {
		serviceFeeRate = params.Config.Pricing.ServiceFeeRate
		taxRate = params.Config.Pricing.TaxRate
	}
	dueDays := defaultInvoiceDueDays
	if params.Config != nil && params.Config.Invoice != nil && params.Config.Invoice.DueDays > 0 {
		dueDays = params.Config.Invoice.DueDays
	}

	return &invoiceService{
		txManager:      params.TxManager,
		invoiceRepo:    params.InvoiceRepo,
		customerRepo:   params.CustomerRepo,
		serviceFeeRate: serviceFeeRate,
		taxRate:        taxRate,
		dueDays:        dueDays,
		logger:         params.Logger,
	}
}

func (s *invoiceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// buildInvoiceItems turns the category totals into invoice line items,
// skipping categories without any line item.
func buildInvoiceItems(ct pricing.CategoryTotals) []entity.InvoiceItem {
	categories := []struct {
		description string
		total       pricing.CategoryTotal
	}{
		{"Destinations", ct.Destinations},
		{"Accommodation", ct.Accommodation},
		{"Meals", ct.Meals},
		{"Transportation", ct.Transportation},
		{"Tour Guides", ct.Guides},
	}

	items := make([]entity.InvoiceItem, 0, len(categories))
	for _, category := range categories {
		if category.total.Count == 0 {
			continue
		}
		items = append(items, entity.InvoiceItem{
			Description: category.description,
			Quantity:    category.total.Count,
			UnitPrice:   category.total.Total / float64(category.total.Count),
			Total:       category.total.Total,
		})
	}

	return items
}

// resolveCustomer determines the billed customer's name and email. A stored
// customer takes precedence over inline details.
func (s *invoiceService) resolveCustomer(ctx context.Context, input *usecase.GenerateInvoiceInput) (name, email string, err error) {
	if input.CustomerID == nil {
		return input.CustomerName, input.CustomerEmail, nil
	}

	customer, err := s.customerRepo.FindCustomerByID(ctx, *input.CustomerID)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return "", "", domainerrors.ErrCustomerNotFound.WrapMessage("invoice generation failed")
		}

		return "", "", errors.Wrap(err, "failed to find customer")
	}
	if customer.UserID != input.UserID {
		return "", "", domainerrors.ErrCustomerNotFound.WrapMessage("invoice generation failed")
	}

	return customer.Name, customer.Email, nil
}

// GenerateInvoice builds and persists a draft invoice from the itinerary's current pricing.
func (s *invoiceService) GenerateInvoice(ctx context.Context, input *usecase.GenerateInvoiceInput) (*entity.Invoice, error) {
	s.log(ctx).Info("Generating invoice", slog.Any("itineraryID", input.ItineraryID), slog.Any("userID", input.UserID))

	customerName, customerEmail, err := s.resolveCustomer(ctx, input)
	if err != nil {
		return nil, err
	}

	var invoice *entity.Invoice

	// Numbering and creation happen in one transaction so two concurrent
	// generations cannot claim the same invoice number.
	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		itineraryRepo := repoFactory.NewItineraryRepository()
		invoiceRepo := repoFactory.NewInvoiceRepository()

		itinerary, err := itineraryRepo.FindItineraryByID(ctx, input.ItineraryID)
		if err != nil {
			if errors.Is(err, repository.ErrItineraryNotFound) {
				return domainerrors.ErrItineraryNotFound.WrapMessage("invoice generation failed")
			}

			return errors.Wrap(err, "failed to find itinerary")
		}
		if itinerary.UserID != input.UserID {
			return domainerrors.ErrItineraryNotFound.WrapMessage("invoice generation failed")
		}

		categories := pricing.ComputeCategoryTotals(itinerary)
		totals, err := pricing.ComputeInvoiceTotals(categories, s.serviceFeeRate, s.taxRate, itinerary.NumberOfPeople)
		if err != nil {
			return domainerrors.ErrInvalidPeopleCount.WrapMessage("invoice generation failed")
		}

		now := time.Now()
		year := now.Year()
		issued, err := invoiceRepo.CountInvoicesByUserAndYear(ctx, input.UserID, year)
		if err != nil {
			return errors.Wrap(err, "failed to count invoices for numbering")
		}

		invoice = &entity.Invoice{
			ID:            uuid.New(),
			UserID:        input.UserID,
			ItineraryID:   itinerary.ID,
			Number:        fmt.Sprintf("INV-%d-%04d", year, issued+1),
			CustomerName:  customerName,
			CustomerEmail: customerEmail,
			Date:          now,
			DueDate:       now.AddDate(0, 0, s.dueDays),
			Items:         buildInvoiceItems(categories),
			Subtotal:      totals.Subtotal,
			ServiceFee:    totals.ServiceFee,
			Tax:           totals.Tax,
			Total:         totals.Total,
			Status:        entity.InvoiceStatusDraft,
			CreatedAt:     now,
			UpdatedAt:     now,
		}

		return errors.WithStack(invoiceRepo.CreateInvoice(ctx, invoice))
	})

	if err != nil {
		s.log(ctx).Error("Failed to execute invoice generation transaction", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute invoice generation transaction")
	}
	s.log(ctx).Debug("Invoice generated", slog.String("number", invoice.Number))

	return invoice, nil
}

// findOwnedInvoice loads the invoice and verifies ownership.
func (s *invoiceService) findOwnedInvoice(ctx context.Context, userID, invoiceID uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		if errors.Is(err, repository.ErrInvoiceNotFound) {
			return nil, domainerrors.ErrInvoiceNotFound.WrapMessage("invoice lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find invoice")
	}
	if invoice.UserID != userID {
		return nil, domainerrors.ErrInvoiceNotFound.WrapMessage("invoice lookup failed")
	}

	return invoice, nil
}

// GetInvoice retrieves a single invoice owned by the user.
func (s *invoiceService) GetInvoice(ctx context.Context, userID, invoiceID uuid.UUID) (*entity.Invoice, error) {
	return s.findOwnedInvoice(ctx, userID, invoiceID)
}

// ListInvoices retrieves all invoices issued by the user.
func (s *invoiceService) ListInvoices(ctx context.Context, userID uuid.UUID) ([]*entity.Invoice, error) {
	invoices, err := s.invoiceRepo.FindInvoicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list invoices")
	}

	return invoices, nil
}

// transitionInvoice moves the invoice from one status to the next.
func (s *invoiceService) transitionInvoice(ctx context.Context, userID, invoiceID uuid.UUID, from, to entity.InvoiceStatus) (*entity.Invoice, error) {
	invoice, err := s.findOwnedInvoice(ctx, userID, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice.Status != from {
		return nil, domainerrors.ErrInvalidInvoiceTransition.WrapMessage(
			fmt.Sprintf("cannot move invoice from %s to %s", invoice.Status, to),
		)
	}

	if err := s.invoiceRepo.UpdateInvoiceStatus(ctx, invoiceID, to); err != nil {
		return nil, errors.Wrap(err, "failed to update invoice status")
	}
	invoice.Status = to
	invoice.UpdatedAt = time.Now()
	s.log(ctx).Info("Invoice status updated", slog.String("number", invoice.Number), slog.Any("status", to))

	return invoice, nil
}

// SendInvoice transitions a draft invoice to sent.
func (s *invoiceService) SendInvoice(ctx context.Context, userID, invoiceID uuid.UUID) (*entity.Invoice, error) {
	return s.transitionInvoice(ctx, userID, invoiceID, entity.InvoiceStatusDraft, entity.InvoiceStatusSent)
}

// MarkInvoicePaid transitions a sent invoice to paid.
func (s *invoiceService) MarkInvoicePaid(ctx context.Context, userID, invoiceID uuid.UUID) (*entity.Invoice, error) {
	return s.transitionInvoice(ctx, userID, invoiceID, entity.InvoiceStatusSent, entity.InvoiceStatusPaid)
}
