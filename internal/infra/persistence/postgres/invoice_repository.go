package postgres

import (
	"context"

	"tourgenius/internal/domain/entity"
	domainerrors "tourgenius/internal/domain/errors"
	"tourgenius/internal/domain/repository"
	"tourgenius/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// invoiceRepository implements the repository.InvoiceRepository interface.
type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository is the constructor for invoiceRepository.
func NewInvoiceRepository(db *gorm.DB) repository.InvoiceRepository {
	return &invoiceRepository{
		db: db,
	}
}

func fromInvoiceDomain(invoice *entity.Invoice) (*model.InvoiceModel, error) {
	items, err := encodeJSONColumn(invoice.Items)
	if err != nil {
		return nil, err
	}

	return &model.InvoiceModel{
		ID:            invoice.ID,
		UserID:        invoice.UserID,
		ItineraryID:   invoice.ItineraryID,
		Number:        invoice.Number,
		CustomerName:  invoice.CustomerName,
		CustomerEmail: invoice.CustomerEmail,
		Date:          invoice.Date,
		DueDate:       invoice.DueDate,
		Items:         items,
		Subtotal:      invoice.Subtotal,
		ServiceFee:    invoice.ServiceFee,
		Tax:           invoice.Tax,
		Total:         invoice.Total,
		Status:        string(invoice.Status),
		CreatedAt:     invoice.CreatedAt,
		UpdatedAt:     invoice.UpdatedAt,
	}, nil
}

func toInvoiceDomain(invoiceM *model.InvoiceModel) (*entity.Invoice, error) {
	var items []entity.InvoiceItem
	if err := decodeJSONColumn(invoiceM.Items, &items); err != nil {
		return nil, err
	}

	return &entity.Invoice{
		ID:            invoiceM.ID,
		UserID:        invoiceM.UserID,
		ItineraryID:   invoiceM.ItineraryID,
		Number:        invoiceM.Number,
		CustomerName:  invoiceM.CustomerName,
		CustomerEmail: invoiceM.CustomerEmail,
		Date:          invoiceM.Date,
		DueDate:       invoiceM.DueDate,
		Items:         items,
		Subtotal:      invoiceM.Subtotal,
		ServiceFee:    invoiceM.ServiceFee,
		Tax:           invoiceM.Tax,
		Total:         invoiceM.Total,
		Status:        entity.InvoiceStatus(invoiceM.Status),
		CreatedAt:     invoiceM.CreatedAt,
		UpdatedAt:     invoiceM.UpdatedAt,
	}, nil
}

// CreateInvoice persists a new invoice.
func (repo *invoiceRepository) CreateInvoice(ctx context.Context, invoice *entity.Invoice) error {
	invoiceM, err := fromInvoiceDomain(invoice)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(invoiceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("invoice number already taken")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create invoice")
	}

	invoice.ID = invoiceM.ID
	invoice.CreatedAt = invoiceM.CreatedAt
	invoice.UpdatedAt = invoiceM.UpdatedAt

	return nil
}

// FindInvoiceByID retrieves an invoice by its unique ID.
func (repo *invoiceRepository) FindInvoiceByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	var invoiceM model.InvoiceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&invoiceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInvoiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find invoice by ID")
	}

	return toInvoiceDomain(&invoiceM)
}

// FindInvoicesByUser retrieves all invoices issued by a specific user, newest first.
func (repo *invoiceRepository) FindInvoicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Invoice, error) {
	var invoiceModels []*model.InvoiceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, number DESC").
		Find(&invoiceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find invoices by user")
	}

	invoices := make([]*entity.Invoice, 0, len(invoiceModels))
	for _, invoiceM := range invoiceModels {
		invoice, err := toInvoiceDomain(invoiceM)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, invoice)
	}

	return invoices, nil
}

// CountInvoicesByUserAndYear returns how many invoices the user has issued in the given year.
func (repo *invoiceRepository) CountInvoicesByUserAndYear(ctx context.Context, userID uuid.UUID, year int) (int, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.InvoiceModel{}).
		Where("user_id = ?", userID).
		Where("EXTRACT(YEAR FROM date) = ?", year).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count invoices by user and year")
	}

	return int(count), nil
}

// UpdateInvoiceStatus updates the lifecycle status of an invoice.
func (repo *invoiceRepository) UpdateInvoiceStatus(ctx context.Context, id uuid.UUID, status entity.InvoiceStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.InvoiceModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update invoice status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrInvoiceNotFound
	}

	return nil
}
