package repository

import (
	"context"

	"tourgenius/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockInvoiceRepository is a mock implementation of repository.InvoiceRepository.
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) CreateInvoice(ctx context.Context, invoice *entity.Invoice) error {
	return m.Called(ctx, invoice).Error(0)
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindInvoicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Invoice, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) CountInvoicesByUserAndYear(ctx context.Context, userID uuid.UUID, year int) (int, error) {
	args := m.Called(ctx, userID, year)

	return args.Int(0), args.Error(1)
}

func (m *MockInvoiceRepository) UpdateInvoiceStatus(ctx context.Context, id uuid.UUID, status entity.InvoiceStatus) error {
	return m.Called(ctx, id, status).Error(0)
}
