package repository

import (
	"context"

	"tourgenius/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockCustomerRepository is a mock implementation of repository.CustomerRepository.
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) CreateCustomer(ctx context.Context, customer *entity.Customer) error {
	return m.Called(ctx, customer).Error(0)
}

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindCustomersByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Customer, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Customer), args.Error(1)
}

func (m *MockCustomerRepository) SearchCustomers(ctx context.Context, userID uuid.UUID, query string) ([]*entity.Customer, error) {
	args := m.Called(ctx, userID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Customer), args.Error(1)
}

func (m *MockCustomerRepository) UpdateCustomer(ctx context.Context, customer *entity.Customer) error {
	return m.Called(ctx, customer).Error(0)
}

func (m *MockCustomerRepository) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}
