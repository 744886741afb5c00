package impl

import (
	"context"
	"testing"

	"tourgenius/internal/domain/entity"
	domainerrors "tourgenius/internal/domain/errors"
	"tourgenius/internal/domain/repository"
	mockRepo "tourgenius/internal/mocks/repository"
	"tourgenius/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestCustomerService(customerRepo *mockRepo.MockCustomerRepository) usecase.CustomerUsecase {
	return NewCustomerService(CustomerServiceParams{
		CustomerRepo: customerRepo,
		Logger:       discardLogger(),
	})
}

func TestCustomerService_CreateCustomer(t *testing.T) {
	customerRepo := new(mockRepo.MockCustomerRepository)
	service := newTestCustomerService(customerRepo)

	ctx := context.Background()
	userID := uuid.New()

	customerRepo.On("CreateCustomer", ctx, mock.AnythingOfType("*entity.Customer")).Return(nil)

	customer, err := service.CreateCustomer(ctx, &usecase.CreateCustomerInput{
		UserID: userID,
		Name:   "Siti Rahma",
		Email:  "siti@example.com",
		Phone:  "+62 812 0000 0000",
	})
	require.NoError(t, err)
	assert.Equal(t, userID, customer.UserID)
	assert.NotEqual(t, uuid.Nil, customer.ID)
	customerRepo.AssertExpectations(t)
}

func TestCustomerService_CreateCustomer_Duplicate(t *testing.T) {
	customerRepo := new(mockRepo.MockCustomerRepository)
	service := newTestCustomerService(customerRepo)

	ctx := context.Background()
	customerRepo.On("CreateCustomer", ctx, mock.AnythingOfType("*entity.Customer")).Return(repository.ErrDuplicateCustomer)

	_, err := service.CreateCustomer(ctx, &usecase.CreateCustomerInput{
		UserID: uuid.New(),
		Name:   "Siti Rahma",
		Email:  "siti@example.com",
	})
	assert.ErrorIs(t, err, domainerrors.ErrCustomerAlreadyExists)
}

func TestCustomerService_ListCustomers(t *testing.T) {
	customerRepo := new(mockRepo.MockCustomerRepository)
	service := newTestCustomerService(customerRepo)

	ctx := context.Background()
	userID := uuid.New()

	customerRepo.On("FindCustomersByUser", ctx, userID).Return([]*entity.Customer{
		{Name: "Siti Rahma"},
		{Name: "Budi Santoso"},
	}, nil)

	customers, err := service.ListCustomers(ctx, userID, "")
	require.NoError(t, err)
	assert.Len(t, customers, 2)
}

func TestCustomerService_ListCustomers_WithQueryUsesSearch(t *testing.T) {
	customerRepo := new(mockRepo.MockCustomerRepository)
	service := newTestCustomerService(customerRepo)

	ctx := context.Background()
	userID := uuid.New()

	customerRepo.On("SearchCustomers", ctx, userID, "siti").Return([]*entity.Customer{
		{Name: "Siti Rahma"},
	}, nil)

	customers, err := service.ListCustomers(ctx, userID, "  siti  ")
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "Siti Rahma", customers[0].Name)
	customerRepo.AssertExpectations(t)
}

func TestCustomerService_UpdateCustomer_ForeignCustomerHidden(t *testing.T) {
	customerRepo := new(mockRepo.MockCustomerRepository)
	service := newTestCustomerService(customerRepo)

	ctx := context.Background()
	customerID := uuid.New()

	customerRepo.On("FindCustomerByID", ctx, customerID).Return(&entity.Customer{
		ID:     customerID,
		UserID: uuid.New(),
	}, nil)

	_, err := service.UpdateCustomer(ctx, &usecase.UpdateCustomerInput{
		ID:     customerID,
		UserID: uuid.New(),
		Name:   "New Name",
	})
	assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
}

func TestCustomerService_DeleteCustomer(t *testing.T) {
	customerRepo := new(mockRepo.MockCustomerRepository)
	service := newTestCustomerService(customerRepo)

	ctx := context.Background()
	userID := uuid.New()
	customerID := uuid.New()

	customerRepo.On("FindCustomerByID", ctx, customerID).Return(&entity.Customer{ID: customerID, UserID: userID}, nil)
	customerRepo.On("DeleteCustomer", ctx, customerID).Return(nil)

	require.NoError(t, service.DeleteCustomer(ctx, userID, customerID))
	customerRepo.AssertExpectations(t)
}
