package usecase

import (
	"context"

	"tourgenius/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateCustomerInput defines the data required to create a customer record.
type CreateCustomerInput struct {
	UserID  uuid.UUID
	Name    string
	Email   string
	Phone   string
	Address string
}

// UpdateCustomerInput defines the data required to update a customer record.
type UpdateCustomerInput struct {
	ID      uuid.UUID
	UserID  uuid.UUID
	Name    string
	Email   string
	Phone   string
	Address string
}

// CustomerUsecase defines the interface for customer management use cases.
type CustomerUsecase interface {
	// CreateCustomer persists a new customer record.
	CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error)

	// GetCustomer retrieves a single customer owned by the user.
	GetCustomer(ctx context.Context, userID, customerID uuid.UUID) (*entity.Customer, error)

	// ListCustomers retrieves all customers of the user. When query is
	// non-empty, results are filtered by a case-insensitive match on name or
	// email.
	ListCustomers(ctx context.Context, userID uuid.UUID, query string) ([]*entity.Customer, error)

	// UpdateCustomer modifies an existing customer record.
	UpdateCustomer(ctx context.Context, input *UpdateCustomerInput) (*entity.Customer, error)

	// DeleteCustomer removes a customer owned by the user.
	DeleteCustomer(ctx context.Context, userID, customerID uuid.UUID) error
}
