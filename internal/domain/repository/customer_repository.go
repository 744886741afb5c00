package repository

import (
	"context"

	"tourgenius/internal/domain/entity"
	"tourgenius/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for customer persistence.
var (
	// ErrCustomerNotFound is returned when a customer is not found.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrDuplicateCustomer is returned when a customer with the same email already exists for the user.
	ErrDuplicateCustomer = errors.New("customer already exists")
)

// CustomerRepository defines the interface for customer-related database operations.
type CustomerRepository interface {
	// CreateCustomer persists a new customer record.
	CreateCustomer(ctx context.Context, customer *entity.Customer) error

	// FindCustomerByID retrieves a customer by its unique ID.
	FindCustomerByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// FindCustomersByUser retrieves all customers belonging to a specific user.
	FindCustomersByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Customer, error)

	// SearchCustomers retrieves customers of a user whose name or email matches
	// the query, case-insensitively.
	SearchCustomers(ctx context.Context, userID uuid.UUID, query string) ([]*entity.Customer, error)

	// UpdateCustomer modifies an existing customer record.
	UpdateCustomer(ctx context.Context, customer *entity.Customer) error

	// DeleteCustomer removes a customer by its ID (soft delete).
	DeleteCustomer(ctx context.Context, id uuid.UUID) error
}
