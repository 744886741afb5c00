package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "tourgenius/internal/delivery/context"
	"tourgenius/internal/domain/entity"
	domainerrors "tourgenius/internal/domain/errors"
	"tourgenius/internal/domain/repository"
	"tourgenius/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// customerService implements the CustomerUsecase interface.
type customerService struct {
	customerRepo repository.CustomerRepository
	logger       *slog.Logger
}

// CustomerServiceParams holds dependencies for CustomerService, injected by Fx.
type CustomerServiceParams struct {
	fx.In

	CustomerRepo repository.CustomerRepository
	Logger       *slog.Logger
}

// NewCustomerService creates a new customer service instance.
func NewCustomerService(params CustomerServiceParams) usecase.CustomerUsecase {
	return &customerService{
		customerRepo: params.CustomerRepo,
		logger:       params.Logger,
	}
}

func (s *customerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CreateCustomer persists a new customer record.
func (s *customerService) CreateCustomer(ctx context.Context, input *usecase.CreateCustomerInput) (*entity.Customer, error) {
	s.log(ctx).Info("Creating customer", slog.String("name", input.Name), slog.Any("userID", input.UserID))

	customer := &entity.Customer{
		ID:        uuid.New(),
		UserID:    input.UserID,
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Address:   input.Address,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.customerRepo.CreateCustomer(ctx, customer); err != nil {
		if errors.Is(err, repository.ErrDuplicateCustomer) {
			return nil, domainerrors.ErrCustomerAlreadyExists.WrapMessage("customer creation failed")
		}

		return nil, errors.Wrap(err, "failed to create customer")
	}

	return customer, nil
}

// findOwnedCustomer loads the customer and verifies ownership.
func (s *customerService) findOwnedCustomer(ctx context.Context, userID, customerID uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound.WrapMessage("customer lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find customer")
	}
	if customer.UserID != userID {
		return nil, domainerrors.ErrCustomerNotFound.WrapMessage("customer lookup failed")
	}

	return customer, nil
}

// GetCustomer retrieves a single customer owned by the user.
func (s *customerService) GetCustomer(ctx context.Context, userID, customerID uuid.UUID) (*entity.Customer, error) {
	return s.findOwnedCustomer(ctx, userID, customerID)
}

// ListCustomers retrieves the user's customers, optionally filtered by a
// case-insensitive name or email match.
func (s *customerService) ListCustomers(ctx context.Context, userID uuid.UUID, query string) ([]*entity.Customer, error) {
	query = strings.TrimSpace(query)

	var customers []*entity.Customer
	var err error
	if query == "" {
		customers, err = s.customerRepo.FindCustomersByUser(ctx, userID)
	} else {
		customers, err = s.customerRepo.SearchCustomers(ctx, userID, query)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	return customers, nil
}

// UpdateCustomer modifies an existing customer record.
func (s *customerService) UpdateCustomer(ctx context.Context, input *usecase.UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.findOwnedCustomer(ctx, input.UserID, input.ID)
	if err != nil {
		return nil, err
	}

	customer.Name = input.Name
	customer.Email = input.Email
	customer.Phone = input.Phone
	customer.Address = input.Address
	customer.UpdatedAt = time.Now()

	if err := s.customerRepo.UpdateCustomer(ctx, customer); err != nil {
		return nil, errors.Wrap(err, "failed to update customer")
	}

	return customer, nil
}

// DeleteCustomer removes a customer owned by the user.
func (s *customerService) DeleteCustomer(ctx context.Context, userID, customerID uuid.UUID) error {
	if _, err := s.findOwnedCustomer(ctx, userID, customerID); err != nil {
		return err
	}

	if err := s.customerRepo.DeleteCustomer(ctx, customerID); err != nil {
		return errors.Wrap(err, "failed to delete customer")
	}
	s.log(ctx).Info("Customer deleted", slog.Any("customerID", customerID))

	return nil
}
