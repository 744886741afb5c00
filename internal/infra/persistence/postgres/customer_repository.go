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

// customerRepository implements the repository.CustomerRepository interface.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{
		db: db,
	}
}

func fromCustomerDomain(customer *entity.Customer) *model.CustomerModel {
	return &model.CustomerModel{
		ID:        customer.ID,
		UserID:    customer.UserID,
		Name:      customer.Name,
		Email:     customer.Email,
		Phone:     customer.Phone,
		Address:   customer.Address,
		CreatedAt: customer.CreatedAt,
		UpdatedAt: customer.UpdatedAt,
	}
}

func toCustomerDomain(customerM *model.CustomerModel) *entity.Customer {
	return &entity.Customer{
		ID:        customerM.ID,
		UserID:    customerM.UserID,
		Name:      customerM.Name,
		Email:     customerM.Email,
		Phone:     customerM.Phone,
		Address:   customerM.Address,
		CreatedAt: customerM.CreatedAt,
		UpdatedAt: customerM.UpdatedAt,
	}
}

// CreateCustomer persists a new customer record.
func (repo *customerRepository) CreateCustomer(ctx context.Context, customer *entity.Customer) error {
	customerM := fromCustomerDomain(customer)

	if err := repo.db.WithContext(ctx).Create(customerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCustomer
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required customer information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create customer")
	}

	customer.ID = customerM.ID
	customer.CreatedAt = customerM.CreatedAt
	customer.UpdatedAt = customerM.UpdatedAt

	return nil
}

// FindCustomerByID retrieves a customer by its unique ID.
func (repo *customerRepository) FindCustomerByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var customerM model.CustomerModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&customerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by ID")
	}

	return toCustomerDomain(&customerM), nil
}

// FindCustomersByUser retrieves all customers belonging to a specific user.
func (repo *customerRepository) FindCustomersByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Customer, error) {
	var customerModels []*model.CustomerModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&customerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find customers by user")
	}

	customers := make([]*entity.Customer, 0, len(customerModels))
	for _, customerM := range customerModels {
		customers = append(customers, toCustomerDomain(customerM))
	}

	return customers, nil
}

// SearchCustomers retrieves customers of a user whose name or email matches
// the query, case-insensitively.
func (repo *customerRepository) SearchCustomers(ctx context.Context, userID uuid.UUID, query string) ([]*entity.Customer, error) {
	var customerModels []*model.CustomerModel

	pattern := "%" + query + "%"
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("name ILIKE ? OR email ILIKE ?", pattern, pattern).
		Order("name ASC").
		Find(&customerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search customers")
	}

	customers := make([]*entity.Customer, 0, len(customerModels))
	for _, customerM := range customerModels {
		customers = append(customers, toCustomerDomain(customerM))
	}

	return customers, nil
}

// UpdateCustomer modifies an existing customer record.
func (repo *customerRepository) UpdateCustomer(ctx context.Context, customer *entity.Customer) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("id = ?", customer.ID).
		Updates(map[string]any{
			"name":    customer.Name,
			"email":   customer.Email,
			"phone":   customer.Phone,
			"address": customer.Address,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateCustomer
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update customer")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

// DeleteCustomer removes a customer by its ID (soft delete).
func (repo *customerRepository) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CustomerModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete customer")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}
