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

// itineraryRepository implements the repository.ItineraryRepository interface.
type itineraryRepository struct {
	db *gorm.DB
}

// NewItineraryRepository is the constructor for itineraryRepository.
func NewItineraryRepository(db *gorm.DB) repository.ItineraryRepository {
	return &itineraryRepository{
		db: db,
	}
}

func fromItineraryDomain(itinerary *entity.Itinerary) (*model.ItineraryModel, error) {
	days, err := encodeJSONColumn(itinerary.Days)
	if err != nil {
		return nil, err
	}
	guides, err := encodeJSONColumn(itinerary.TourGuides)
	if err != nil {
		return nil, err
	}

	return &model.ItineraryModel{
		ID:             itinerary.ID,
		UserID:         itinerary.UserID,
		Name:           itinerary.Name,
		NumberOfPeople: itinerary.NumberOfPeople,
		StartDate:      itinerary.StartDate,
		Days:           days,
		TourGuides:     guides,
		TotalPrice:     itinerary.TotalPrice,
		CreatedAt:      itinerary.CreatedAt,
		UpdatedAt:      itinerary.UpdatedAt,
	}, nil
}

func toItineraryDomain(itineraryM *model.ItineraryModel) (*entity.Itinerary, error) {
	var days []entity.DayPlan
	if err := decodeJSONColumn(itineraryM.Days, &days); err != nil {
		return nil, err
	}
	var guides []entity.TourGuide
	if err := decodeJSONColumn(itineraryM.TourGuides, &guides); err != nil {
		return nil, err
	}

	return &entity.Itinerary{
		ID:             itineraryM.ID,
		UserID:         itineraryM.UserID,
		Name:           itineraryM.Name,
		NumberOfPeople: itineraryM.NumberOfPeople,
		StartDate:      itineraryM.StartDate,
		Days:           days,
		TourGuides:     guides,
		TotalPrice:     itineraryM.TotalPrice,
		CreatedAt:      itineraryM.CreatedAt,
		UpdatedAt:      itineraryM.UpdatedAt,
	}, nil
}

// CreateItinerary persists a new itinerary.
func (repo *itineraryRepository) CreateItinerary(ctx context.Context, itinerary *entity.Itinerary) error {
	itineraryM, err := fromItineraryDomain(itinerary)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(itineraryM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required itinerary information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create itinerary")
	}

	itinerary.ID = itineraryM.ID
	itinerary.CreatedAt = itineraryM.CreatedAt
	itinerary.UpdatedAt = itineraryM.UpdatedAt

	return nil
}

// FindItineraryByID retrieves an itinerary by its unique ID.
func (repo *itineraryRepository) FindItineraryByID(ctx context.Context, id uuid.UUID) (*entity.Itinerary, error) {
	var itineraryM model.ItineraryModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&itineraryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrItineraryNotFound
		}

		return nil, errors.Wrap(err, "failed to find itinerary by ID")
	}

	return toItineraryDomain(&itineraryM)
}

// FindItinerariesByUser retrieves all itineraries owned by a specific user.
func (repo *itineraryRepository) FindItinerariesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Itinerary, error) {
	var itineraryModels []*model.ItineraryModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&itineraryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find itineraries by user")
	}

	itineraries := make([]*entity.Itinerary, 0, len(itineraryModels))
	for _, itineraryM := range itineraryModels {
		itinerary, err := toItineraryDomain(itineraryM)
		if err != nil {
			return nil, err
		}
		itineraries = append(itineraries, itinerary)
	}

	return itineraries, nil
}

// UpdateItinerary replaces the stored itinerary with the given snapshot.
func (repo *itineraryRepository) UpdateItinerary(ctx context.Context, itinerary *entity.Itinerary) error {
	itineraryM, err := fromItineraryDomain(itinerary)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ItineraryModel{}).
		Where("id = ?", itinerary.ID).
		Updates(map[string]any{
			"name":             itineraryM.Name,
			"number_of_people": itineraryM.NumberOfPeople,
			"start_date":       itineraryM.StartDate,
			"days":             itineraryM.Days,
			"tour_guides":      itineraryM.TourGuides,
			"total_price":      itineraryM.TotalPrice,
			"updated_at":       itineraryM.UpdatedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update itinerary")
	}
	if result.RowsAffected == 0 {
		return repository.ErrItineraryNotFound
	}

	return nil
}

// DeleteItinerary removes an itinerary by its ID (soft delete).
func (repo *itineraryRepository) DeleteItinerary(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ItineraryModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete itinerary")
	}
	if result.RowsAffected == 0 {
		return repository.ErrItineraryNotFound
	}

	return nil
}
