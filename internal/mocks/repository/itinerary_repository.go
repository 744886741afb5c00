package repository

import (
	"context"

	"tourgenius/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockItineraryRepository is a mock implementation of repository.ItineraryRepository.
type MockItineraryRepository struct {
	mock.Mock
}

func (m *MockItineraryRepository) CreateItinerary(ctx context.Context, itinerary *entity.Itinerary) error {
	return m.Called(ctx, itinerary).Error(0)
}

func (m *MockItineraryRepository) FindItineraryByID(ctx context.Context, id uuid.UUID) (*entity.Itinerary, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Itinerary), args.Error(1)
}

func (m *MockItineraryRepository) FindItinerariesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Itinerary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Itinerary), args.Error(1)
}

func (m *MockItineraryRepository) UpdateItinerary(ctx context.Context, itinerary *entity.Itinerary) error {
	return m.Called(ctx, itinerary).Error(0)
}

func (m *MockItineraryRepository) DeleteItinerary(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}
