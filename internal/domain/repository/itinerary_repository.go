package repository

import (
	"context"

	"tourgenius/internal/domain/entity"
	"tourgenius/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for itinerary persistence.
var (
	// ErrItineraryNotFound is returned when an itinerary is not found.
	ErrItineraryNotFound = errors.New("itinerary not found")
)

// ItineraryRepository defines the interface for itinerary-related database operations.
// Day plans and the guide roster travel with the itinerary as a single document;
// there are no per-day or per-guide rows to query independently.
type ItineraryRepository interface {
	// CreateItinerary persists a new itinerary.
	CreateItinerary(ctx context.Context, itinerary *entity.Itinerary) error

	// FindItineraryByID retrieves an itinerary by its unique ID.
	FindItineraryByID(ctx context.Context, id uuid.UUID) (*entity.Itinerary, error)

	// FindItinerariesByUser retrieves all itineraries owned by a specific user,
	// most recently updated first.
	FindItinerariesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Itinerary, error)

	// UpdateItinerary replaces the stored itinerary with the given snapshot.
	UpdateItinerary(ctx context.Context, itinerary *entity.Itinerary) error

	// DeleteItinerary removes an itinerary by its ID (soft delete).
	DeleteItinerary(ctx context.Context, id uuid.UUID) error
}
