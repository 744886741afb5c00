package usecase

import (
	"context"
	"time"

	"tourgenius/internal/domain/entity"
	"tourgenius/internal/domain/pricing"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateItineraryInput defines the data required to create an itinerary.
// Days and TourGuides arrive as complete snapshots; the use case persists
// them as-is after normalization.
type CreateItineraryInput struct {
	UserID         uuid.UUID
	Name           string
	NumberOfPeople int
	StartDate      *time.Time
	Days           []entity.DayPlan
	TourGuides     []entity.TourGuide
}

// UpdateItineraryInput replaces an existing itinerary with a new snapshot.
type UpdateItineraryInput struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	NumberOfPeople int
	StartDate      *time.Time
	Days           []entity.DayPlan
	TourGuides     []entity.TourGuide
}

// --- Output DTOs ---

// PricingOutput is the full monetary breakdown of an itinerary.
type PricingOutput struct {
	Categories pricing.CategoryTotals `json:"categories"`
	Invoice    pricing.InvoiceTotals  `json:"invoice"`
}

// SummaryOutput carries the rendered plain-text summary.
type SummaryOutput struct {
	Summary string `json:"summary"`
}

// CalendarLinkOutput carries the external calendar deep link.
type CalendarLinkOutput struct {
	Link string `json:"link"`
}

// ItineraryUsecase defines the interface for itinerary management use cases.
// All operations are scoped to the requesting user; accessing another user's
// itinerary yields a not-found error rather than leaking its existence.
type ItineraryUsecase interface {
	// CreateItinerary persists a new itinerary and returns it with its
	// computed total price.
	CreateItinerary(ctx context.Context, input *CreateItineraryInput) (*entity.Itinerary, error)

	// GetItinerary retrieves a single itinerary owned by the user.
	GetItinerary(ctx context.Context, userID, itineraryID uuid.UUID) (*entity.Itinerary, error)

	// ListItineraries retrieves all itineraries owned by the user.
	ListItineraries(ctx context.Context, userID uuid.UUID) ([]*entity.Itinerary, error)

	// UpdateItinerary replaces the itinerary snapshot and recomputes its total.
	UpdateItinerary(ctx context.Context, input *UpdateItineraryInput) (*entity.Itinerary, error)

	// DeleteItinerary removes an itinerary owned by the user.
	DeleteItinerary(ctx context.Context, userID, itineraryID uuid.UUID) error

	// GetPricing computes the category and invoice totals for an itinerary.
	GetPricing(ctx context.Context, userID, itineraryID uuid.UUID) (*PricingOutput, error)

	// GetSummary renders the plain-text summary for an itinerary.
	GetSummary(ctx context.Context, userID, itineraryID uuid.UUID) (*SummaryOutput, error)

	// GetCalendarLink builds the external calendar deep link for an itinerary.
	GetCalendarLink(ctx context.Context, userID, itineraryID uuid.UUID) (*CalendarLinkOutput, error)

	// ExportCalendar renders the itinerary as an iCalendar document.
	ExportCalendar(ctx context.Context, userID, itineraryID uuid.UUID) ([]byte, error)

	// GenerateShareQR renders the calendar link as a PNG QR code.
	GenerateShareQR(ctx context.Context, userID, itineraryID uuid.UUID) ([]byte, error)
}
