package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"tourgenius/config"
	deliverycontext "tourgenius/internal/delivery/context"
	"tourgenius/internal/domain/entity"
	domainerrors "tourgenius/internal/domain/errors"
	"tourgenius/internal/domain/pricing"
	"tourgenius/internal/domain/repository"
	"tourgenius/internal/domain/service"
	"tourgenius/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// itineraryService implements the ItineraryUsecase interface.
type itineraryService struct {
	itineraryRepo    repository.ItineraryRepository
	qrcodeService    service.QRCodeService
	calendarExporter service.CalendarExporter
	serviceFeeRate   float64
	taxRate          float64
	logger           *slog.Logger
}

// ItineraryServiceParams holds dependencies for ItineraryService, injected by Fx.
type ItineraryServiceParams struct {
	fx.In

	ItineraryRepo    repository.ItineraryRepository
	QRCodeService    service.QRCodeService
	CalendarExporter service.CalendarExporter
	Config           *config.Config
	Logger           *slog.Logger
}

// NewItineraryService creates a new itinerary service instance.
func NewItineraryService(params ItineraryServiceParams) usecase.ItineraryUsecase {
	serviceFeeRate := pricing.DefaultServiceFeeRate
	taxRate := pricing.DefaultTaxRate
	if params.Config != nil && params.Config.Pricing != nil {
		serviceFeeRate = params.Config.Pricing.ServiceFeeRate
		taxRate = params.Config.Pricing.TaxRate
	}

	return &itineraryService{
		itineraryRepo:    params.ItineraryRepo,
		qrcodeService:    params.QRCodeService,
		calendarExporter: params.CalendarExporter,
		serviceFeeRate:   serviceFeeRate,
		taxRate:          taxRate,
		logger:           params.Logger,
	}
}

func (s *itineraryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// normalizeItinerary renumbers days sequentially and rejects negative prices
// and duplicate guide names (unique case-insensitively). The stored day
// numbers always run 1..n regardless of what the client sent.
func normalizeItinerary(it *entity.Itinerary) error {
	if len(it.Days) == 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("itinerary needs at least one day")
	}
	for i := range it.Days {
		it.Days[i].Day = i + 1
	}

	for _, day := range it.Days {
		for _, dest := range day.Destinations {
			if dest.PricePerPerson < 0 {
				return domainerrors.ErrValidationFailed.WrapMessage("destination price must not be negative")
			}
		}
		if day.Hotel != nil && day.Hotel.PricePerNight < 0 {
			return domainerrors.ErrValidationFailed.WrapMessage("hotel price must not be negative")
		}
		for _, meal := range day.Meals {
			if meal.PricePerPerson < 0 {
				return domainerrors.ErrValidationFailed.WrapMessage("meal price must not be negative")
			}
		}
		if day.Transportation != nil && day.Transportation.PricePerPerson < 0 {
			return domainerrors.ErrValidationFailed.WrapMessage("transportation price must not be negative")
		}
	}

	seen := make(map[string]struct{}, len(it.TourGuides))
	for _, guide := range it.TourGuides {
		if guide.PricePerDay < 0 {
			return domainerrors.ErrValidationFailed.WrapMessage("guide price must not be negative")
		}
		key := strings.ToLower(guide.Name)
		if _, ok := seen[key]; ok {
			return domainerrors.ErrDuplicateGuide.WrapMessage("guide " + guide.Name + " listed twice")
		}
		seen[key] = struct{}{}
	}

	return nil
}

// CreateItinerary persists a new itinerary and returns it with its computed total price.
func (s *itineraryService) CreateItinerary(ctx context.Context, input *usecase.CreateItineraryInput) (*entity.Itinerary, error) {
	s.log(ctx).Info("Creating itinerary", slog.String("name", input.Name), slog.Any("userID", input.UserID))

	if input.NumberOfPeople < 1 {
		return nil, domainerrors.ErrInvalidPeopleCount.WrapMessage("itinerary creation failed")
	}

	itinerary := &entity.Itinerary{
		ID:             uuid.New(),
		UserID:         input.UserID,
		Name:           input.Name,
		NumberOfPeople: input.NumberOfPeople,
		StartDate:      input.StartDate,
		Days:           input.Days,
		TourGuides:     input.TourGuides,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	if err := normalizeItinerary(itinerary); err != nil {
		return nil, err
	}
	itinerary.TotalPrice = pricing.GrandTotal(pricing.ComputeCategoryTotals(itinerary), s.serviceFeeRate, s.taxRate)

	if err := s.itineraryRepo.CreateItinerary(ctx, itinerary); err != nil {
		return nil, errors.Wrap(err, "failed to create itinerary")
	}

	return itinerary, nil
}

// findOwnedItinerary loads the itinerary and verifies ownership. A foreign
// itinerary is reported as not found so its existence is not leaked.
func (s *itineraryService) findOwnedItinerary(ctx context.Context, userID, itineraryID uuid.UUID) (*entity.Itinerary, error) {
	itinerary, err := s.itineraryRepo.FindItineraryByID(ctx, itineraryID)
	if err != nil {
		if errors.Is(err, repository.ErrItineraryNotFound) {
			return nil, domainerrors.ErrItineraryNotFound.WrapMessage("itinerary lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find itinerary")
	}
	if itinerary.UserID != userID {
		return nil, domainerrors.ErrItineraryNotFound.WrapMessage("itinerary lookup failed")
	}

	return itinerary, nil
}

// GetItinerary retrieves a single itinerary owned by the user.
func (s *itineraryService) GetItinerary(ctx context.Context, userID, itineraryID uuid.UUID) (*entity.Itinerary, error) {
	return s.findOwnedItinerary(ctx, userID, itineraryID)
}

// ListItineraries retrieves all itineraries owned by the user.
func (s *itineraryService) ListItineraries(ctx context.Context, userID uuid.UUID) ([]*entity.Itinerary, error) {
	itineraries, err := s.itineraryRepo.FindItinerariesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list itineraries")
	}

	return itineraries, nil
}

// UpdateItinerary replaces the itinerary snapshot and recomputes its total.
func (s *itineraryService) UpdateItinerary(ctx context.Context, input *usecase.UpdateItineraryInput) (*entity.Itinerary, error) {
	s.log(ctx).Info("Updating itinerary", slog.Any("itineraryID", input.ID), slog.Any("userID", input.UserID))

	if input.NumberOfPeople < 1 {
		return nil, domainerrors.ErrInvalidPeopleCount.WrapMessage("itinerary update failed")
	}

	existing, err := s.findOwnedItinerary(ctx, input.UserID, input.ID)
	if err != nil {
		return nil, err
	}

	existing.Name = input.Name
	existing.NumberOfPeople = input.NumberOfPeople
	existing.StartDate = input.StartDate
	existing.Days = input.Days
	existing.TourGuides = input.TourGuides
	existing.UpdatedAt = time.Now()
	if err := normalizeItinerary(existing); err != nil {
		return nil, err
	}
	existing.TotalPrice = pricing.GrandTotal(pricing.ComputeCategoryTotals(existing), s.serviceFeeRate, s.taxRate)

	if err := s.itineraryRepo.UpdateItinerary(ctx, existing); err != nil {
		return nil, errors.Wrap(err, "failed to update itinerary")
	}

	return existing, nil
}

// DeleteItinerary removes an itinerary owned by the user.
func (s *itineraryService) DeleteItinerary(ctx context.Context, userID, itineraryID uuid.UUID) error {
	if _, err := s.findOwnedItinerary(ctx, userID, itineraryID); err != nil {
		return err
	}

	if err := s.itineraryRepo.DeleteItinerary(ctx, itineraryID); err != nil {
		return errors.Wrap(err, "failed to delete itinerary")
	}
	s.log(ctx).Info("Itinerary deleted", slog.Any("itineraryID", itineraryID))

	return nil
}

// GetPricing computes the category and invoice totals for an itinerary.
func (s *itineraryService) GetPricing(ctx context.Context, userID, itineraryID uuid.UUID) (*usecase.PricingOutput, error) {
	itinerary, err := s.findOwnedItinerary(ctx, userID, itineraryID)
	if err != nil {
		return nil, err
	}

	categories := pricing.ComputeCategoryTotals(itinerary)
	invoice, err := pricing.ComputeInvoiceTotals(categories, s.serviceFeeRate, s.taxRate, itinerary.NumberOfPeople)
	if err != nil {
		return nil, domainerrors.ErrInvalidPeopleCount.WrapMessage("pricing failed")
	}

	return &usecase.PricingOutput{
		Categories: categories,
		Invoice:    invoice,
	}, nil
}

// GetSummary renders the plain-text summary for an itinerary.
func (s *itineraryService) GetSummary(ctx context.Context, userID, itineraryID uuid.UUID) (*usecase.SummaryOutput, error) {
	itinerary, err := s.findOwnedItinerary(ctx, userID, itineraryID)
	if err != nil {
		return nil, err
	}

	return &usecase.SummaryOutput{Summary: pricing.BuildSummary(itinerary)}, nil
}

// GetCalendarLink builds the external calendar deep link for an itinerary.
func (s *itineraryService) GetCalendarLink(ctx context.Context, userID, itineraryID uuid.UUID) (*usecase.CalendarLinkOutput, error) {
	itinerary, err := s.findOwnedItinerary(ctx, userID, itineraryID)
	if err != nil {
		return nil, err
	}

	return &usecase.CalendarLinkOutput{Link: pricing.BuildGoogleCalendarLink(itinerary)}, nil
}

// ExportCalendar renders the itinerary as an iCalendar document.
func (s *itineraryService) ExportCalendar(ctx context.Context, userID, itineraryID uuid.UUID) ([]byte, error) {
	itinerary, err := s.findOwnedItinerary(ctx, userID, itineraryID)
	if err != nil {
		return nil, err
	}

	data, err := s.calendarExporter.ExportICS(itinerary)
	if err != nil {
		return nil, errors.Wrap(err, "failed to export itinerary calendar")
	}

	return data, nil
}

// GenerateShareQR renders the calendar link as a PNG QR code.
func (s *itineraryService) GenerateShareQR(ctx context.Context, userID, itineraryID uuid.UUID) ([]byte, error) {
	itinerary, err := s.findOwnedItinerary(ctx, userID, itineraryID)
	if err != nil {
		return nil, err
	}

	png, err := s.qrcodeService.GenerateLinkQR(pricing.BuildGoogleCalendarLink(itinerary))
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate share QR code")
	}

	return png, nil
}
