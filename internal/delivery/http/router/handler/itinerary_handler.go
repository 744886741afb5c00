package handler

import (
	"log/slog"
	"net/http"
	"time"

	deliverycontext "tourgenius/internal/delivery/context"
	"tourgenius/internal/delivery/http/response"
	"tourgenius/internal/domain/entity"
	"tourgenius/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ItineraryHandler holds dependencies for itinerary-related handlers.
type ItineraryHandler struct {
	uc     usecase.ItineraryUsecase
	logger *slog.Logger
}

// NewItineraryHandler is the constructor for ItineraryHandler, injected by Fx.
func NewItineraryHandler(uc usecase.ItineraryUsecase, logger *slog.Logger) *ItineraryHandler {
	return &ItineraryHandler{
		uc:     uc,
		logger: logger,
	}
}

type itineraryRequest struct {
	Name           string             `json:"name" validate:"required"`
	NumberOfPeople int                `json:"number_of_people" validate:"required,min=1"`
	StartDate      *time.Time         `json:"start_date"`
	Days           []entity.DayPlan   `json:"days"`
	TourGuides     []entity.TourGuide `json:"tour_guides"`
}

// Create handles the itinerary creation request.
func (h *ItineraryHandler) Create(c echo.Context) error {
	var req itineraryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid itinerary input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	itinerary, err := h.uc.CreateItinerary(c.Request().Context(), &usecase.CreateItineraryInput{
		UserID:         deliverycontext.GetUserID(c),
		Name:           req.Name,
		NumberOfPeople: req.NumberOfPeople,
		StartDate:      req.StartDate,
		Days:           req.Days,
		TourGuides:     req.TourGuides,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, itinerary)
}

// List returns all itineraries of the authenticated user.
func (h *ItineraryHandler) List(c echo.Context) error {
	itineraries, err := h.uc.ListItineraries(c.Request().Context(), deliverycontext.GetUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, itineraries)
}

// Get returns a single itinerary.
func (h *ItineraryHandler) Get(c echo.Context) error {
	itineraryID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	itinerary, err := h.uc.GetItinerary(c.Request().Context(), deliverycontext.GetUserID(c), itineraryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, itinerary)
}

// Update replaces an itinerary with the submitted snapshot.
func (h *ItineraryHandler) Update(c echo.Context) error {
	itineraryID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req itineraryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid itinerary input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	itinerary, err := h.uc.UpdateItinerary(c.Request().Context(), &usecase.UpdateItineraryInput{
		ID:             itineraryID,
		UserID:         deliverycontext.GetUserID(c),
		Name:           req.Name,
		NumberOfPeople: req.NumberOfPeople,
		StartDate:      req.StartDate,
		Days:           req.Days,
		TourGuides:     req.TourGuides,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, itinerary)
}

// Delete removes an itinerary.
func (h *ItineraryHandler) Delete(c echo.Context) error {
	itineraryID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteItinerary(c.Request().Context(), deliverycontext.GetUserID(c), itineraryID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Itinerary deleted"})
}

// GetPricing returns the category and invoice totals for an itinerary.
func (h *ItineraryHandler) GetPricing(c echo.Context) error {
	itineraryID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	pricing, err := h.uc.GetPricing(c.Request().Context(), deliverycontext.GetUserID(c), itineraryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pricing)
}

// GetSummary returns the plain-text summary of an itinerary.
func (h *ItineraryHandler) GetSummary(c echo.Context) error {
	itineraryID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	summary, err := h.uc.GetSummary(c.Request().Context(), deliverycontext.GetUserID(c), itineraryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary)
}

// GetCalendarLink returns the external calendar deep link for an itinerary.
func (h *ItineraryHandler) GetCalendarLink(c echo.Context) error {
	itineraryID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	link, err := h.uc.GetCalendarLink(c.Request().Context(), deliverycontext.GetUserID(c), itineraryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, link)
}

// ExportCalendar streams the itinerary as an iCalendar document.
func (h *ItineraryHandler) ExportCalendar(c echo.Context) error {
	itineraryID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	data, err := h.uc.ExportCalendar(c.Request().Context(), deliverycontext.GetUserID(c), itineraryID)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="itinerary.ics"`)

	return c.Blob(http.StatusOK, "text/calendar; charset=utf-8", data)
}

// GenerateShareQR streams a PNG QR code encoding the calendar link.
func (h *ItineraryHandler) GenerateShareQR(c echo.Context) error {
	itineraryID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	png, err := h.uc.GenerateShareQR(c.Request().Context(), deliverycontext.GetUserID(c), itineraryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
