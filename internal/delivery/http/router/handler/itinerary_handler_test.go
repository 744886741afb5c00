package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "tourgenius/internal/delivery/context"
	"tourgenius/internal/domain/entity"
	domainerrors "tourgenius/internal/domain/errors"
	"tourgenius/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockItineraryUsecase struct {
	mock.Mock
}

func (m *mockItineraryUsecase) CreateItinerary(ctx context.Context, input *usecase.CreateItineraryInput) (*entity.Itinerary, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Itinerary), args.Error(1)
}

func (m *mockItineraryUsecase) GetItinerary(ctx context.Context, userID, itineraryID uuid.UUID) (*entity.Itinerary, error) {
	args := m.Called(ctx, userID, itineraryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Itinerary), args.Error(1)
}

func (m *mockItineraryUsecase) ListItineraries(ctx context.Context, userID uuid.UUID) ([]*entity.Itinerary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Itinerary), args.Error(1)
}

func (m *mockItineraryUsecase) UpdateItinerary(ctx context.Context, input *usecase.UpdateItineraryInput) (*entity.Itinerary, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Itinerary), args.Error(1)
}

func (m *mockItineraryUsecase) DeleteItinerary(ctx context.Context, userID, itineraryID uuid.UUID) error {
	args := m.Called(ctx, userID, itineraryID)

	return args.Error(0)
}

func (m *mockItineraryUsecase) GetPricing(ctx context.Context, userID, itineraryID uuid.UUID) (*usecase.PricingOutput, error) {
	args := m.Called(ctx, userID, itineraryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.PricingOutput), args.Error(1)
}

func (m *mockItineraryUsecase) GetSummary(ctx context.Context, userID, itineraryID uuid.UUID) (*usecase.SummaryOutput, error) {
	args := m.Called(ctx, userID, itineraryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.SummaryOutput), args.Error(1)
}

func (m *mockItineraryUsecase) GetCalendarLink(ctx context.Context, userID, itineraryID uuid.UUID) (*usecase.CalendarLinkOutput, error) {
	args := m.Called(ctx, userID, itineraryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.CalendarLinkOutput), args.Error(1)
}

func (m *mockItineraryUsecase) ExportCalendar(ctx context.Context, userID, itineraryID uuid.UUID) ([]byte, error) {
	args := m.Called(ctx, userID, itineraryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]byte), args.Error(1)
}

func (m *mockItineraryUsecase) GenerateShareQR(ctx context.Context, userID, itineraryID uuid.UUID) ([]byte, error) {
	args := m.Called(ctx, userID, itineraryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]byte), args.Error(1)
}

func authedContext(e *echo.Echo, req *http.Request, userID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	deliverycontext.SetUserID(c, userID)

	return c, rec
}

func TestItineraryHandler_Create(t *testing.T) {
	uc := new(mockItineraryUsecase)
	h := NewItineraryHandler(uc, testLogger())
	userID := uuid.New()

	created := &entity.Itinerary{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           "Bali Highlights",
		NumberOfPeople: 2,
		TotalPrice:     1610000,
	}
	uc.On("CreateItinerary", mock.Anything, mock.MatchedBy(func(input *usecase.CreateItineraryInput) bool {
		return input.UserID == userID && input.Name == "Bali Highlights" && input.NumberOfPeople == 2
	})).Return(created, nil)

	c, rec := postJSON(newTestEcho(), "/itineraries",
		`{"name":"Bali Highlights","number_of_people":2}`)
	deliverycontext.SetUserID(c, userID)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Bali Highlights")
	uc.AssertExpectations(t)
}

func TestItineraryHandler_Create_MissingName(t *testing.T) {
	uc := new(mockItineraryUsecase)
	h := NewItineraryHandler(uc, testLogger())

	c, _ := postJSON(newTestEcho(), "/itineraries", `{"number_of_people":2}`)
	deliverycontext.SetUserID(c, uuid.New())

	err := h.Create(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	uc.AssertNotCalled(t, "CreateItinerary", mock.Anything, mock.Anything)
}

func TestItineraryHandler_Get_InvalidID(t *testing.T) {
	uc := new(mockItineraryUsecase)
	h := NewItineraryHandler(uc, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/itineraries/not-a-uuid", nil)
	c, _ := authedContext(newTestEcho(), req, uuid.New())
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := h.Get(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestItineraryHandler_GetSummary(t *testing.T) {
	uc := new(mockItineraryUsecase)
	h := NewItineraryHandler(uc, testLogger())
	userID := uuid.New()
	itineraryID := uuid.New()

	uc.On("GetSummary", mock.Anything, userID, itineraryID).
		Return(&usecase.SummaryOutput{Summary: "Tour: Bali Highlights\n"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/itineraries/"+itineraryID.String()+"/summary", nil)
	c, rec := authedContext(newTestEcho(), req, userID)
	c.SetParamNames("id")
	c.SetParamValues(itineraryID.String())

	require.NoError(t, h.GetSummary(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Tour: Bali Highlights")
}

func TestItineraryHandler_ExportCalendar(t *testing.T) {
	uc := new(mockItineraryUsecase)
	h := NewItineraryHandler(uc, testLogger())
	userID := uuid.New()
	itineraryID := uuid.New()

	uc.On("ExportCalendar", mock.Anything, userID, itineraryID).
		Return([]byte("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"), nil)

	req := httptest.NewRequest(http.MethodGet, "/itineraries/"+itineraryID.String()+"/calendar.ics", nil)
	c, rec := authedContext(newTestEcho(), req, userID)
	c.SetParamNames("id")
	c.SetParamValues(itineraryID.String())

	require.NoError(t, h.ExportCalendar(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/calendar")
	assert.Contains(t, rec.Body.String(), "BEGIN:VCALENDAR")
}

func TestItineraryHandler_Get_NotFound(t *testing.T) {
	uc := new(mockItineraryUsecase)
	h := NewItineraryHandler(uc, testLogger())
	userID := uuid.New()
	itineraryID := uuid.New()

	uc.On("GetItinerary", mock.Anything, userID, itineraryID).
		Return(nil, domainerrors.ErrItineraryNotFound)

	req := httptest.NewRequest(http.MethodGet, "/itineraries/"+itineraryID.String(), nil)
	c, _ := authedContext(newTestEcho(), req, userID)
	c.SetParamNames("id")
	c.SetParamValues(itineraryID.String())

	err := h.Get(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrItineraryNotFound)
}
