package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tourgenius/internal/delivery/http/validator"
	"tourgenius/internal/domain/entity"
	domainerrors "tourgenius/internal/domain/errors"
	"tourgenius/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUserUsecase struct {
	mock.Mock
}

func (m *mockUserUsecase) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.RegisterOutput), args.Error(1)
}

func (m *mockUserUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.LoginOutput), args.Error(1)
}

func (m *mockUserUsecase) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.RefreshTokenOutput), args.Error(1)
}

func (m *mockUserUsecase) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	args := m.Called(ctx, input)

	return args.Error(0)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func postJSON(e *echo.Echo, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestUserHandler_Register(t *testing.T) {
	uc := new(mockUserUsecase)
	h := NewUserHandler(uc, testLogger())

	registered := &entity.User{
		ID:    uuid.New(),
		Name:  "Siti Rahma",
		Email: "siti@example.com",
	}
	uc.On("RegisterUser", mock.Anything, &usecase.RegisterUserInput{
		Name:     "Siti Rahma",
		Email:    "siti@example.com",
		Password: "correct horse",
	}).Return(&usecase.RegisterOutput{User: registered}, nil)

	c, rec := postJSON(newTestEcho(), "/auth/register",
		`{"name":"Siti Rahma","email":"siti@example.com","password":"correct horse"}`)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "siti@example.com")
	assert.NotContains(t, rec.Body.String(), "password")
	uc.AssertExpectations(t)
}

func TestUserHandler_Register_ShortPassword(t *testing.T) {
	uc := new(mockUserUsecase)
	h := NewUserHandler(uc, testLogger())

	c, _ := postJSON(newTestEcho(), "/auth/register",
		`{"name":"Siti Rahma","email":"siti@example.com","password":"short"}`)

	err := h.Register(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	uc.AssertNotCalled(t, "RegisterUser", mock.Anything, mock.Anything)
}

func TestUserHandler_Login(t *testing.T) {
	uc := new(mockUserUsecase)
	h := NewUserHandler(uc, testLogger())

	uc.On("Login", mock.Anything, &usecase.LoginInput{
		Email:    "siti@example.com",
		Password: "correct horse",
	}).Return(&usecase.LoginOutput{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		User:         &entity.User{Email: "siti@example.com"},
	}, nil)

	c, rec := postJSON(newTestEcho(), "/auth/login",
		`{"email":"siti@example.com","password":"correct horse"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"access_token":"access-token"`)
	assert.Contains(t, rec.Body.String(), `"refresh_token":"refresh-token"`)
}

func TestUserHandler_Login_InvalidCredentials(t *testing.T) {
	uc := new(mockUserUsecase)
	h := NewUserHandler(uc, testLogger())

	uc.On("Login", mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidCredentials)

	c, _ := postJSON(newTestEcho(), "/auth/login",
		`{"email":"siti@example.com","password":"wrong"}`)

	err := h.Login(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserHandler_RefreshToken(t *testing.T) {
	uc := new(mockUserUsecase)
	h := NewUserHandler(uc, testLogger())

	uc.On("RefreshToken", mock.Anything, &usecase.RefreshTokenInput{RefreshToken: "old-token"}).
		Return(&usecase.RefreshTokenOutput{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil)

	c, rec := postJSON(newTestEcho(), "/auth/refresh", `{"refresh_token":"old-token"}`)

	require.NoError(t, h.RefreshToken(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"access_token":"new-access"`)
}

func TestUserHandler_Logout(t *testing.T) {
	uc := new(mockUserUsecase)
	h := NewUserHandler(uc, testLogger())

	uc.On("Logout", mock.Anything, &usecase.LogoutInput{RefreshToken: "old-token"}).Return(nil)

	c, rec := postJSON(newTestEcho(), "/auth/logout", `{"refresh_token":"old-token"}`)

	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	uc.AssertExpectations(t)
}
