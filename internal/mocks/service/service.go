// Package service provides testify mocks for the domain service interfaces.
package service

import (
	"time"

	"tourgenius/internal/domain/entity"
	"tourgenius/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockTokenService is a mock implementation of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateTokens(userID uuid.UUID) (string, string, error) {
	args := m.Called(userID)

	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.Claims), args.Error(1)
}

func (m *MockTokenService) GetRefreshTokenDuration() time.Duration {
	return m.Called().Get(0).(time.Duration)
}

// MockPasswordHasher is a mock implementation of service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

// MockQRCodeService is a mock implementation of service.QRCodeService.
type MockQRCodeService struct {
	mock.Mock
}

func (m *MockQRCodeService) GenerateLinkQR(link string) ([]byte, error) {
	args := m.Called(link)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]byte), args.Error(1)
}

// MockCalendarExporter is a mock implementation of service.CalendarExporter.
type MockCalendarExporter struct {
	mock.Mock
}

func (m *MockCalendarExporter) ExportICS(itinerary *entity.Itinerary) ([]byte, error) {
	args := m.Called(itinerary)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]byte), args.Error(1)
}
