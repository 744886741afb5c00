package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"tourgenius/config"
	deliverycontext "tourgenius/internal/delivery/context"
	"tourgenius/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) (*AuthMiddleware, uuid.UUID, string, string) {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "access-secret-for-tests"
	cfg.SecretKey.Refresh = "refresh-secret-for-tests"

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	userID := uuid.New()
	accessToken, refreshToken, err := tokenSvc.GenerateTokens(userID)
	require.NoError(t, err)

	return NewAuthMiddleware(tokenSvc), userID, accessToken, refreshToken
}

func runAuth(t *testing.T, m *AuthMiddleware, authHeader string) (*httptest.ResponseRecorder, echo.Context, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/itineraries", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	nextCalled := false
	err := m.Authenticate(func(c echo.Context) error {
		nextCalled = true

		return nil
	})(c)
	require.NoError(t, err)

	return rec, c, nextCalled
}

func TestAuthenticate_ValidAccessToken(t *testing.T) {
	m, userID, accessToken, _ := newAuthFixture(t)

	_, c, nextCalled := runAuth(t, m, "Bearer "+accessToken)

	assert.True(t, nextCalled)
	assert.Equal(t, userID, deliverycontext.GetUserID(c))
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	m, _, _, _ := newAuthFixture(t)

	rec, _, nextCalled := runAuth(t, m, "")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "MISSING_TOKEN")
}

func TestAuthenticate_NotBearer(t *testing.T) {
	m, _, accessToken, _ := newAuthFixture(t)

	rec, _, nextCalled := runAuth(t, m, "Token "+accessToken)

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN_FORMAT")
}

func TestAuthenticate_RefreshTokenRejected(t *testing.T) {
	m, _, _, refreshToken := newAuthFixture(t)

	rec, _, nextCalled := runAuth(t, m, "Bearer "+refreshToken)

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN_TYPE")
}

func TestAuthenticate_GarbageToken(t *testing.T) {
	m, _, _, _ := newAuthFixture(t)

	rec, _, nextCalled := runAuth(t, m, "Bearer not.a.jwt")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}
