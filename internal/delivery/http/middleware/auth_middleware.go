package middleware

import (
	"net/http"
	"strings"

	deliverycontext "tourgenius/internal/delivery/context"
	"tourgenius/internal/delivery/http/response"
	"tourgenius/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the JWT access token and stores the user ID on the
// request context. Refresh tokens are rejected here; they are only accepted
// by the dedicated refresh endpoint.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Error(c, http.StatusUnauthorized, "MISSING_TOKEN", "Authorization header is missing", nil)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN_FORMAT", "Invalid token format, must be Bearer token", nil)
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired token", nil)
		}
		if claims.Type != "access" {
			return response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN_TYPE", "An access token is required", nil)
		}

		deliverycontext.SetUserID(c, claims.UserID)

		return next(c)
	}
}
