// Package response builds the unified JSON envelopes for the HTTP delivery.
package response

import (
	"net/http"

	deliverycontext "tourgenius/internal/delivery/context"
	domainerrors "tourgenius/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Success writes a successful response with the request ID echoed in the meta block.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, domainerrors.SuccessResponse{
		Data: data,
		Meta: &domainerrors.MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// Error writes an error response with the given business error code.
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, domainerrors.ErrorResponse{
		Error: &domainerrors.ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: &domainerrors.MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// BindingError 400 response for malformed request bodies.
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// BadRequest 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

// NotFound 404 error
func NotFound(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message, nil)
}
