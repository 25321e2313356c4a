// Package response writes the JSON bodies of the HTTP API.
// Successful responses carry the payload itself; errors carry {type, message}.
package response

import (
	"net/http"

	domainerrors "ucsbapi/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// OK writes data as a 200 JSON body.
func OK(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, data)
}

// Message writes {"message": msg} with status 200.
func Message(c echo.Context, msg string) error {
	return c.JSON(http.StatusOK, domainerrors.MessageResponse{Message: msg})
}

// Error writes {"type": errorType, "message": message} with the given status.
func Error(c echo.Context, statusCode int, errorType, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, domainerrors.ErrorResponse{
		Type:    errorType,
		Message: message,
	})
}

// HandleAppError writes an AppError with its own status and type.
func HandleAppError(c echo.Context, appErr domainerrors.AppError) error {
	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message())
}
