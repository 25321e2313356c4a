package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	deliverycontext "ucsbapi/internal/delivery/context"
	"ucsbapi/internal/delivery/http/response"
	domainerrors "ucsbapi/internal/domain/errors"
	"ucsbapi/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	log := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			log.Error("Request failed",
				slog.String("type", appErr.ErrorCode()),
				slog.String("details", appErr.Details()),
				slog.Any("error", err),
			)
		}
		m.write(c, log, response.HandleAppError(c, appErr))

		return
	}

	// Echo's own errors: bind failures, unknown routes, body limit, CSRF
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok && msg != "" {
			message = msg
		} else if httpErr.Message != nil {
			message = fmt.Sprint(httpErr.Message)
		}
		if httpErr.Code >= http.StatusInternalServerError {
			log.Error("Request failed", slog.Any("error", err))
		}
		m.write(c, log, response.Error(c, httpErr.Code, typeForStatus(httpErr.Code), message))

		return
	}

	log.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	m.write(c, log, response.HandleAppError(c, domainerrors.ErrInternalError))
}

func (m *ErrorMiddleware) write(c echo.Context, log *slog.Logger, err error) {
	if err != nil {
		log.Error("Failed to write error response", slog.Any("error", err), slog.String("path", c.Path()))
	}
}

func typeForStatus(code int) string {
	switch code {
	case http.StatusBadRequest, http.StatusUnsupportedMediaType, http.StatusRequestEntityTooLarge:
		return domainerrors.TypeValidation
	case http.StatusUnauthorized:
		return domainerrors.TypeAuthentication
	case http.StatusForbidden:
		return domainerrors.TypeAccessDenied
	case http.StatusNotFound:
		return "NoHandlerFoundException"
	case http.StatusMethodNotAllowed:
		return "HttpRequestMethodNotSupportedException"
	case http.StatusConflict:
		return domainerrors.TypeDataIntegrity
	default:
		if code >= http.StatusInternalServerError {
			return domainerrors.TypeInternalServerError
		}

		return "HttpClientErrorException"
	}
}
