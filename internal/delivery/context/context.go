// Package context carries request-scoped values (request id, logger and the
// authenticated principal) between echo handlers and the layers below them.
package context

import (
	"context"
	"log/slog"

	"ucsbapi/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the key for storing request ID in context.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger is the key for storing request-scoped logger in context.
	KeyLogger ContextKey = "logger"

	// KeyPrincipal is the key for storing the authenticated caller.
	KeyPrincipal ContextKey = "principal"

	// KeyCSRFToken is the echo context key the CSRF middleware stores its token under.
	KeyCSRFToken ContextKey = "csrf"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"

	// HeaderXSRFToken carries the CSRF token on cookie-authenticated writes.
	HeaderXSRFToken = "X-XSRF-TOKEN"

	// ParamCSRF is the form field alternative to HeaderXSRFToken.
	ParamCSRF = "_csrf"
)

// GetRequestID extracts the request ID from echo.Context.
// If not found, generates a new UUID.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext extracts the request ID from standard context.Context.
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLogger extracts the request-scoped logger, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault extracts the request-scoped logger, falling back to fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// SetPrincipal stores the caller on both the echo and the request context.
func SetPrincipal(c echo.Context, principal *entity.Principal) {
	c.Set(string(KeyPrincipal), principal)
	c.SetRequest(c.Request().WithContext(WithPrincipal(c.Request().Context(), principal)))
}

// GetPrincipal returns the authenticated caller of the request, if any.
func GetPrincipal(c echo.Context) (*entity.Principal, bool) {
	principal, ok := c.Get(string(KeyPrincipal)).(*entity.Principal)

	return principal, ok && principal != nil
}

// WithPrincipal returns a new context carrying the caller.
func WithPrincipal(ctx context.Context, principal *entity.Principal) context.Context {
	return context.WithValue(ctx, KeyPrincipal, principal)
}

// GetPrincipalFromContext returns the caller carried by ctx, if any.
func GetPrincipalFromContext(ctx context.Context) (*entity.Principal, bool) {
	principal, ok := ctx.Value(KeyPrincipal).(*entity.Principal)

	return principal, ok && principal != nil
}
