package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"ucsbapi/config"
	deliverycontext "ucsbapi/internal/delivery/context"
	domainerrors "ucsbapi/internal/domain/errors"
	"ucsbapi/internal/domain/policy"
	"ucsbapi/internal/domain/resource"
	"ucsbapi/internal/errors"
	"ucsbapi/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	bearerPrefix = "Bearer "

	// keyAuthScheme records how the request authenticated, "bearer" or "cookie".
	keyAuthScheme = "auth_scheme"
	schemeBearer  = "bearer"
	schemeCookie  = "cookie"
)

// AuthMiddleware resolves the caller and enforces the policy table.
type AuthMiddleware struct {
	sessions     usecase.SessionUsecase
	table        *policy.Table
	cookieName   string
	secureCookie bool
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessions usecase.SessionUsecase, table *policy.Table, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		sessions:     sessions,
		table:        table,
		cookieName:   cfg.Auth.SessionCookie,
		secureCookie: cfg.Auth.SecureCookie,
	}
}

// Authenticate resolves the principal from a Bearer token or the session cookie.
// Requests without credentials pass through anonymous. An invalid Bearer token is
// rejected with 401; an invalid session cookie is expired and the request continues anonymous.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, scheme := m.credentials(c.Request())
		if token == "" {
			return next(c)
		}

		principal, err := m.sessions.Authenticate(c.Request().Context(), token)
		if err != nil {
			var appErr domainerrors.AppError
			if scheme == schemeBearer || !errors.As(err, &appErr) || appErr.HTTPCode() != http.StatusUnauthorized {
				return err
			}

			if log := deliverycontext.GetLogger(c.Request().Context()); log != nil {
				log.Info("Discarding stale session cookie", slog.Any("error", err))
			}
			c.SetCookie(m.expiredCookie())

			return next(c)
		}

		deliverycontext.SetPrincipal(c, principal)
		c.Set(keyAuthScheme, scheme)

		// Attach the user to the request-scoped logger.
		if log := deliverycontext.GetLogger(c.Request().Context()); log != nil {
			ctx := deliverycontext.WithLogger(c.Request().Context(), log.With("user", principal.Email))
			c.SetRequest(c.Request().WithContext(ctx))
		}

		return next(c)
	}
}

// Authorize gates a route on the role the policy table requires for (res, op).
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) Authorize(res string, op resource.Operation) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := deliverycontext.GetPrincipal(c)
			if !ok {
				return domainerrors.ErrForbidden
			}

			if !m.table.Allows(res, op, principal.Roles) {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}

// SkipCSRF exempts writes that were not authenticated by the session cookie.
// Safe methods still pass through the CSRF middleware so it can issue the token.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) SkipCSRF(c echo.Context) bool {
	switch c.Request().Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
		return false
	}

	scheme, _ := c.Get(keyAuthScheme).(string)

	return scheme != schemeCookie
}

func (m *AuthMiddleware) credentials(req *http.Request) (token, scheme string) {
	if header := req.Header.Get(echo.HeaderAuthorization); strings.HasPrefix(header, bearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix)), schemeBearer
	}

	if cookie, err := req.Cookie(m.cookieName); err == nil && cookie.Value != "" {
		return cookie.Value, schemeCookie
	}

	return "", ""
}

func (m *AuthMiddleware) expiredCookie() *http.Cookie {
	return &http.Cookie{
		Name:     m.cookieName,
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
}
