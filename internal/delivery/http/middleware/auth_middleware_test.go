package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"ucsbapi/config"
	deliverycontext "ucsbapi/internal/delivery/context"
	"ucsbapi/internal/domain/entity"
	domainerrors "ucsbapi/internal/domain/errors"
	"ucsbapi/internal/domain/policy"
	"ucsbapi/internal/domain/resource"
	"ucsbapi/internal/errors"
	mockUsecase "ucsbapi/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth.SessionCookie = "SESSION"

	return cfg
}

func newContext(req *http.Request) echo.Context {
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthenticate(t *testing.T) {
	principal := &entity.Principal{UserID: 1, Email: "a@ucsb.edu", Roles: entity.Roles{entity.RoleUser}}

	t.Run("bearer token", func(t *testing.T) {
		sessions := mockUsecase.NewMockSessionUsecase(t)
		sessions.On("Authenticate", mock.Anything, "good").Return(principal, nil).Once()
		m := NewAuthMiddleware(sessions, policy.NewTable(), newAuthConfig())

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer good")
		c := newContext(req)

		require.NoError(t, m.Authenticate(okHandler)(c))
		got, ok := deliverycontext.GetPrincipal(c)
		require.True(t, ok)
		assert.Equal(t, principal, got)
	})

	t.Run("session cookie", func(t *testing.T) {
		sessions := mockUsecase.NewMockSessionUsecase(t)
		sessions.On("Authenticate", mock.Anything, "from-cookie").Return(principal, nil).Once()
		m := NewAuthMiddleware(sessions, policy.NewTable(), newAuthConfig())

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "SESSION", Value: "from-cookie"})
		c := newContext(req)

		require.NoError(t, m.Authenticate(okHandler)(c))
		_, ok := deliverycontext.GetPrincipal(c)
		assert.True(t, ok)
	})

	t.Run("anonymous passes through", func(t *testing.T) {
		m := NewAuthMiddleware(mockUsecase.NewMockSessionUsecase(t), policy.NewTable(), newAuthConfig())
		c := newContext(httptest.NewRequest(http.MethodGet, "/", nil))

		require.NoError(t, m.Authenticate(okHandler)(c))
		_, ok := deliverycontext.GetPrincipal(c)
		assert.False(t, ok)
	})

	t.Run("invalid token", func(t *testing.T) {
		sessions := mockUsecase.NewMockSessionUsecase(t)
		sessions.On("Authenticate", mock.Anything, "bad").Return(nil, domainerrors.ErrInvalidToken).Once()
		m := NewAuthMiddleware(sessions, policy.NewTable(), newAuthConfig())

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer bad")

		err := m.Authenticate(okHandler)(newContext(req))
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
	})

	t.Run("stale cookie continues anonymous", func(t *testing.T) {
		sessions := mockUsecase.NewMockSessionUsecase(t)
		sessions.On("Authenticate", mock.Anything, "stale").Return(nil, domainerrors.ErrInvalidToken).Once()
		m := NewAuthMiddleware(sessions, policy.NewTable(), newAuthConfig())

		req := httptest.NewRequest(http.MethodPost, "/logout", nil)
		req.AddCookie(&http.Cookie{Name: "SESSION", Value: "stale"})
		rec := httptest.NewRecorder()
		c := echo.New().NewContext(req, rec)

		require.NoError(t, m.Authenticate(okHandler)(c))
		_, ok := deliverycontext.GetPrincipal(c)
		assert.False(t, ok)
		assert.True(t, m.SkipCSRF(c))

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "SESSION", cookies[0].Name)
		assert.Empty(t, cookies[0].Value)
		assert.Equal(t, -1, cookies[0].MaxAge)
	})
}

func TestAuthorize(t *testing.T) {
	table := policy.NewTable()
	table.Set("animals", resource.OpCreate, entity.RoleAdmin)
	m := NewAuthMiddleware(mockUsecase.NewMockSessionUsecase(t), table, newAuthConfig())

	tests := []struct {
		name      string
		principal *entity.Principal
		op        resource.Operation
		wantErr   error
	}{
		{name: "admin allowed", principal: &entity.Principal{Roles: entity.Roles{entity.RoleUser, entity.RoleAdmin}}, op: resource.OpCreate},
		{name: "user denied", principal: &entity.Principal{Roles: entity.Roles{entity.RoleUser}}, op: resource.OpCreate, wantErr: domainerrors.ErrForbidden},
		{name: "anonymous denied", op: resource.OpCreate, wantErr: domainerrors.ErrForbidden},
		{name: "unknown pair denied", principal: &entity.Principal{Roles: entity.Roles{entity.RoleAdmin}}, op: resource.OpDelete, wantErr: domainerrors.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newContext(httptest.NewRequest(http.MethodPost, "/", nil))
			if tt.principal != nil {
				deliverycontext.SetPrincipal(c, tt.principal)
			}

			err := m.Authorize("animals", tt.op)(okHandler)(c)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			}
		})
	}
}

func TestSkipCSRF(t *testing.T) {
	m := NewAuthMiddleware(mockUsecase.NewMockSessionUsecase(t), policy.NewTable(), newAuthConfig())

	authenticated := func(method, scheme string) echo.Context {
		c := newContext(httptest.NewRequest(method, "/", nil))
		if scheme != "" {
			c.Set(keyAuthScheme, scheme)
		}

		return c
	}

	tests := []struct {
		name   string
		method string
		scheme string
		want   bool
	}{
		{name: "safe method with cookie", method: http.MethodGet, scheme: schemeCookie, want: false},
		{name: "safe method anonymous", method: http.MethodGet, want: false},
		{name: "bearer write", method: http.MethodPost, scheme: schemeBearer, want: true},
		{name: "anonymous write", method: http.MethodPost, want: true},
		{name: "cookie write", method: http.MethodPost, scheme: schemeCookie, want: false},
		{name: "cookie delete", method: http.MethodDelete, scheme: schemeCookie, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.SkipCSRF(authenticated(tt.method, tt.scheme)))
		})
	}
}
