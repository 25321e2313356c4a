package context

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"ucsbapi/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	generated := GetRequestID(c)
	assert.NotEmpty(t, generated)

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))

	ctx := WithRequestID(context.Background(), "req-2")
	assert.Equal(t, "req-2", GetRequestIDFromContext(ctx))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}

func TestPrincipal(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, ok := GetPrincipal(c)
	assert.False(t, ok)

	principal := &entity.Principal{UserID: 7, Email: "cgaucho@ucsb.edu", Roles: entity.Roles{entity.RoleUser}}
	SetPrincipal(c, principal)

	got, ok := GetPrincipal(c)
	require.True(t, ok)
	assert.Equal(t, principal, got)

	fromCtx, ok := GetPrincipalFromContext(c.Request().Context())
	require.True(t, ok)
	assert.Equal(t, "cgaucho@ucsb.edu", fromCtx.Email)
}
