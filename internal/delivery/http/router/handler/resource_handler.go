// Package handler contains the echo handlers of the HTTP API.
package handler

import (
	"fmt"
	"net/http"

	"ucsbapi/internal/delivery/http/response"
	domainerrors "ucsbapi/internal/domain/errors"
	"ucsbapi/internal/domain/resource"
	"ucsbapi/internal/errors"
	"ucsbapi/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthorizeFunc returns the middleware guarding one (resource, operation) pair.
type AuthorizeFunc func(res string, op resource.Operation) echo.MiddlewareFunc

// ResourceRoutes is implemented by every CRUD handler so the router can mount it.
type ResourceRoutes interface {
	Meta() resource.Meta
	Register(g *echo.Group, authorize AuthorizeFunc)
}

// ResourceHandler serves the CRUD endpoints of one resource.
type ResourceHandler[T any, K resource.Key] struct {
	uc     usecase.ResourceUsecase[T, K]
	desc   resource.Descriptor[T, K]
	binder *echo.DefaultBinder
}

var _ ResourceRoutes = (*ResourceHandler[struct{}, int64])(nil)

// NewResourceHandler is the constructor for ResourceHandler.
func NewResourceHandler[T any, K resource.Key](uc usecase.ResourceUsecase[T, K]) *ResourceHandler[T, K] {
	return &ResourceHandler[T, K]{
		uc:     uc,
		desc:   uc.Descriptor(),
		binder: &echo.DefaultBinder{},
	}
}

func (h *ResourceHandler[T, K]) Meta() resource.Meta {
	return h.desc.Meta
}

// Register mounts the enabled operations under /{path}.
func (h *ResourceHandler[T, K]) Register(g *echo.Group, authorize AuthorizeFunc) {
	base := "/" + h.desc.Path

	if h.desc.Supports(resource.OpList) {
		g.GET(base+"/all", h.List, authorize(h.desc.Path, resource.OpList))
	}
	if h.desc.Supports(resource.OpGet) {
		g.GET(base, h.Get, authorize(h.desc.Path, resource.OpGet))
	}
	if h.desc.Supports(resource.OpCreate) {
		g.POST(base+"/post", h.Create, authorize(h.desc.Path, resource.OpCreate))
	}
	if h.desc.Supports(resource.OpUpdate) {
		g.PUT(base, h.Update, authorize(h.desc.Path, resource.OpUpdate))
	}
	if h.desc.Supports(resource.OpDelete) {
		g.DELETE(base, h.Delete, authorize(h.desc.Path, resource.OpDelete))
	}
}

// List handles GET /{path}/all
func (h *ResourceHandler[T, K]) List(c echo.Context) error {
	records, err := h.uc.List(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, records)
}

// Get handles GET /{path}?{key}=
func (h *ResourceHandler[T, K]) Get(c echo.Context) error {
	key, err := h.key(c)
	if err != nil {
		return err
	}

	record, err := h.uc.Get(c.Request().Context(), key)
	if err != nil {
		return err
	}

	return response.OK(c, record)
}

// Create handles POST /{path}/post. Fields come from query parameters, a JSON body, or both;
// body fields win.
func (h *ResourceHandler[T, K]) Create(c echo.Context) error {
	record := new(T)
	if err := h.binder.BindQueryParams(c, record); err != nil {
		return bindError(err)
	}
	if err := h.binder.BindBody(c, record); err != nil {
		return bindError(err)
	}

	created, err := h.uc.Create(c.Request().Context(), record)
	if err != nil {
		return err
	}

	return response.OK(c, created)
}

// Update handles PUT /{path}?{key}= with the full record as JSON body.
func (h *ResourceHandler[T, K]) Update(c echo.Context) error {
	key, err := h.key(c)
	if err != nil {
		return err
	}

	record := new(T)
	if err := h.binder.BindBody(c, record); err != nil {
		return bindError(err)
	}

	updated, err := h.uc.Update(c.Request().Context(), key, record)
	if err != nil {
		return err
	}

	return response.OK(c, updated)
}

// Delete handles DELETE /{path}?{key}=
func (h *ResourceHandler[T, K]) Delete(c echo.Context) error {
	key, err := h.key(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), key); err != nil {
		return err
	}

	return response.Message(c, fmt.Sprintf("%s with id %v deleted", h.desc.Name, key))
}

func (h *ResourceHandler[T, K]) key(c echo.Context) (K, error) {
	key, err := h.desc.ParseKey(c.QueryParam(h.desc.KeyParam))
	if err != nil {
		return key, domainerrors.ErrValidationFailed.WithMessage(err.Error())
	}

	return key, nil
}

// bindError keeps echo's own non-400 statuses (e.g. 415) and reports malformed input as validation.
func bindError(err error) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Code != http.StatusBadRequest {
			return err
		}

		return domainerrors.ErrValidationFailed.WithMessage(fmt.Sprint(httpErr.Message))
	}

	return domainerrors.ErrValidationFailed.WithMessage(err.Error())
}
