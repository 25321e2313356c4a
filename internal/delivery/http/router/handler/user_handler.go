package handler

import (
	deliverycontext "ucsbapi/internal/delivery/context"
	"ucsbapi/internal/delivery/http/response"
	domainerrors "ucsbapi/internal/domain/errors"
	"ucsbapi/internal/usecase"

	"github.com/labstack/echo/v4"
)

// UserHandler serves the signed-in user's own account.
type UserHandler struct {
	currentUser usecase.CurrentUserUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(currentUser usecase.CurrentUserUsecase) *UserHandler {
	return &UserHandler{
		currentUser: currentUser,
	}
}

// GetCurrentUser handles GET /api/currentUser.
func (h *UserHandler) GetCurrentUser(c echo.Context) error {
	principal, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return domainerrors.ErrForbidden
	}

	current, err := h.currentUser.Get(c.Request().Context(), principal)
	if err != nil {
		return err
	}

	return response.OK(c, current)
}
