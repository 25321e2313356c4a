package handler

import (
	"net/http"
	"time"

	"ucsbapi/config"
	"ucsbapi/internal/delivery/http/response"
	"ucsbapi/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SessionHandler signs users in with Google and manages the session cookie.
type SessionHandler struct {
	sessions usecase.SessionUsecase
	auth     config.AuthConfig
}

type googleLoginRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(sessions usecase.SessionUsecase, cfg *config.Config) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
		auth:     cfg.Auth,
	}
}

// LoginWithGoogle handles POST /auth/google.
func (h *SessionHandler) LoginWithGoogle(c echo.Context) error {
	var req googleLoginRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	session, err := h.sessions.LoginWithGoogle(c.Request().Context(), req.IDToken)
	if err != nil {
		return err
	}

	c.SetCookie(h.cookie(session.AccessToken, session.ExpiresAt))

	return response.OK(c, session)
}

// Logout handles POST /logout by expiring the session cookie.
func (h *SessionHandler) Logout(c echo.Context) error {
	c.SetCookie(h.cookie("", time.Unix(0, 0)))

	return response.Message(c, "Logged out")
}

func (h *SessionHandler) cookie(value string, expires time.Time) *http.Cookie {
	cookie := &http.Cookie{
		Name:     h.auth.SessionCookie,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.auth.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	}
	if value == "" {
		cookie.MaxAge = -1
	}

	return cookie
}
