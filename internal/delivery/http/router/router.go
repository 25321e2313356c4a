// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"cmp"
	"slices"

	"ucsbapi/internal/delivery/http/middleware"
	"ucsbapi/internal/delivery/http/router/handler"
	"ucsbapi/internal/domain/policy"
	"ucsbapi/internal/domain/resource"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Resources      []handler.ResourceRoutes `group:"resources"`
	SessionHandler *handler.SessionHandler
	UserHandler    *handler.UserHandler
	SystemHandler  *handler.SystemHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	resources      []handler.ResourceRoutes
	sessionHandler *handler.SessionHandler
	userHandler    *handler.UserHandler
	systemHandler  *handler.SystemHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	resources := slices.Clone(params.Resources)
	// fx groups are unordered; sort for a stable route table.
	slices.SortFunc(resources, func(a, b handler.ResourceRoutes) int {
		return cmp.Compare(a.Meta().Path, b.Meta().Path)
	})

	return &router{
		resources:      resources,
		sessionHandler: params.SessionHandler,
		userHandler:    params.UserHandler,
		systemHandler:  params.SystemHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", r.systemHandler.HealthCheck)

	e.GET("/csrf", r.systemHandler.CSRF)

	// Session routes
	e.POST("/auth/google", r.sessionHandler.LoginWithGoogle)
	e.POST("/logout", r.sessionHandler.Logout)

	api := e.Group("/api")
	{
		api.GET("/systemInfo", r.systemHandler.SystemInfo)
		api.GET("/routes", r.systemHandler.Routes)
		api.GET("/currentUser", r.userHandler.GetCurrentUser,
			r.authMiddleware.Authorize(policy.CurrentUser, resource.OpGet))
	}

	for _, res := range r.resources {
		res.Register(api, r.authMiddleware.Authorize)
	}
}
