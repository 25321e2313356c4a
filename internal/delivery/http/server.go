package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"ucsbapi/config"
	"ucsbapi/internal/delivery"
	deliverycontext "ucsbapi/internal/delivery/context"
	"ucsbapi/internal/delivery/http/middleware"
	"ucsbapi/internal/delivery/http/router"
	"ucsbapi/internal/domain/lifecycle"
	"ucsbapi/internal/domain/service"
	"ucsbapi/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// backendPrefixes are never handed to the frontend.
var backendPrefixes = []string{"/api", "/auth", "/csrf", "/logout", "/health"}

type HTTPParams struct {
	fx.In
	fx.Lifecycle

	Config       *config.Config
	Logger       *slog.Logger
	Validator    service.StructValidator
	RouterParams router.RouterParams
}

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

func NewServer(params HTTPParams) (delivery.Delivery, error) {
	echoServer, err := newEcho(params)
	if err != nil {
		return nil, err
	}

	srv := &httpServer{
		cfg:    params.Config,
		logger: params.Logger,
		server: echoServer,
	}

	params.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func newEcho(params HTTPParams) (*echo.Echo, error) {
	cfg := params.Config

	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	// Set up middleware in correct order
	// 1. Recover middleware first (to catch panics early)
	echoServer.Use(echomiddleware.Recover())

	// 2. Request ID middleware (must be before logger to include in logs)
	echoServer.Use(middleware.NewRequestIDMiddleware(params.Logger).Process)

	// 3. Logger middleware
	echoServer.Use(middleware.NewLoggerMiddleware(params.Logger, cfg).Handle)

	// 4. CORS middleware
	echoServer.Use(echomiddleware.CORS())

	// 5. Request body size limit
	echoServer.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))

	// 6. Resolve the caller; anonymous requests continue without a principal
	auth := params.RouterParams.AuthMiddleware
	echoServer.Use(auth.Authenticate)

	// 7. CSRF for cookie-authenticated writes
	echoServer.Use(echomiddleware.CSRFWithConfig(echomiddleware.CSRFConfig{
		Skipper:        auth.SkipCSRF,
		TokenLookup:    "header:" + deliverycontext.HeaderXSRFToken + ",form:" + deliverycontext.ParamCSRF,
		ContextKey:     string(deliverycontext.KeyCSRFToken),
		CookieName:     "XSRF-TOKEN",
		CookiePath:     "/",
		CookieSecure:   cfg.Auth.SecureCookie,
		CookieSameSite: http.SameSiteLaxMode,
	}))

	// 8. Frontend for every non-backend path
	frontend, err := frontendMiddleware(cfg.Frontend)
	if err != nil {
		return nil, err
	}
	if frontend != nil {
		echoServer.Use(frontend)
	}

	// Set up centralized error handler
	echoServer.HTTPErrorHandler = middleware.NewErrorMiddleware(params.Logger).HandleHTTPError

	// Set up validator
	echoServer.Validator = params.Validator

	router.NewRouter(params.RouterParams).RegisterRoutes(echoServer)

	return echoServer, nil
}

func frontendMiddleware(cfg config.FrontendConfig) (echo.MiddlewareFunc, error) {
	switch cfg.Mode {
	case config.FrontendStatic:
		return echomiddleware.StaticWithConfig(echomiddleware.StaticConfig{
			Skipper: isBackendPath,
			Root:    cfg.StaticDir,
			Index:   "index.html",
			HTML5:   true,
		}), nil
	case config.FrontendProxy:
		target, err := url.Parse(cfg.ProxyURL)
		if err != nil || target.Host == "" {
			return nil, errors.Errorf("invalid frontend.proxyURL %q", cfg.ProxyURL)
		}

		return echomiddleware.ProxyWithConfig(echomiddleware.ProxyConfig{
			Skipper:  isBackendPath,
			Balancer: echomiddleware.NewRoundRobinBalancer([]*echomiddleware.ProxyTarget{{URL: target}}),
		}), nil
	case config.FrontendOff, "":
		return nil, nil
	default:
		return nil, errors.Errorf("unknown frontend.mode %q", cfg.Mode)
	}
}

func isBackendPath(c echo.Context) bool {
	path := c.Request().URL.Path
	for _, prefix := range backendPrefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}

	return false
}

func (s *httpServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting HTTP server", slog.String("host_port", hostPort))
	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
