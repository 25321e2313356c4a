package handler

import (
	"cmp"
	"slices"

	deliverycontext "ucsbapi/internal/delivery/context"
	"ucsbapi/internal/delivery/http/response"
	"ucsbapi/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SystemHandler serves the public informational endpoints.
type SystemHandler struct {
	systemInfo usecase.SystemInfoUsecase
}

// RouteInfo is one entry of GET /api/routes.
type RouteInfo struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

// CSRFToken is the body of GET /csrf.
type CSRFToken struct {
	HeaderName    string `json:"headerName"`
	ParameterName string `json:"parameterName"`
	Token         string `json:"token"`
}

// NewSystemHandler is the constructor for SystemHandler, injected by Fx.
func NewSystemHandler(systemInfo usecase.SystemInfoUsecase) *SystemHandler {
	return &SystemHandler{
		systemInfo: systemInfo,
	}
}

// HealthCheck handles GET /health.
func (h *SystemHandler) HealthCheck(c echo.Context) error {
	return response.OK(c, map[string]string{"status": "ok"})
}

// SystemInfo handles GET /api/systemInfo.
func (h *SystemHandler) SystemInfo(c echo.Context) error {
	return response.OK(c, h.systemInfo.Get(c.Request().Context()))
}

// Routes handles GET /api/routes, listing every registered route sorted by path.
func (h *SystemHandler) Routes(c echo.Context) error {
	routes := c.Echo().Routes()
	out := make([]RouteInfo, 0, len(routes))
	for _, r := range routes {
		out = append(out, RouteInfo{Method: r.Method, Path: r.Path})
	}

	slices.SortFunc(out, func(a, b RouteInfo) int {
		return cmp.Or(cmp.Compare(a.Path, b.Path), cmp.Compare(a.Method, b.Method))
	})

	return response.OK(c, out)
}

// CSRF handles GET /csrf, returning the token the CSRF middleware issued for this client.
func (h *SystemHandler) CSRF(c echo.Context) error {
	token, _ := c.Get(string(deliverycontext.KeyCSRFToken)).(string)

	return response.OK(c, CSRFToken{
		HeaderName:    deliverycontext.HeaderXSRFToken,
		ParameterName: deliverycontext.ParamCSRF,
		Token:         token,
	})
}
