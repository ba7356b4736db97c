package handler

import (
	"time"

	"foodbank/config"
	"foodbank/internal/delivery/api/action"
	"foodbank/internal/delivery/api/response"
	"foodbank/internal/domain/session"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SystemHandlerParams holds dependencies for SystemHandler, injected by Fx.
type SystemHandlerParams struct {
	fx.In

	Config *config.Config
}

// SystemHandler serves liveness checks
type SystemHandler struct {
	serviceName string
	location    *time.Location
	now         func() time.Time
}

// NewSystemHandler is the constructor for SystemHandler
func NewSystemHandler(params SystemHandlerParams) *SystemHandler {
	return &SystemHandler{
		serviceName: params.Config.Env.ServiceName,
		location:    params.Config.Location(),
		now:         time.Now,
	}
}

// Actions implements action.Provider
func (h *SystemHandler) Actions() action.Registry {
	return action.Registry{
		action.Test: h.test,
	}
}

func (h *SystemHandler) test(c echo.Context, _ action.Params) (any, error) {
	sess := session.FromContext(c.Request().Context())

	return map[string]any{
		"message":   "API is working",
		"service":   h.serviceName,
		"timestamp": h.now().In(h.location).Format(time.RFC3339),
		"user_id":   sess.UserID,
		"is_admin":  sess.IsAdmin,
	}, nil
}

// HealthCheck answers the load balancer probe.
func HealthCheck(c echo.Context) error {
	return response.Success(c, map[string]string{"status": "ok"})
}
