// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"foodbank/config"
	"foodbank/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ExecHandler *handler.ExecHandler
	Config      *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	execHandler *handler.ExecHandler
	config      *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		execHandler: params.ExecHandler,
		config:      params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Every action goes through one endpoint, selected by ?action= or the body
	e.GET("/exec", r.execHandler.Handle)
	e.POST("/exec", r.execHandler.Handle)
}

// RegisterMetricsRoutes exposes the Prometheus registry when enabled.
func (r *router) RegisterMetricsRoutes(e *echo.Echo) {
	if r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	}
}
