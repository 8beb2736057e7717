// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"dashkeep/config"
	"dashkeep/internal/delivery/api/middleware"
	"dashkeep/internal/delivery/api/router/handler"
	"dashkeep/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler   *handler.AccountHandler
	DashboardHandler *handler.DashboardHandler
	AuthMiddleware   *middleware.AuthMiddleware
	Metrics          *metrics.Metrics `optional:"true"`
	Config           *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler   *handler.AccountHandler
	dashboardHandler *handler.DashboardHandler
	authMiddleware   *middleware.AuthMiddleware
	metrics          *metrics.Metrics
	config           *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:   params.AccountHandler,
		dashboardHandler: params.DashboardHandler,
		authMiddleware:   params.AuthMiddleware,
		metrics:          params.Metrics,
		config:           params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.GET("/health", handler.HealthCheck)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.accountHandler.Register)
		authGroup.POST("/login", r.accountHandler.Login)
		authGroup.GET("/profile", r.accountHandler.GetProfile, r.authMiddleware.Authenticate)
	}

	dashboardGroup := api.Group("/dashboard", r.authMiddleware.Authenticate)
	{
		dashboardGroup.GET("", r.dashboardHandler.Get)
		dashboardGroup.POST("", r.dashboardHandler.Save)
		dashboardGroup.PUT("", r.dashboardHandler.Save)
		dashboardGroup.DELETE("", r.dashboardHandler.Delete)
	}

	if r.metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}
}
