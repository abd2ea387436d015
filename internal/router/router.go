// Package router builds the echo instance: global middleware, the system
// routes and the /api groups.
package router

import (
	"github.com/Nikil-Srinivasan/Stint360-API/internal/handler"
	"github.com/Nikil-Srinivasan/Stint360-API/internal/middleware"
	"github.com/Nikil-Srinivasan/Stint360-API/internal/server"
	"github.com/Nikil-Srinivasan/Stint360-API/internal/service"
	"github.com/labstack/echo/v4"
)

// NewRouter wires middleware and routes. The RequireAuth middleware guards
// /api only when Clerk is configured.
func NewRouter(s *server.Server, h *handler.Handlers, services *service.Services) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	// Order matters: the request id and transaction must exist before the
	// context logger is built, and the logger before anything logs.
	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.RateLimit.Limit(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h)

	api := router.Group("/api")
	if services.Auth != nil {
		api.Use(middlewares.Auth.RequireAuth, middlewares.ContextEnhancer.EnhanceContext())
	}

	registerDepartmentRoutes(api, h.Department)
	registerManagerRoutes(api, h.Manager)
	registerEmployeeRoutes(api, h.Employee)
	registerEmployeeTaskRoutes(api, h.EmployeeTask)

	return router
}
