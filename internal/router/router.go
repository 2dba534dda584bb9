// Package router initializes the HTTP router (using Echo).
//
// It installs the middleware stack, sets the global error handler, and
// maps paths to their handlers. Business routes and system routes live
// in separate files.
package router

import (
	"github.com/kyrelabs/items-api/internal/handler"
	"github.com/kyrelabs/items-api/internal/middleware"
	"github.com/kyrelabs/items-api/internal/server"
	"github.com/labstack/echo/v4"
)

// New builds the Echo instance with middleware and all routes
// registered. The result is the http.Handler the server runs.
func New(s *server.Server) *echo.Echo {
	r := echo.New()
	r.HideBanner = true
	r.HidePort = true

	middlewares := middleware.NewMiddlewares(s)
	r.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	// Order matters: Recover outermost, RequestID before the context
	// enhancer so the request-scoped logger carries the ID, and the
	// request logger after it so it can use that logger.
	r.Use(middlewares.Global.Recover())
	r.Use(middleware.RequestID())
	r.Use(middlewares.ContextEnhancer.EnhanceContext())
	r.Use(middlewares.Global.RequestLogger())
	r.Use(middlewares.Global.CORS())
	r.Use(middlewares.Global.Secure())
	r.Use(middlewares.Metrics.Record())

	handlers := handler.NewHandlers(s)

	registerItemRoutes(r, handlers)
	registerSystemRoutes(r, s, handlers)

	return r
}
