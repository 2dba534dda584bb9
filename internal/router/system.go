package router

import (
	"github.com/kyrelabs/items-api/internal/handler"
	"github.com/kyrelabs/items-api/internal/server"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints that are not business
// logic: health status and Prometheus metrics.
func registerSystemRoutes(r *echo.Echo, s *server.Server, h *handler.Handlers) {
	// Health status endpoint (used by monitors/load balancers).
	r.GET("/status", h.Health.CheckHealth)

	// Prometheus exposition from the custom registry.
	r.GET("/metrics", echo.WrapHandler(s.Metrics.Handler()))
}
