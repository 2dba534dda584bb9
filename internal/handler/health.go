package handler

import (
	"net/http"
	"time"

	"github.com/kyrelabs/items-api/internal/middleware"
	"github.com/kyrelabs/items-api/internal/server"
	"github.com/labstack/echo/v4"
)

// HealthHandler exposes a system endpoint that load balancers and
// uptime monitors use to verify the service is alive.
type HealthHandler struct {
	Handler
}

// NewHealthHandler constructs a HealthHandler.
func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// HealthResponse is the payload returned by the health endpoint.
type HealthResponse struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Environment string    `json:"environment"`
	Uptime      string    `json:"uptime"`
}

// CheckHealth returns the service health status.
//
// The service has no external dependencies to probe, so health is a
// liveness statement: if this handler runs, the service is healthy.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := HealthResponse{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		Environment: h.server.Config.Primary.Env,
		Uptime:      h.server.Uptime().String(),
	}

	logger.Debug().Msg("health check passed")

	return c.JSON(http.StatusOK, response)
}
