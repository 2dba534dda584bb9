package middleware

import (
	"time"

	"github.com/kyrelabs/items-api/internal/errs"
	"github.com/kyrelabs/items-api/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MetricsMiddleware records Prometheus instruments for each request.
type MetricsMiddleware struct {
	server *server.Server
}

// NewMetricsMiddleware constructs a MetricsMiddleware.
func NewMetricsMiddleware(s *server.Server) *MetricsMiddleware {
	return &MetricsMiddleware{
		server: s,
	}
}

// Record returns an Echo middleware that counts requests and observes
// their duration, labeled by method, route template and status.
func (m *MetricsMiddleware) Record() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}

			// On error the global error handler has not written the
			// response yet, so derive the status it will send.
			status := c.Response().Status
			if err != nil {
				var httpErr *errs.HTTPError
				var echoErr *echo.HTTPError

				if errors.As(err, &httpErr) {
					status = httpErr.Status
				} else if errors.As(err, &echoErr) {
					status = echoErr.Code
				}
			}

			m.server.Metrics.RecordHTTPRequest(c.Request().Method, route, status, time.Since(start))

			return err
		}
	}
}
