package handler

import (
	"time"

	"github.com/kyrelabs/items-api/internal/middleware"
	"github.com/kyrelabs/items-api/internal/server"
	"github.com/kyrelabs/items-api/internal/validation"
	"github.com/labstack/echo/v4"
)

// Handler is the base type holding shared application dependencies.
// Concrete handlers embed it to reach config, logger and metrics via
// *server.Server.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler. Returning by value is fine:
// the struct only holds a pointer, so copies share the same Server.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// HandlerFunc is a typed endpoint function that receives a bound and
// validated request payload and returns a response or an error.
type HandlerFunc[Req validation.Validatable, Res any] func(c echo.Context, req Req) (Res, error)

// ValidatablePtr constrains PReq to be a pointer to Req that knows how
// to validate itself. The pointer form is required so Echo's Bind can
// populate the fields.
type ValidatablePtr[Req any] interface {
	*Req
	validation.Validatable
}

// Handle wraps a typed endpoint function into an echo.HandlerFunc.
//
// A fresh request payload is allocated per request, then the shared
// pipeline binds, validates, executes the endpoint and writes the JSON
// response with the given status. On a validation failure the endpoint
// function is never called; the error goes to the global error
// handler.
//
// Usage:
//
//	g.POST("/", handler.Handle(h.Handler, h.Create, http.StatusOK))
func Handle[Req any, PReq ValidatablePtr[Req], Res any](
	h Handler,
	handler HandlerFunc[PReq, Res],
	status int,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := PReq(new(Req))
		return handleRequest(c, req, func(c echo.Context, req PReq) (interface{}, error) {
			return handler(c, req)
		}, status)
	}
}

// handleRequest is the shared execution pipeline for all endpoints.
//
// It centralizes request binding + validation, structured logging with
// request context, timing, and response writing.
func handleRequest[Req validation.Validatable](
	c echo.Context,
	req Req,
	handler func(c echo.Context, req Req) (interface{}, error),
	status int,
) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "handler").
		Str("method", c.Request().Method).
		Str("route", c.Path()).
		Logger()

	logger.Debug().Msg("handling request")

	validationStart := time.Now()
	if err := validation.BindAndValidate(c, req); err != nil {
		logger.Warn().
			Err(err).
			Dur("validation_duration", time.Since(validationStart)).
			Msg("request validation failed")
		return err
	}
	validationDuration := time.Since(validationStart)

	handlerStart := time.Now()
	result, err := handler(c, req)
	handlerDuration := time.Since(handlerStart)

	if err != nil {
		logger.Error().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Dur("total_duration", time.Since(start)).
			Msg("handler execution failed")
		return err
	}

	logger.Debug().
		Dur("validation_duration", validationDuration).
		Dur("handler_duration", handlerDuration).
		Dur("total_duration", time.Since(start)).
		Msg("request completed")

	return c.JSON(status, result)
}
