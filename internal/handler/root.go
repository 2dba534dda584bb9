package handler

import (
	"net/http"

	"github.com/kyrelabs/items-api/internal/server"
	"github.com/labstack/echo/v4"
)

// RootHandler serves the fixed greeting at the root path.
type RootHandler struct {
	Handler
}

// NewRootHandler constructs a RootHandler.
func NewRootHandler(s *server.Server) *RootHandler {
	return &RootHandler{
		Handler: NewHandler(s),
	}
}

// MessageResponse is the payload returned by the root endpoint.
type MessageResponse struct {
	Message string `json:"message"`
}

// Hello returns {"message": "Hello World"} with a 200 status. It takes
// no input and has no error conditions, so it skips the bind/validate
// pipeline.
func (h *RootHandler) Hello(c echo.Context) error {
	return c.JSON(http.StatusOK, MessageResponse{Message: "Hello World"})
}
