package router

import (
	"net/http"

	"github.com/kyrelabs/items-api/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerItemRoutes registers the business endpoints.
func registerItemRoutes(r *echo.Echo, h *handler.Handlers) {
	// Greeting endpoint.
	r.GET("/", h.Root.Hello)

	items := r.Group("/items")

	// Echo the path identifier back as text.
	items.GET("/:id", handler.Handle(h.Item.Handler, h.Item.Lookup, http.StatusOK))

	// Validate an item payload and echo it back unchanged.
	items.POST("/", handler.Handle(h.Item.Handler, h.Item.Create, http.StatusOK))
}
