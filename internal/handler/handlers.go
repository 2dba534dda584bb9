package handler

import (
	"github.com/kyrelabs/items-api/internal/server"
)

// Handlers groups all HTTP handlers so router setup passes one object
// around instead of many.
type Handlers struct {
	Root   *RootHandler   // Root serves the greeting endpoint.
	Item   *ItemHandler   // Item serves item lookup and creation.
	Health *HealthHandler // Health serves the service health endpoint.
}

// NewHandlers constructs the handler container from the application
// container.
func NewHandlers(s *server.Server) *Handlers {
	return &Handlers{
		Root:   NewRootHandler(s),
		Item:   NewItemHandler(s),
		Health: NewHealthHandler(s),
	}
}
