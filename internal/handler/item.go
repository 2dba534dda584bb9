package handler

import (
	"github.com/kyrelabs/items-api/internal/model"
	"github.com/kyrelabs/items-api/internal/server"
	"github.com/labstack/echo/v4"
)

// ItemHandler serves the item endpoints.
type ItemHandler struct {
	Handler
}

// NewItemHandler constructs an ItemHandler.
func NewItemHandler(s *server.Server) *ItemHandler {
	return &ItemHandler{
		Handler: NewHandler(s),
	}
}

// LookupItemRequest carries the path parameter of the item lookup
// endpoint.
type LookupItemRequest struct {
	ID string `param:"id"`
}

// Validate is a no-op: the identifier is treated as opaque text, and a
// missing segment is a routing non-match rather than a handled error.
func (r *LookupItemRequest) Validate() error {
	return nil
}

// ItemIDResponse is the payload returned by the item lookup endpoint.
type ItemIDResponse struct {
	ItemID string `json:"item_id"`
}

// Lookup echoes the path identifier back as {"item_id": "<id>"}.
func (h *ItemHandler) Lookup(c echo.Context, req *LookupItemRequest) (*ItemIDResponse, error) {
	return &ItemIDResponse{ItemID: req.ID}, nil
}

// Create echoes a validated item back unchanged.
//
// By the time this runs the pipeline has already bound the body and
// enforced the schema (name and price present and correctly typed), so
// the body is a pure echo.
func (h *ItemHandler) Create(c echo.Context, req *model.Item) (*model.Item, error) {
	return req, nil
}
