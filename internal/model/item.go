// Package model holds the request/response schemas of the API.
//
// Schemas carry their own validation rules via validator tags and a
// Validate method, so they can be checked without going through an
// HTTP request.
package model

import "github.com/go-playground/validator/v10"

// validate is the shared validator instance. It is stateless and safe
// for concurrent use.
var validate = validator.New()

// Item is the payload accepted and echoed by the item creation
// endpoint.
//
// Price and Tax are pointers so that "absent" and "zero" stay
// distinguishable: a price of 0 is a valid value, a missing price is
// a validation error. Optional fields marshal with omitempty so a
// field absent in the request is absent in the response.
type Item struct {
	Name        string   `json:"name" validate:"required"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price" validate:"required"`
	Tax         *float64 `json:"tax,omitempty"`
}

// Validate applies the struct tag rules and returns
// validator.ValidationErrors on failure.
func (i *Item) Validate() error {
	return validate.Struct(i)
}
