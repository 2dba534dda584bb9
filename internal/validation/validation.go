// Package validation binds and validates request payloads.
//
// It uses the validator library to enforce rules declared as struct
// tags (required fields, bounds, formats) and converts failures into
// the field-level error format clients receive. Binding and validation
// both run before any handler logic, so a handler body only ever sees
// a well-formed payload.
package validation
