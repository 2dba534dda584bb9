package errs

import "strings"

// FieldError describes a single invalid field in a request payload.
type FieldError struct {
	// Field is the JSON name of the offending field (e.g. "price").
	Field string `json:"field"`

	// Error is the human-readable message for that field.
	Error string `json:"error"`
}

// HTTPError is the error envelope serialized to API clients.
//
// Code is a stable machine-readable identifier derived from the HTTP
// status text (e.g. "BAD_REQUEST"), Message is for humans, and Errors
// carries per-field validation detail when present.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`

	Errors []FieldError `json:"errors,omitempty"`
}

// Error satisfies the error interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError, so
// errors.Is(err, &HTTPError{}) can be used for coarse matching.
// It deliberately does not compare Code or Status.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy of the error with only Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:    e.Code,
		Message: message,
		Status:  e.Status,
		Errors:  e.Errors,
	}
}

// MakeUpperCaseWithUnderscores converts an HTTP status text into a
// stable error code, e.g. "Bad Request" -> "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
