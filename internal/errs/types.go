package errs

import "net/http"

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// fieldErrors is optional; pass the per-field validation errors when
// the failure came from payload validation, nil otherwise.
func NewBadRequestError(message string, fieldErrors []FieldError) *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest)),
		Message: message,
		Status:  http.StatusBadRequest,
		Errors:  fieldErrors,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string) *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound)),
		Message: message,
		Status:  http.StatusNotFound,
	}
}

// NewInternalServerError creates a generic 500 HTTPError.
//
// The message is the plain status text on purpose: internal detail
// belongs in logs, not in responses.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message: http.StatusText(http.StatusInternalServerError),
		Status:  http.StatusInternalServerError,
	}
}
