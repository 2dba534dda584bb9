package validation

import (
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kyrelabs/items-api/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Validatable is implemented by request payload types that know how to
// validate themselves.
//
// The usual pattern: declare validator tags on the struct
// (`validate:"required"`) and implement Validate() by running the
// validator, returning validator.ValidationErrors on failure. Custom
// checks that tags cannot express return CustomValidationErrors.
type Validatable interface {
	Validate() error
}

// CustomValidationError is a single validation issue for one field,
// used for rules that cannot be expressed via validator tags.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that
// satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// BindAndValidate binds a request into payload and validates it.
//
// Flow:
//  1. c.Bind populates payload from body and path/query params.
//  2. payload.Validate() applies the schema rules.
//  3. Failures become a 400 *errs.HTTPError with field errors.
//
// payload must be a pointer so Bind can populate it. A type mismatch
// in the body (e.g. a string where a number is declared) fails at the
// bind step, so handler logic never runs on a mistyped payload.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return errs.NewBadRequestError(bindErrorMessage(err), nil)
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewBadRequestError(msg, fieldErrors)
	}

	return nil
}

// bindErrorMessage extracts a client-safe message from an Echo bind
// failure. Echo wraps decode errors in *echo.HTTPError with the
// underlying cause in Message.
func bindErrorMessage(err error) string {
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if msg, ok := echoErr.Message.(string); ok && msg != "" {
			return msg
		}
		if echoErr.Internal != nil {
			return echoErr.Internal.Error()
		}
		return http.StatusText(echoErr.Code)
	}
	return "Invalid request payload"
}

func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return "", nil
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		var customErrors CustomValidationErrors
		if errors.As(err, &customErrors) {
			for _, cerr := range customErrors {
				fieldErrors = append(fieldErrors, errs.FieldError{
					Field: cerr.Field,
					Error: cerr.Message,
				})
			}
			return "Validation failed", fieldErrors
		}

		// Validate returned something unexpected. Surface it as a
		// single unnamed field error rather than dropping it.
		return "Validation failed", []errs.FieldError{{Field: "", Error: err.Error()}}
	}

	for _, ferr := range validationErrors {
		field := strings.ToLower(ferr.Field())
		var msg string

		switch ferr.Tag() {
		case "required":
			msg = "is required"

		case "min":
			if ferr.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", ferr.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", ferr.Param())
			}

		case "max":
			if ferr.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", ferr.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", ferr.Param())
			}

		case "gt":
			msg = fmt.Sprintf("must be greater than %s", ferr.Param())

		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", ferr.Param())

		default:
			if ferr.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, ferr.Tag(), ferr.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, ferr.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	return "Validation failed", fieldErrors
}
