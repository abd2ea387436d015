// Package validation binds request data and turns validator failures into
// field-level 400 responses.
package validation

import (
	"fmt"
	"net/http"
	"reflect"

	"github.com/Nikil-Srinivasan/Stint360-API/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Validatable is implemented by request payloads.
type Validatable interface {
	Validate() error
}

// CustomValidationError is a field issue that struct tags cannot express.
type CustomValidationError struct {
	Field   string
	Message string
}

type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

var binder = &echo.DefaultBinder{}

// BindAndValidate binds the request into payload and validates it.
//
// echo only binds query parameters for GET, DELETE and HEAD. Write methods
// carry the target id in the query string too, so those are bound here
// as well.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return bindError(err)
	}

	switch c.Request().Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		if err := binder.BindQueryParams(c, payload); err != nil {
			return bindError(err)
		}
	}

	if err := payload.Validate(); err != nil {
		msg, fieldErrors := extractValidationError(err)
		return errs.NewBadRequestError(msg, true, nil, fieldErrors, nil)
	}

	return nil
}

func bindError(err error) error {
	message := "Invalid request payload"

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if msg, ok := echoErr.Message.(string); ok && msg != "" {
			message = msg
		}
	}

	return errs.NewBadRequestError(message, false, nil, nil, nil)
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	var customErrors CustomValidationErrors
	if errors.As(err, &customErrors) {
		for _, e := range customErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: e.Field,
				Error: e.Message,
			})
		}
		return "Validation failed", fieldErrors
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error(), nil
	}

	for _, e := range validationErrors {
		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: e.Field(),
			Error: fieldMessage(e),
		})
	}

	return "Validation failed", fieldErrors
}

func fieldMessage(e validator.FieldError) string {
	isString := e.Kind() == reflect.String

	switch e.Tag() {
	case "required":
		return "is required"
	case "min":
		if isString {
			return fmt.Sprintf("must be at least %s characters", e.Param())
		}
		return fmt.Sprintf("must be at least %s", e.Param())
	case "max":
		if isString {
			return fmt.Sprintf("must not exceed %s characters", e.Param())
		}
		return fmt.Sprintf("must not exceed %s", e.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", e.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", e.Param())
	case "lte":
		return fmt.Sprintf("must not exceed %s", e.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", e.Param())
	case "email":
		return "must be a valid email address"
	case "e164":
		return "must be a valid phone number with country code"
	case "dive":
		return "some items are invalid"
	default:
		if e.Param() != "" {
			return fmt.Sprintf("%s: %s:%s", e.Field(), e.Tag(), e.Param())
		}
		return fmt.Sprintf("%s: %s", e.Field(), e.Tag())
	}
}
