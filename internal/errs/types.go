package errs

import (
	"net/http"
)

func newHTTPError(status int, message string, override bool) *HTTPError {
	return &HTTPError{
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(status)),
		Message:  message,
		Status:   status,
		Override: override,
	}
}

// NewUnauthorizedError answers a request without a valid session.
func NewUnauthorizedError(message string, override bool) *HTTPError {
	return newHTTPError(http.StatusUnauthorized, message, override)
}

// NewBadRequestError answers a malformed or invalid request. code replaces
// the default BAD_REQUEST when non-nil; errors carries per-field failures.
func NewBadRequestError(message string, override bool, code *string, errors []FieldError, action *Action) *HTTPError {
	err := newHTTPError(http.StatusBadRequest, message, override)
	if code != nil {
		err.Code = *code
	}
	err.Errors = errors
	err.Action = action
	return err
}

// NewNotFoundError is for unknown routes. A missing row is a ServiceError.
func NewNotFoundError(message string, override bool, code *string) *HTTPError {
	err := newHTTPError(http.StatusNotFound, message, override)
	if code != nil {
		err.Code = *code
	}
	return err
}

// NewTooManyRequestsError is returned by the rate limiter.
func NewTooManyRequestsError(message string) *HTTPError {
	return newHTTPError(http.StatusTooManyRequests, message, true)
}

// NewInternalServerError never carries the underlying error text.
func NewInternalServerError() *HTTPError {
	return newHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError), false)
}
