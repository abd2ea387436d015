package errs

import "errors"

// Kind classifies a business failure.
type Kind string

const (
	// KindNotFound means no row matched the requested id.
	KindNotFound Kind = "NOT_FOUND"

	// KindStoreFailure covers every other error coming back from the store
	// (constraint violations, connectivity, cancelled contexts).
	KindStoreFailure Kind = "STORE_FAILURE"
)

// ServiceError is the error returned by the service layer.
//
// Message is what ends up in the envelope; Err keeps the underlying cause
// for logs and errors.Is/As.
type ServiceError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewNotFound builds a KindNotFound error.
func NewNotFound(message string) *ServiceError {
	return &ServiceError{Kind: KindNotFound, Message: message}
}

// NewStoreFailure builds a KindStoreFailure error wrapping cause.
func NewStoreFailure(message string, cause error) *ServiceError {
	return &ServiceError{Kind: KindStoreFailure, Message: message, Err: cause}
}

// KindOf returns the Kind of the first ServiceError in err's chain.
// Errors that are not ServiceErrors are reported as store failures.
func KindOf(err error) Kind {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Kind
	}
	return KindStoreFailure
}

// IsNotFound reports whether err carries KindNotFound.
func IsNotFound(err error) bool {
	return err != nil && KindOf(err) == KindNotFound
}
