// Package envelope defines the uniform {data, success, message} body every
// API route answers with.
package envelope

import "github.com/Nikil-Srinivasan/Stint360-API/internal/errs"

// Envelope wraps a service result. On failure Data is null and Message holds
// the error text; on success Message is empty.
type Envelope[T any] struct {
	Data    *T     `json:"data"`
	Success bool   `json:"success"`
	Message string `json:"message"`

	kind errs.Kind
}

// From converts a service result into an envelope.
func From[T any](data T, err error) Envelope[T] {
	if err != nil {
		return Envelope[T]{
			Success: false,
			Message: err.Error(),
			kind:    errs.KindOf(err),
		}
	}
	return Envelope[T]{Data: &data, Success: true}
}

// Failed reports whether the wrapped result was an error.
func (e Envelope[T]) Failed() bool {
	return !e.Success
}

// FailureKind returns the error kind of a failed envelope, empty on success.
func (e Envelope[T]) FailureKind() errs.Kind {
	return e.kind
}

// FailureMessage returns Message; together with Failed and FailureKind it
// lets callers inspect an envelope without knowing T.
func (e Envelope[T]) FailureMessage() string {
	return e.Message
}

// Result is satisfied by every Envelope instantiation.
type Result interface {
	Failed() bool
	FailureKind() errs.Kind
	FailureMessage() string
}
