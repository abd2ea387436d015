// Package dto defines the request and response shapes of the API and the
// mapping between them and the store models.
//
// Update DTOs use pointer fields: a nil field leaves the stored value unchanged.
package dto

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports field errors under their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return v
}

// NoParams is the request of routes that take no input.
type NoParams struct{}

func (*NoParams) Validate() error { return nil }

// IDQuery carries the ?id= parameter. A missing id binds as 0 and the
// lookup reports it as not found.
type IDQuery struct {
	ID int `query:"id" json:"-"`
}

func (*IDQuery) Validate() error { return nil }
