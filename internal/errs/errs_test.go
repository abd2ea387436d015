package errs

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceErrorKinds(t *testing.T) {
	notFound := NewNotFound("Department with id '7' not found")
	assert.Equal(t, KindNotFound, KindOf(notFound))
	assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", notFound)))
	assert.Equal(t, "Department with id '7' not found", notFound.Error())

	failure := NewStoreFailure("connection refused", sql.ErrConnDone)
	assert.Equal(t, KindStoreFailure, KindOf(failure))
	assert.False(t, IsNotFound(failure))
	assert.True(t, errors.Is(failure, sql.ErrConnDone))

	assert.Equal(t, KindStoreFailure, KindOf(errors.New("plain")))
	assert.False(t, IsNotFound(nil))
}

func TestHTTPErrorConstructors(t *testing.T) {
	code := "DEPARTMENT_NOT_FOUND"
	err := NewBadRequestError("bad", true, &code, []FieldError{{Field: "x", Error: "is required"}}, nil)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, code, err.Code)
	assert.Len(t, err.Errors, 1)

	assert.Equal(t, "NOT_FOUND", NewNotFoundError("Route not found", false, nil).Code)
	assert.Equal(t, "TOO_MANY_REQUESTS", NewTooManyRequestsError("slow down").Code)
	assert.Equal(t, "Internal Server Error", NewInternalServerError().Message)

	copied := err.WithMessage("other")
	assert.Equal(t, "other", copied.Message)
	assert.Equal(t, "bad", err.Message)
	assert.True(t, errors.Is(copied, &HTTPError{}))
}
