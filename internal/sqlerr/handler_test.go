package sqlerr

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/Nikil-Srinivasan/Stint360-API/internal/errs"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "dangling foreign key",
			err: &pgconn.PgError{
				Code:       "23503",
				Severity:   "ERROR",
				TableName:  "employees",
				ColumnName: "department_id",
				Message:    `insert or update on table "employees" violates foreign key constraint`,
			},
			want: "The referenced Department does not exist",
		},
		{
			name: "delete restricted by children",
			err: &pgconn.PgError{
				Code:      "23503",
				Severity:  "ERROR",
				TableName: "employees",
				Detail:    `Key (department_id)=(1) is still referenced from table "employees".`,
			},
			want: "The Department is still referenced by Employee records",
		},
		{
			name: "unique constraint with column",
			err: &pgconn.PgError{
				Code:           "23505",
				Severity:       "ERROR",
				TableName:      "managers",
				ConstraintName: "managers_department_id_key",
			},
			want: "A Manager with this Id already exists",
		},
		{
			name: "prefixed unique constraint",
			err: &pgconn.PgError{
				Code:           "23505",
				Severity:       "ERROR",
				TableName:      "managers",
				ConstraintName: "unique_managers_department",
			},
			want: "A Manager with this Department already exists",
		},
		{
			name: "not null",
			err:  &pgconn.PgError{Code: "23502", ColumnName: "task_name"},
			want: "The Task Name is required",
		},
		{
			name: "unmapped code keeps server message",
			err:  &pgconn.PgError{Code: "42P01", Message: `relation "nope" does not exist`},
			want: `relation "nope" does not exist`,
		},
		{
			name: "wrapped driver error",
			err:  fmt.Errorf("insert employee: %w", &pgconn.PgError{Code: "23514", ColumnName: "employee_age"}),
			want: "The Employee Age value does not meet required conditions",
		},
		{
			name: "cancelled",
			err:  fmt.Errorf("select: %w", context.Canceled),
			want: "The request was cancelled",
		},
		{
			name: "other error",
			err:  errors.New("sql: database is closed"),
			want: "sql: database is closed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}

	assert.Empty(t, UserMessage(nil))
}

func TestHandleError(t *testing.T) {
	t.Run("http errors pass through", func(t *testing.T) {
		in := errs.NewUnauthorizedError("nope", false)
		assert.Same(t, in, HandleError(in))
	})

	t.Run("foreign key becomes bad request", func(t *testing.T) {
		err := HandleError(&pgconn.PgError{Code: "23503", TableName: "employee_tasks", ColumnName: "employee_id"})
		var httpErr *errs.HTTPError
		require.True(t, errors.As(err, &httpErr))
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.Equal(t, "EMPLOYEE_TASK_NOT_FOUND", httpErr.Code)
		assert.Equal(t, "The referenced Employee does not exist", httpErr.Message)
	})

	t.Run("not null carries field error", func(t *testing.T) {
		err := HandleError(&pgconn.PgError{Code: "23502", TableName: "departments", ColumnName: "department_name"})
		var httpErr *errs.HTTPError
		require.True(t, errors.As(err, &httpErr))
		require.Len(t, httpErr.Errors, 1)
		assert.Equal(t, "department_name", httpErr.Errors[0].Field)
	})

	t.Run("no rows", func(t *testing.T) {
		var httpErr *errs.HTTPError
		require.True(t, errors.As(HandleError(sql.ErrNoRows), &httpErr))
		assert.Equal(t, http.StatusNotFound, httpErr.Status)
	})

	t.Run("unknown", func(t *testing.T) {
		var httpErr *errs.HTTPError
		require.True(t, errors.As(HandleError(errors.New("boom")), &httpErr))
		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	})
}

func TestErrCode(t *testing.T) {
	assert.Equal(t, UniqueViolation, ErrCode(&pgconn.PgError{Code: "23505"}))
	assert.Equal(t, ForeignKeyViolation, ErrCode(ConvertPgError(&pgconn.PgError{Code: "23503"})))
	assert.Equal(t, Other, ErrCode(errors.New("x")))
	assert.Equal(t, SeverityUnknown, MapSeverity("LOG"))
}
