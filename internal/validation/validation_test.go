package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Nikil-Srinivasan/Stint360-API/internal/dto"
	"github.com/Nikil-Srinivasan/Stint360-API/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(method, target, body string) echo.Context {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestBindAndValidateBindsQueryOnWrite(t *testing.T) {
	c := newContext(http.MethodPut, "/api/Department/UpdateDepartment?id=7", `{"departmentName":"Ops"}`)

	var payload dto.UpdateDepartmentDto
	require.NoError(t, BindAndValidate(c, &payload))

	assert.Equal(t, 7, payload.ID)
	require.NotNil(t, payload.DepartmentName)
	assert.Equal(t, "Ops", *payload.DepartmentName)
}

func TestBindAndValidateBindsQueryOnRead(t *testing.T) {
	c := newContext(http.MethodGet, "/api/Department/GetDepartmentById?id=3", "")

	var payload dto.IDQuery
	require.NoError(t, BindAndValidate(c, &payload))
	assert.Equal(t, 3, payload.ID)
}

func TestBindAndValidateFieldErrors(t *testing.T) {
	c := newContext(http.MethodPost, "/api/Department/CreateDepartment", `{}`)

	err := BindAndValidate(c, &dto.AddDepartmentDto{})
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Validation failed", httpErr.Message)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "departmentName", httpErr.Errors[0].Field)
	assert.Equal(t, "is required", httpErr.Errors[0].Error)
}

func TestBindAndValidateOneOf(t *testing.T) {
	c := newContext(http.MethodPut, "/api/EmployeeTask/UpdateEmployeeTaskStatus?id=1", `{"taskStatus":"archived"}`)

	err := BindAndValidate(c, &dto.UpdateEmployeeTaskStatusDto{})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "taskStatus", httpErr.Errors[0].Field)
	assert.Equal(t, "must be one of: pending in_progress completed", httpErr.Errors[0].Error)
}

func TestBindAndValidateMalformedBody(t *testing.T) {
	c := newContext(http.MethodPost, "/api/Department/CreateDepartment", `{"departmentName":`)

	err := BindAndValidate(c, &dto.AddDepartmentDto{})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.NotEmpty(t, httpErr.Message)
	assert.Empty(t, httpErr.Errors)
}

func TestBindAndValidateBadQueryType(t *testing.T) {
	c := newContext(http.MethodGet, "/api/Department/GetDepartmentById?id=abc", "")

	err := BindAndValidate(c, &dto.IDQuery{})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
}

type customPayload struct{}

func (customPayload) Validate() error {
	return CustomValidationErrors{{Field: "range", Message: "end must follow start"}}
}

func TestBindAndValidateCustomErrors(t *testing.T) {
	c := newContext(http.MethodGet, "/", "")

	err := BindAndValidate(c, &customPayload{})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, []errs.FieldError{{Field: "range", Error: "end must follow start"}}, httpErr.Errors)
}
