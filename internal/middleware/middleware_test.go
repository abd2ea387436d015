package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Nikil-Srinivasan/Stint360-API/internal/config"
	"github.com/Nikil-Srinivasan/Stint360-API/internal/errs"
	"github.com/Nikil-Srinivasan/Stint360-API/internal/server"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *server.Server {
	logger := zerolog.Nop()
	return &server.Server{
		Config: &config.Config{Primary: config.Primary{Env: "test"}},
		Logger: &logger,
	}
}

func runErrorHandler(t *testing.T, err error) (int, errs.HTTPError) {
	t.Helper()

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	NewGlobalMiddlewares(newTestServer()).GlobalErrorHandler(err, c)

	var body errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestGlobalErrorHandler(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{
			name:   "http error passes through",
			err:    errs.NewBadRequestError("bad", false, nil, nil, nil),
			status: http.StatusBadRequest,
			code:   "BAD_REQUEST",
		},
		{
			name:   "wrapped http error",
			err:    errors.Wrap(errs.NewTooManyRequestsError("slow down"), "limiter"),
			status: http.StatusTooManyRequests,
			code:   "TOO_MANY_REQUESTS",
		},
		{
			name:   "unknown route",
			err:    echo.ErrNotFound,
			status: http.StatusNotFound,
			code:   "NOT_FOUND",
		},
		{
			name:   "method not allowed",
			err:    echo.ErrMethodNotAllowed,
			status: http.StatusMethodNotAllowed,
			code:   "METHOD_NOT_ALLOWED",
		},
		{
			name:   "unexpected error",
			err:    errors.New("boom"),
			status: http.StatusInternalServerError,
			code:   "INTERNAL_SERVER_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := runErrorHandler(t, tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.status, body.Status)
			assert.Equal(t, tt.code, body.Code)
		})
	}
}

func TestUnexpectedErrorMessageIsNotLeaked(t *testing.T) {
	_, body := runErrorHandler(t, errors.New("pq: password authentication failed"))
	assert.Equal(t, "Internal Server Error", body.Message)
}

func TestRequestID(t *testing.T) {
	e := echo.New()
	var seen string
	h := RequestID()(func(c echo.Context) error {
		seen = GetRequestID(c)
		return nil
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc")
	require.NoError(t, h(e.NewContext(req, rec)))
	assert.Equal(t, "abc", seen)
	assert.Equal(t, "abc", rec.Header().Get(RequestIDHeader))

	rec = httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)))
	assert.Len(t, seen, 36)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
}

func TestEnhanceContextStoresLogger(t *testing.T) {
	e := echo.New()
	h := NewContextEnhancer(newTestServer()).EnhanceContext()(func(c echo.Context) error {
		assert.NotNil(t, c.Get(LoggerKey))
		assert.NotNil(t, zerolog.Ctx(c.Request().Context()))
		return nil
	})

	require.NoError(t, h(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())))
}

func TestGetLoggerWithoutEnhancer(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.NotNil(t, GetLogger(c))
	assert.Empty(t, GetUserID(c))
}

func TestRateLimitDisabled(t *testing.T) {
	s := newTestServer()
	called := 0
	h := NewRateLimitMiddleware(s).Limit()(func(c echo.Context) error {
		called++
		return nil
	})

	e := echo.New()
	for range 10 {
		require.NoError(t, h(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())))
	}
	assert.Equal(t, 10, called)
}

func TestRequestIDRejectsUnsafeHeader(t *testing.T) {
	e := echo.New()
	h := RequestID()(func(c echo.Context) error { return nil })

	for _, header := range []string{"has space", "line\nbreak", strings.Repeat("a", 129)} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, header)
		require.NoError(t, h(e.NewContext(req, rec)))

		got := rec.Header().Get(RequestIDHeader)
		assert.NotEqual(t, header, got)
		_, err := uuid.Parse(got)
		assert.NoError(t, err)
	}
}

func TestAPIRoute(t *testing.T) {
	entity, action, ok := apiRoute("/api/EmployeeTask/UpdateEmployeeTaskStatus")
	require.True(t, ok)
	assert.Equal(t, "EmployeeTask", entity)
	assert.Equal(t, "UpdateEmployeeTaskStatus", action)

	for _, path := range []string{"/status", "/api/Department", "/api//x", ""} {
		_, _, ok := apiRoute(path)
		assert.False(t, ok, path)
	}
}
