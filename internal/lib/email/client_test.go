package email

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/Nikil-Srinivasan/Stint360-API/internal/config"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := zerolog.Nop()
	c := NewClient(&config.Config{
		Integration: config.IntegrationConfig{ResendAPIKey: "re_test", EmailFrom: "Stint360 <noreply@example.com>"},
	}, &logger)

	base, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)
	c.client.BaseURL = base

	return c
}

func TestSendEmailWrapsFailureWithStack(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = io.WriteString(w, `{"statusCode":422,"name":"validation_error","message":"invalid to"}`)
	})

	err := c.SendEmail("jane@example.com", "New task", TemplateTaskAssigned, PreviewData[TemplateTaskAssigned])
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send email")

	_, hasStack := err.(interface{ StackTrace() errors.StackTrace })
	assert.True(t, hasStack)
}

func TestSendEmailPostsRenderedBody(t *testing.T) {
	var body string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		body = string(b)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"email_1"}`)
	})

	require.NoError(t, c.SendEmail("jane@example.com", "New task", TemplateTaskAssigned, PreviewData[TemplateTaskAssigned]))
	assert.Contains(t, body, "jane@example.com")
	assert.Contains(t, body, "Quarterly report")
}
