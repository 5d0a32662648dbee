package httptransport

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wcg/internal/platform/health"
	"wcg/internal/platform/metrics"
	"wcg/internal/registration"
	"wcg/pkg/citizen"
	"wcg/pkg/platform/httputil"
	request "wcg/pkg/platform/middleware/request"
	"wcg/pkg/testutil"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := prometheus.NewRegistry()
	module := registration.NewModule(logger, metrics.New(reg))

	router := NewRouter(logger, RouterConfig{Latency: request.NewMetrics(reg)},
		module.Handler,
		health.New("test"),
	)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func send(t *testing.T, srv *httptest.Server, method, path string, rec citizen.Record) (int, string, http.Header) {
	t.Helper()
	req, err := http.NewRequest(method, srv.URL+path, strings.NewReader(rec.Form().Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body httputil.FeedbackResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body.Feedback, resp.Header
}

func TestRouter_RegistrationLifecycle(t *testing.T) {
	srv := newTestServer(t)
	rec := testutil.DefaultCitizen()

	status, feedback, header := send(t, srv, http.MethodPost, "/registration", rec)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, citizen.FeedbackSuccess, feedback)
	assert.NotEmpty(t, header.Get("X-Request-ID"))

	_, feedback, _ = send(t, srv, http.MethodPost, "/registration", rec)
	assert.Equal(t, citizen.FeedbackAlreadyRegistered, feedback)

	status, feedback, _ = send(t, srv, http.MethodDelete, "/citizen", rec)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, citizen.FeedbackRemoved, feedback)

	_, feedback, _ = send(t, srv, http.MethodPost, "/registration", rec)
	assert.Equal(t, citizen.FeedbackSuccess, feedback)
}

func TestRouter_Rejections(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name     string
		rec      citizen.Record
		feedback string
	}{
		{"missing attribute", testutil.NewCitizenBuilder().Without(citizen.FieldAddress).Build(), citizen.FeedbackMissingAttribute},
		{"invalid citizen ID", testutil.NewCitizenBuilder().WithCitizenID("11011011").Build(), citizen.FeedbackInvalidCitizenID},
		{"invalid birth date", testutil.NewCitizenBuilder().WithBirthDate("1990-13-45").Build(), citizen.FeedbackInvalidBirthDate},
		{"below minimum age", testutil.NewCitizenBuilder().WithBirthDate("15 Jan 2020").Build(), citizen.FeedbackBelowMinimumAge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, feedback, _ := send(t, srv, http.MethodPost, "/registration", tt.rec)
			assert.Equal(t, http.StatusBadRequest, status)
			assert.Equal(t, tt.feedback, feedback)
		})
	}
}

func TestRouter_ResetOfUnknownCitizenIsHarmless(t *testing.T) {
	srv := newTestServer(t)

	status, feedback, _ := send(t, srv, http.MethodDelete, "/citizen", testutil.DefaultCitizen())
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, citizen.FeedbackNotFound, feedback)
}

func TestRouter_Health(t *testing.T) {
	srv := newTestServer(t)

	resp, err := srv.Client().Get(srv.URL + "/health/ready")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
