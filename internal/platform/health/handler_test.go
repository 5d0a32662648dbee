package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	count int
	err   error
}

func (s stubStore) Count(context.Context) (int, error) {
	return s.count, s.err
}

func serve(h *Handler, path string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	h.Register(r)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestLiveness(t *testing.T) {
	rec := serve(New("test"), "/health/live")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"alive"}`, rec.Body.String())
}

func TestReadiness(t *testing.T) {
	t.Run("no checks is ready", func(t *testing.T) {
		rec := serve(New("test"), "/health/ready")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ready"}`, rec.Body.String())
	})

	t.Run("store check up", func(t *testing.T) {
		rec := serve(New("test", WithStore(stubStore{count: 2})), "/health/ready")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ready","checks":{"store":"up"}}`, rec.Body.String())
	})

	t.Run("failing store reports every check", func(t *testing.T) {
		h := New("test", WithStore(stubStore{err: errors.New("store closed")}))
		h.AddCheck("seed", func(context.Context) error { return nil })

		rec := serve(h, "/health/ready")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

		var resp ReadinessResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "not_ready", resp.Status)
		assert.Equal(t, "down: store closed", resp.Checks["store"])
		assert.Equal(t, "up", resp.Checks["seed"])
	})

	t.Run("checks get a deadline", func(t *testing.T) {
		h := New("test")
		h.AddCheck("deadline", func(ctx context.Context) error {
			if _, ok := ctx.Deadline(); !ok {
				return errors.New("no deadline")
			}
			return nil
		})
		assert.Equal(t, http.StatusOK, serve(h, "/health/ready").Code)
	})
}

func TestStatus(t *testing.T) {
	start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	now := start
	h := New("ci", WithStore(stubStore{count: 3}), withClock(func() time.Time { return now }))
	now = start.Add(90 * time.Second)

	rec := serve(h, "/health")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, ServiceName, resp.Service)
	assert.Equal(t, "ci", resp.Environment)
	assert.Equal(t, int64(90), resp.UptimeSeconds)
	require.NotNil(t, resp.RegisteredCitizens)
	assert.Equal(t, 3, *resp.RegisteredCitizens)
}

func TestStatus_StoreErrorDegrades(t *testing.T) {
	rec := serve(New("ci", WithStore(stubStore{err: errors.New("boom")})), "/health")

	var resp StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "degraded", resp.Status)
	assert.Nil(t, resp.RegisteredCitizens)
}
