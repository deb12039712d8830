package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockPinger struct {
	pingFunc func(ctx context.Context) error
}

func (m *mockPinger) Ping(ctx context.Context) error {
	if m.pingFunc != nil {
		return m.pingFunc(ctx)
	}
	return nil
}

func newTestMux(db *mockPinger, metrics http.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	NewHealthHandler(db, metrics, "credit-service", slog.New(slog.NewTextHandler(io.Discard, nil))).RegisterRoutes(mux)
	return mux
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestHealthHandler(t *testing.T) {
	t.Run("liveness does not touch the database", func(t *testing.T) {
		db := &mockPinger{pingFunc: func(context.Context) error {
			t.Fatal("liveness must not ping")
			return nil
		}}
		rec := httptest.NewRecorder()

		newTestMux(db, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.Equal(t, "ok", decodeBody(t, rec)["status"])
	})

	t.Run("ready when the database answers", func(t *testing.T) {
		rec := httptest.NewRecorder()

		newTestMux(&mockPinger{}, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ready", decodeBody(t, rec)["status"])
	})

	t.Run("unavailable when the database is down", func(t *testing.T) {
		db := &mockPinger{pingFunc: func(context.Context) error { return errors.New("connection refused") }}
		rec := httptest.NewRecorder()

		newTestMux(db, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "unreachable", decodeBody(t, rec)["database"])
	})

	t.Run("serves metrics when configured", func(t *testing.T) {
		metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, "credit_grpc_requests_total 3\n")
		})
		rec := httptest.NewRecorder()

		newTestMux(&mockPinger{}, metrics).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "credit_grpc_requests_total")
	})

	t.Run("metrics absent without a handler", func(t *testing.T) {
		rec := httptest.NewRecorder()

		newTestMux(&mockPinger{}, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
