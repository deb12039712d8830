package observability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitMetricsServesRecordedCounters(t *testing.T) {
	registry := prometheus.NewRegistry()
	provider, handler, err := InitMetrics(MetricsConfig{
		ServiceName: "credit-service",
		Registerer:  registry,
		Gatherer:    registry,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	counter, err := provider.Meter("test").Int64Counter("snapshots_recorded")
	require.NoError(t, err)
	counter.Add(context.Background(), 3)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "snapshots_recorded")
}
