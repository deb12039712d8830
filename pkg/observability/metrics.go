package observability

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// MetricsConfig holds metrics configuration.
type MetricsConfig struct {
	ServiceName string
	// Registerer defaults to the Prometheus default registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// InitMetrics initializes the Prometheus metrics exporter and installs the
// resulting MeterProvider globally. It returns the provider and the handler
// serving the /metrics endpoint.
func InitMetrics(cfg MetricsConfig) (*sdkmetric.MeterProvider, http.Handler, error) {
	registerer := cfg.Registerer
	gatherer := cfg.Gatherer
	if registerer == nil || gatherer == nil {
		registerer = prometheus.DefaultRegisterer
		gatherer = prometheus.DefaultGatherer
	}

	exporter, err := promexporter.New(promexporter.WithRegisterer(registerer))
	if err != nil {
		return nil, nil, fmt.Errorf("observability: prometheus exporter: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
		sdkmetric.WithResource(resource.NewSchemaless(semconv.ServiceName(cfg.ServiceName))),
	)
	otel.SetMeterProvider(provider)

	return provider, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}), nil
}
