package obs

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	metricsOnce      sync.Once
	requestCounter   metric.Int64Counter
	errorCounter     metric.Int64Counter
	latencyHistogram metric.Float64Histogram
)

func installMetrics() {
	metricsOnce.Do(func() {
		m := Meter()
		requestCounter, _ = m.Int64Counter("gebeya.requests", metric.WithDescription("Total API requests"))
		errorCounter, _ = m.Int64Counter("gebeya.errors", metric.WithDescription("Failed API requests"))
		latencyHistogram, _ = m.Float64Histogram("gebeya.request.latency_ms", metric.WithDescription("API latency (ms)"))
	})
}

func recordRequest(attrs ...attribute.KeyValue) {
	installMetrics()
	if requestCounter != nil {
		requestCounter.Add(context.Background(), 1, metric.WithAttributes(attrs...))
	}
}

func recordError(attrs ...attribute.KeyValue) {
	installMetrics()
	if errorCounter != nil {
		errorCounter.Add(context.Background(), 1, metric.WithAttributes(attrs...))
	}
}

func recordLatency(ms float64, attrs ...attribute.KeyValue) {
	installMetrics()
	if latencyHistogram != nil {
		latencyHistogram.Record(context.Background(), ms, metric.WithAttributes(attrs...))
	}
}
