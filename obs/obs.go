// Package obs provides request-level tracing and metrics for API calls.
// It records against the globally installed OpenTelemetry providers; the
// embedding application decides whether and where telemetry is exported.
package obs

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const scope = "github.com/gebeyahub/gebeya-go/obs"

// Tracer returns the SDK tracer.
func Tracer() trace.Tracer {
	return otel.Tracer(scope)
}

// Meter returns the SDK meter.
func Meter() metric.Meter {
	return otel.Meter(scope)
}
