package tracing

import (
	"github.com/honeycombio/otel-config-go/otelconfig"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var GlobalTracer = otel.Tracer("trailstats-backend")

// EndSpanWithErrCheck sets the span status from err and ends it.
// Meant to be used via defer with a named err return.
func EndSpanWithErrCheck(span trace.Span, err error) {
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)
	}
	span.End()
}

// OtelSetup configures the OpenTelemetry SDK via the honeycomb
// otelconfig distro. Returns a shutdown function to be deferred.
// When disabled, spans are still created but never exported.
func OtelSetup(enabled bool, serviceName string) (func(), error) {
	if !enabled {
		return func() {}, nil
	}

	otelShutdown, err := otelconfig.ConfigureOpenTelemetry(
		otelconfig.WithServiceName(serviceName),
	)
	if err != nil {
		return nil, err
	}

	log.Debugf("otel tracing set up for service: %s", serviceName)
	return otelShutdown, nil
}
