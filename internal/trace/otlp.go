// Package trace exports one OpenTelemetry span per session change.
// Export is enabled only when OTEL_EXPORTER_OTLP_ENDPOINT is set.
package trace

import (
	"context"
	"os"

	"chromamem/internal/session"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// InstrumentationName identifies spans produced by this package.
const InstrumentationName = "chromamem/session"

// Tracer turns session changes into spans. A nil *Tracer is valid and
// records nothing.
type Tracer struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// NewFromEnv creates an OTLP/HTTP tracer if OTEL_EXPORTER_OTLP_ENDPOINT is set.
// Returns nil if the endpoint is not configured (disabled).
func NewFromEnv(ctx context.Context) (*Tracer, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return nil, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(), // For local collectors; make configurable
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create OTLP exporter")
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "chromamem"
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	return New(sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)), nil
}

// New wraps an existing provider.
func New(provider *sdktrace.TracerProvider) *Tracer {
	return &Tracer{
		provider: provider,
		tracer:   provider.Tracer(InstrumentationName),
	}
}

// Observe records ch as a span named "sequence.<op>". It has the
// session.Listener signature so it can be passed to Subscribe.
func (t *Tracer) Observe(ch session.Change) {
	if t == nil {
		return
	}
	_, span := t.tracer.Start(context.Background(), "sequence."+string(ch.Op),
		oteltrace.WithTimestamp(ch.At),
		oteltrace.WithAttributes(changeAttributes(ch)...),
	)
	span.End(oteltrace.WithTimestamp(ch.At))
}

func changeAttributes(ch session.Change) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.Int("chromamem.length", ch.Len),
	}
	switch ch.Op {
	case session.OpAppend, session.OpRemove:
		attrs = append(attrs,
			attribute.String("chromamem.color", ch.Entry.Color.String()),
			attribute.Int("chromamem.index", ch.Entry.Index),
		)
	case session.OpRemoveMiss:
		attrs = append(attrs, attribute.Int("chromamem.index", ch.Entry.Index))
	case session.OpClear:
		attrs = append(attrs, attribute.Int("chromamem.removed", ch.Removed))
	}
	return attrs
}

// Shutdown flushes and closes the exporter.
func (t *Tracer) Shutdown(ctx context.Context) error {
	if t == nil {
		return nil
	}
	return t.provider.Shutdown(ctx)
}
