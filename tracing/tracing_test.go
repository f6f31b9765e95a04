package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestInit_RecordsSpans(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp, shutdown := Init("trip-test", sdktrace.WithSyncer(exporter))
	t.Cleanup(func() { _ = shutdown(context.Background()) })

	assert.Same(t, tp, otel.GetTracerProvider())

	_, span := otel.Tracer("test").Start(context.Background(), "plan")
	span.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "plan", spans[0].Name)

	var service string
	for _, kv := range spans[0].Resource.Attributes() {
		if kv.Key == "service.name" {
			service = kv.Value.AsString()
		}
	}
	assert.Equal(t, "trip-test", service)
}
