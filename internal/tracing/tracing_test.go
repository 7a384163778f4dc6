package tracing

import (
	"context"
	"testing"

	"github.com/aaravmahajanofficial/storefront/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestInit(t *testing.T) {
	t.Run("Success - Disabled", func(t *testing.T) {
		shutdown, err := Init(context.Background(), &config.OtelConfig{Enabled: false}, "test")

		require.NoError(t, err)
		assert.NoError(t, shutdown(context.Background()))
		assert.NotNil(t, otel.GetTextMapPropagator())
	})

	t.Run("Success - Enabled", func(t *testing.T) {
		prev := otel.GetTracerProvider()
		t.Cleanup(func() { otel.SetTracerProvider(prev) })

		shutdown, err := Init(context.Background(), &config.OtelConfig{
			Enabled:          true,
			ServiceName:      "storefront-test",
			ExporterEndpoint: "http://localhost:4318/v1/traces",
			SamplerRatio:     1.0,
		}, "test")

		require.NoError(t, err)
		_, ok := otel.GetTracerProvider().(*sdktrace.TracerProvider)
		assert.True(t, ok)
		assert.NoError(t, shutdown(context.Background()))
	})
}

func TestTracer(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	recorder := tracetest.NewSpanRecorder()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))

	_, span := Tracer().Start(context.Background(), "catalog.list")
	span.End()

	require.Len(t, recorder.Ended(), 1)
	assert.Equal(t, "catalog.list", recorder.Ended()[0].Name())
}
