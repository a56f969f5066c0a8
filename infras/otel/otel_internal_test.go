package otel

import (
	"context"
	"errors"
	"pakt/config"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestScope_RecordsSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	ot := newOtel(trace.NewTracerProvider(trace.WithSpanProcessor(recorder)))

	_, scope := ot.NewScope(context.Background(), "service", "signature.Sign")
	scope.SetAttributes(map[string]any{
		"url":      "/v1/timezone",
		"verbose":  true,
		"attempts": 2,
		"ts":       int64(1705314600000),
		"ratio":    0.5,
		"elapsed":  1500 * time.Millisecond,
	})
	scope.AddEvent("signed")
	scope.TraceIfError(nil)
	scope.TraceIfError(errors.New("boom"))
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	span := spans[0]
	assert.Equal(t, "signature.Sign", span.Name())
	assert.Equal(t, "service", span.InstrumentationScope().Name)
	assert.Equal(t, codes.Error, span.Status().Code)
	assert.Equal(t, "boom", span.Status().Description)
	assert.Contains(t, span.Attributes(), attribute.String("url", "/v1/timezone"))
	assert.Contains(t, span.Attributes(), attribute.Bool("verbose", true))
	assert.Contains(t, span.Attributes(), attribute.Int("attempts", 2))
	assert.Contains(t, span.Attributes(), attribute.Int64("ts", 1705314600000))
	assert.Contains(t, span.Attributes(), attribute.Float64("ratio", 0.5))
	assert.Contains(t, span.Attributes(), attribute.Int64("elapsed", 1500))
	assert.Contains(t, span.Attributes(), attribute.Int("error.code", 500))
	require.Len(t, span.Events(), 2)
	assert.Equal(t, "signed", span.Events()[0].Name)

	require.NoError(t, ot.Shutdown(context.Background()))
}

func TestNew_WithoutEndpoint(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Name = "pakt"

	ot := New(cfg)

	ctx, scope := ot.NewScope(context.Background(), "handler", "noop")
	assert.NotNil(t, ctx)
	scope.End()

	assert.NoError(t, ot.Shutdown(context.Background()))
}
