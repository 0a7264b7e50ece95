package tracing

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestLogProcessorFinishedSpan(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	provider := NewProvider(logger)
	defer provider.Shutdown(context.Background())

	_, span := Tracer(provider).Start(context.Background(), "resolve")
	span.SetAttributes(attribute.Int("series_id", 7))
	span.End()

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.DebugLevel, entry.Level)
	assert.Equal(t, "Span finished", entry.Message)
	assert.Equal(t, "resolve", entry.Data["span"])
	assert.Equal(t, int64(7), entry.Data["series_id"])
}

func TestLogProcessorFailedSpan(t *testing.T) {
	logger, hook := test.NewNullLogger()

	provider := NewProvider(logger)
	defer provider.Shutdown(context.Background())

	_, span := Tracer(provider).Start(context.Background(), "submit")
	span.RecordError(errors.New("boom"))
	span.SetStatus(codes.Error, "boom")
	span.End()

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "boom", entry.Data["error"])
}

func TestProviderRecordsSpans(t *testing.T) {
	logger, _ := test.NewNullLogger()
	recorder := tracetest.NewSpanRecorder()

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(NewLogProcessor(logger)),
		sdktrace.WithSpanProcessor(recorder),
	)

	_, span := Tracer(provider).Start(context.Background(), "pass")
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "pass", ended[0].Name())
}
