package tracing

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentationName names the tracer used across the reconciler
const InstrumentationName = "github.com/amaumene/seasonsync"

// NewProvider creates a tracer provider that writes finished spans to the logger
func NewProvider(logger *logrus.Logger) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithSpanProcessor(NewLogProcessor(logger)),
	)
}

// Tracer returns the reconciler tracer from the provider
func Tracer(provider trace.TracerProvider) trace.Tracer {
	return provider.Tracer(InstrumentationName)
}

// LogProcessor is a span processor emitting one debug entry per finished span
// and an error entry for spans ending in error.
type LogProcessor struct {
	logger *logrus.Logger
}

// NewLogProcessor creates a new log processor
func NewLogProcessor(logger *logrus.Logger) *LogProcessor {
	return &LogProcessor{logger: logger}
}

func (p *LogProcessor) OnStart(parent context.Context, s sdktrace.ReadWriteSpan) {}

func (p *LogProcessor) OnEnd(s sdktrace.ReadOnlySpan) {
	fields := logrus.Fields{
		"span":        s.Name(),
		"trace_id":    s.SpanContext().TraceID().String(),
		"duration_ms": s.EndTime().Sub(s.StartTime()).Milliseconds(),
	}
	for _, attr := range s.Attributes() {
		fields[string(attr.Key)] = attr.Value.AsInterface()
	}

	entry := p.logger.WithFields(fields)
	if status := s.Status(); status.Code == codes.Error {
		entry.WithField("error", status.Description).Error("Span failed")
		return
	}
	entry.Debug("Span finished")
}

func (p *LogProcessor) Shutdown(ctx context.Context) error {
	return nil
}

func (p *LogProcessor) ForceFlush(ctx context.Context) error {
	return nil
}
