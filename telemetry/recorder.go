package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jonwraymond/callops/intercept"
)

// Recorder bridges intercepted calls to OpenTelemetry: one span per
// call plus invocation counters and a duration histogram.
//
// Contract:
//   - Concurrency: safe for concurrent use.
//   - Context: Begin derives the span context the target runs under.
//   - Errors: target errors are recorded on the span and counted, never
//     altered.
type Recorder struct {
	tracer       trace.Tracer
	totalCount   metric.Int64Counter
	loggedCount  metric.Int64Counter
	errorCount   metric.Int64Counter
	durationHist metric.Float64Histogram
}

var _ intercept.Observer = (*Recorder)(nil)

// NewRecorder builds a Recorder on the given tracer and meter.
func NewRecorder(tracer trace.Tracer, meter metric.Meter) (*Recorder, error) {
	totalCount, err := meter.Int64Counter(
		"call.exec.total",
		metric.WithDescription("Total number of intercepted calls"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	loggedCount, err := meter.Int64Counter(
		"call.exec.logged",
		metric.WithDescription("Number of intercepted calls that were logged"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	errorCount, err := meter.Int64Counter(
		"call.exec.errors",
		metric.WithDescription("Total number of intercepted call errors"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	durationHist, err := meter.Float64Histogram(
		"call.exec.duration_ms",
		metric.WithDescription("Intercepted call duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &Recorder{
		tracer:       tracer,
		totalCount:   totalCount,
		loggedCount:  loggedCount,
		errorCount:   errorCount,
		durationHist: durationHist,
	}, nil
}

// RecorderFromTelemetry builds a Recorder from a configured Telemetry.
// This is a convenience function for common use cases.
func RecorderFromTelemetry(tel Telemetry) (*Recorder, error) {
	if tel == nil {
		return nil, ErrNilTelemetry
	}
	return NewRecorder(tel.Tracer(), tel.Meter())
}

// Begin opens the call span and counts the invocation. The returned
// DoneFunc records the outcome and ends the span.
func (r *Recorder) Begin(ctx context.Context, e intercept.Entry) (context.Context, intercept.DoneFunc) {
	attrs := []attribute.KeyValue{
		attribute.String("call.name", e.Name),
		attribute.Int64("call.num", int64(e.CallNum)),
		attribute.Bool("call.logged", e.Logged),
		attribute.Int("call.depth", e.Depth),
	}

	ctx, span := r.tracer.Start(ctx, "call.exec."+e.Name,
		trace.WithAttributes(attrs...),
		trace.WithSpanKind(trace.SpanKindInternal),
	)

	opt := metric.WithAttributes(attribute.String("call.name", e.Name))
	r.totalCount.Add(ctx, 1, opt)
	if e.Logged {
		r.loggedCount.Add(ctx, 1, opt)
	}

	return ctx, func(res intercept.Result) {
		if res.Err != nil {
			span.SetStatus(codes.Error, res.Err.Error())
			span.RecordError(res.Err)
			r.errorCount.Add(ctx, 1, opt)
		} else {
			span.SetStatus(codes.Ok, "")
		}
		r.durationHist.Record(ctx, float64(res.Elapsed.Milliseconds()), opt)
		span.End()
	}
}
