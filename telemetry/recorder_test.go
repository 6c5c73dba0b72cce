package telemetry

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/jonwraymond/callops/bind"
	"github.com/jonwraymond/callops/intercept"
	"github.com/jonwraymond/callops/sink"
)

func newTestRecorder(t *testing.T) (*Recorder, *tracetest.SpanRecorder, *sdkmetric.ManualReader) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	rec, err := NewRecorder(tp.Tracer("test"), mp.Meter("test"))
	if err != nil {
		t.Fatalf("NewRecorder() error = %v", err)
	}
	return rec, sr, reader
}

func counterSum(t *testing.T, rm metricdata.ResourceMetrics, name string) int64 {
	t.Helper()
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("metric %s has data %T, want Sum[int64]", name, m.Data)
			}
			var total int64
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
			return total
		}
	}
	return 0
}

func histogramCount(t *testing.T, rm metricdata.ResourceMetrics, name string) uint64 {
	t.Helper()
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			hist, ok := m.Data.(metricdata.Histogram[float64])
			if !ok {
				t.Fatalf("metric %s has data %T, want Histogram[float64]", name, m.Data)
			}
			var count uint64
			for _, dp := range hist.DataPoints {
				count += dp.Count
			}
			return count
		}
	}
	return 0
}

func TestRecorder_SpanPerCall(t *testing.T) {
	rec, sr, _ := newTestRecorder(t)

	it, err := intercept.New(bind.NewSignature("f", bind.Required("x")),
		func(context.Context, bind.Arguments) (any, error) { return 1, nil },
		intercept.WithSink(sink.Discard()),
		intercept.WithObserver(rec),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, err := it.Call(context.Background(), 7); err != nil {
		t.Fatalf("Call() error = %v", err)
	}

	spans := sr.Ended()
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(spans))
	}
	if got := spans[0].Name(); got != "call.exec.f" {
		t.Errorf("span name = %q, want %q", got, "call.exec.f")
	}
	if got := spans[0].Status().Code; got != codes.Ok {
		t.Errorf("span status = %v, want Ok", got)
	}
}

func TestRecorder_ErrorStatus(t *testing.T) {
	rec, sr, _ := newTestRecorder(t)
	errBoom := errors.New("boom")

	it, err := intercept.New(bind.NewSignature("f"),
		func(context.Context, bind.Arguments) (any, error) { return nil, errBoom },
		intercept.WithSink(sink.Discard()),
		intercept.WithObserver(rec),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, err := it.Call(context.Background()); !errors.Is(err, errBoom) {
		t.Fatalf("Call() error = %v, want errBoom", err)
	}

	spans := sr.Ended()
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(spans))
	}
	if got := spans[0].Status().Code; got != codes.Error {
		t.Errorf("span status = %v, want Error", got)
	}
	if events := spans[0].Events(); len(events) == 0 {
		t.Error("span has no recorded error event")
	}
}

func TestRecorder_Counters(t *testing.T) {
	rec, _, reader := newTestRecorder(t)
	errBoom := errors.New("boom")

	loud, err := intercept.New(bind.NewSignature("loud", bind.Required("x")),
		func(_ context.Context, args bind.Arguments) (any, error) {
			if x, _ := args.Value("x").(int); x < 0 {
				return nil, errBoom
			}
			return nil, nil
		},
		intercept.WithSink(sink.Discard()),
		intercept.WithObserver(rec),
	)
	if err != nil {
		t.Fatalf("New(loud) error = %v", err)
	}
	quiet, err := intercept.New(bind.NewSignature("quiet"),
		func(context.Context, bind.Arguments) (any, error) { return nil, nil },
		intercept.WithSink(sink.Discard()),
		intercept.WithObserver(rec),
		intercept.WithSettings(map[string]any{intercept.SettingEnabled: false}),
	)
	if err != nil {
		t.Fatalf("New(quiet) error = %v", err)
	}

	ctx := context.Background()
	if _, err := loud.Call(ctx, 1); err != nil {
		t.Fatal(err)
	}
	if _, err := loud.Call(ctx, 2); err != nil {
		t.Fatal(err)
	}
	if _, err := loud.Call(ctx, -1); !errors.Is(err, errBoom) {
		t.Fatalf("Call(-1) error = %v, want errBoom", err)
	}
	if _, err := quiet.Call(ctx); err != nil {
		t.Fatal(err)
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	if got := counterSum(t, rm, "call.exec.total"); got != 4 {
		t.Errorf("call.exec.total = %d, want 4", got)
	}
	if got := counterSum(t, rm, "call.exec.logged"); got != 3 {
		t.Errorf("call.exec.logged = %d, want 3", got)
	}
	if got := counterSum(t, rm, "call.exec.errors"); got != 1 {
		t.Errorf("call.exec.errors = %d, want 1", got)
	}
	if got := histogramCount(t, rm, "call.exec.duration_ms"); got != 4 {
		t.Errorf("call.exec.duration_ms count = %d, want 4", got)
	}
}

func TestRecorderFromTelemetry(t *testing.T) {
	if _, err := RecorderFromTelemetry(nil); !errors.Is(err, ErrNilTelemetry) {
		t.Errorf("RecorderFromTelemetry(nil) error = %v, want ErrNilTelemetry", err)
	}

	tel, err := New(context.Background(), Config{ServiceName: "callops"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer tel.Shutdown(context.Background())

	rec, err := RecorderFromTelemetry(tel)
	if err != nil {
		t.Fatalf("RecorderFromTelemetry() error = %v", err)
	}
	if rec == nil {
		t.Fatal("RecorderFromTelemetry() = nil recorder")
	}
}
