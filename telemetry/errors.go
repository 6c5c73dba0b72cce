package telemetry

import "errors"

// Configuration errors.
var (
	// ErrMissingServiceName indicates Config.ServiceName is empty.
	ErrMissingServiceName = errors.New("telemetry: service name is required")

	// ErrInvalidTraceExporter indicates an unknown trace exporter name.
	ErrInvalidTraceExporter = errors.New("telemetry: invalid trace exporter")

	// ErrInvalidMetricExporter indicates an unknown metric exporter name.
	ErrInvalidMetricExporter = errors.New("telemetry: invalid metric exporter")
)

// Runtime errors.
var (
	// ErrNilTelemetry indicates a nil Telemetry was provided.
	ErrNilTelemetry = errors.New("telemetry: telemetry is nil")
)

// ValidTraceExporters lists valid trace exporter names. The empty name
// is valid and leaves export disabled.
var ValidTraceExporters = []string{"otlp", "stdout", "none", ""}

// ValidMetricExporters lists valid metric exporter names. The empty
// name is valid and leaves export disabled.
var ValidMetricExporters = []string{"otlp", "prometheus", "stdout", "none", ""}
