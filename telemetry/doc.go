// Package telemetry provides OpenTelemetry wiring for intercepted
// calls.
//
// It is a pure instrumentation library: no execution, no transport, no
// I/O beyond exporter setup. Consumers build a Telemetry from Config,
// derive a Recorder, and register it on interceptors as an observer.
package telemetry
