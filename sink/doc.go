// Package sink provides output targets for instrumentation log lines.
//
// The core only needs a place to put pre-formatted lines; sinks adapt
// that contract to io.Writer, log/slog, and zap backends.
package sink
