package sink

import (
	"io"
	"sync"
)

// Sink accepts pre-formatted log lines.
//
// Contract:
// - Errors: WriteLine never fails and never panics; delivery is best
//   effort.
// - Concurrency: implementations must be safe for concurrent use.
type Sink interface {
	WriteLine(text string)
}

// Writer returns a sink that writes each line to w with a trailing
// newline. Writes are serialized; write errors are dropped. A nil
// writer yields a discarding sink.
func Writer(w io.Writer) Sink {
	if w == nil {
		return Discard()
	}
	return &writerSink{w: w}
}

type writerSink struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *writerSink) WriteLine(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = io.WriteString(s.w, text+"\n")
}

// Func adapts a function to the Sink interface. The function must be
// safe for concurrent use.
type Func func(text string)

// WriteLine calls f.
func (f Func) WriteLine(text string) { f(text) }

// Discard returns a sink that drops every line.
func Discard() Sink { return discard{} }

type discard struct{}

func (discard) WriteLine(string) {}

// Ensure the adapters implement Sink
var (
	_ Sink = (*writerSink)(nil)
	_ Sink = Func(nil)
	_ Sink = discard{}
)
