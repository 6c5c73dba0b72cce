package sink

import (
	"context"
	"log/slog"
)

// Slog returns a sink that forwards each line to l at the given level.
// A nil logger yields a discarding sink.
func Slog(l *slog.Logger, level slog.Level) Sink {
	if l == nil {
		return Discard()
	}
	return slogSink{l: l, level: level}
}

type slogSink struct {
	l     *slog.Logger
	level slog.Level
}

func (s slogSink) WriteLine(text string) {
	s.l.Log(context.Background(), s.level, text)
}
