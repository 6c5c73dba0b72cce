package sink

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Zap returns a sink that forwards each line to l at the given level.
// A nil logger yields a discarding sink.
func Zap(l *zap.Logger, level zapcore.Level) Sink {
	if l == nil {
		return Discard()
	}
	return zapSink{l: l, level: level}
}

type zapSink struct {
	l     *zap.Logger
	level zapcore.Level
}

func (s zapSink) WriteLine(text string) {
	if ce := s.l.Check(s.level, text); ce != nil {
		ce.Write()
	}
}
