package intercept

import (
	"context"
	"time"
)

// Entry describes an intercepted call as it begins.
type Entry struct {
	// Name is the display name of the callable.
	Name string

	// CallNum is the 1-based sequence number among all calls.
	CallNum uint64

	// LoggedNum is the 1-based sequence number among logged calls. It is
	// zero when the call is not logged.
	LoggedNum uint64

	// Logged reports whether the call is being logged.
	Logged bool

	// Depth is the number of enabled ancestors on the call chain.
	Depth int

	// Start is the wall-clock start of the call.
	Start time.Time
}

// Result describes an intercepted call's outcome.
type Result struct {
	// Value is the target's return value.
	Value any

	// Err is the target's error, nil on success.
	Err error

	// Elapsed is the target's execution time.
	Elapsed time.Duration
}

// DoneFunc receives a call's outcome.
type DoneFunc func(Result)

// Observer receives two-phase notifications around each intercepted
// call.
//
// Contract:
//   - Concurrency: Begin and the returned DoneFunc may run on any
//     goroutine; implementations must be safe for concurrent use.
//   - Context: Begin may derive a context (for example to open a trace
//     span); the target runs under the returned context. Returning nil
//     keeps the incoming context.
//   - Errors: a panic in Begin or DoneFunc is absorbed so that
//     instrumentation can never mask the target's outcome.
type Observer interface {
	Begin(ctx context.Context, e Entry) (context.Context, DoneFunc)
}

// observeBegin notifies every observer, threading derived contexts
// through in registration order.
func (it *Interceptor) observeBegin(ctx context.Context, e Entry) (context.Context, []DoneFunc) {
	if len(it.observers) == 0 {
		return ctx, nil
	}
	dones := make([]DoneFunc, 0, len(it.observers))
	for _, ob := range it.observers {
		func() {
			defer func() { _ = recover() }()
			octx, done := ob.Begin(ctx, e)
			if octx != nil {
				ctx = octx
			}
			if done != nil {
				dones = append(dones, done)
			}
		}()
	}
	return ctx, dones
}

// observeDone delivers the outcome to every pending DoneFunc.
func observeDone(dones []DoneFunc, res Result) {
	for _, done := range dones {
		func() {
			defer func() { _ = recover() }()
			done(res)
		}()
	}
}
