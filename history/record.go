package history

import "time"

// Record is a write-once snapshot of one logged call. Renderings are
// fixed at record time so a Record never aliases caller-owned values.
type Record struct {
	// CallNum is the total-call number at the time of the call.
	CallNum uint64

	// LoggedNum is the logged-call number at the time of the call.
	LoggedNum uint64

	// Name is the callable's prefixed display name.
	Name string

	// Chain is the enabled ancestor display names, innermost last.
	Chain []string

	// Args is the rendering of the positionally supplied arguments.
	Args string

	// Kwargs is the rendering of the keyword-view of the call, entries
	// sorted by key.
	Kwargs string

	// Retval is the rendering of the returned value.
	Retval string

	// ElapsedSecs is the callable's execution time measured on the
	// monotonic clock.
	ElapsedSecs float64

	// Timestamp is when the call was recorded.
	Timestamp time.Time
}
