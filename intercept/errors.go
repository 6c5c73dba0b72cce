package intercept

import "errors"

// Sentinel errors for interception.
var (
	// ErrNilTarget is returned by New when no target callable is given.
	ErrNilTarget = errors.New("intercept: target is nil")

	// ErrStackUnderflow is returned by Chain.Pop when the chain is
	// empty. Inside the interceptor a pop is always paired with a push,
	// so seeing this error there signals a defect, not a user mistake.
	ErrStackUnderflow = errors.New("intercept: call chain pop without matching push")
)
