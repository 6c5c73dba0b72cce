package bind

import (
	"errors"
	"fmt"
)

// Sentinel errors for signature declaration and argument binding.
var (
	ErrBind             = errors.New("bind: arguments do not match signature")
	ErrInvalidSignature = errors.New("bind: signature is invalid")
)

// BindError reports why one call's arguments could not be bound.
// It unwraps to ErrBind.
type BindError struct {
	// Func is the display name of the callable being bound.
	Func string

	// Reason describes the mismatch.
	Reason string
}

func (e *BindError) Error() string {
	return fmt.Sprintf("bind: %s: %s", e.Func, e.Reason)
}

func (e *BindError) Unwrap() error { return ErrBind }

func bindErrorf(fn, format string, a ...any) *BindError {
	return &BindError{Func: fn, Reason: fmt.Sprintf(format, a...)}
}
