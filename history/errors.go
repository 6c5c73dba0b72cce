package history

import "errors"

// Sentinel errors for stats aggregation.
var (
	ErrDuplicateView = errors.New("history: view already registered")
	ErrEmptyViewName = errors.New("history: view name is empty")
)
