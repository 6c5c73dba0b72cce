package profile

import "errors"

// Sentinel errors for profile loading.
var (
	// ErrInvalidProfile indicates the document is not a valid profile.
	ErrInvalidProfile = errors.New("profile: invalid profile")
)
