package settings

import "errors"

// Sentinel errors for setting declaration and access.
var (
	ErrUnknownSetting   = errors.New("settings: unknown setting")
	ErrImmutableSetting = errors.New("settings: setting is immutable")
	ErrInvalidSpec      = errors.New("settings: invalid spec")
)
