// Package profile loads declarative interceptor settings from YAML:
// shared defaults plus per-interceptor overrides. A profile is plain
// data; hosts feed the merged values into interceptor construction or
// live settings updates.
package profile
