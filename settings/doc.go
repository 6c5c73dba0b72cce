// Package settings provides the named-setting model for per-call
// instrumentation: declared settings whose values are either direct
// (fixed at configuration time) or indirect (naming a parameter of the
// wrapped callable, resolved from the call's bound arguments at call
// time).
//
// A Mapping owns an ordered set of declared settings. Snapshots taken
// with AsMap can be applied back through Update without special-casing
// read-only entries; indirect values survive the round trip because
// they are exported in their marked string form ("param" + "=").
package settings
