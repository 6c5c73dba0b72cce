package settings

import (
	"fmt"

	"github.com/jonwraymond/callops/bind"
)

// Source records where a resolved value came from.
type Source int

const (
	// SourceDirect means the stored value was used as-is.
	SourceDirect Source = iota
	// SourceCall means an indirect setting was filled from the call's
	// bound arguments.
	SourceCall
	// SourceFallback means an indirect setting fell back to its declared
	// default.
	SourceFallback
)

// String returns the source's name.
func (s Source) String() string {
	switch s {
	case SourceCall:
		return "call"
	case SourceFallback:
		return "fallback"
	default:
		return "direct"
	}
}

// Resolved is one call's immutable settings snapshot. Re-entrant calls
// resolve independently; a snapshot never changes after ResolveAll
// returns.
type Resolved struct {
	values  map[string]any
	sources map[string]Source
}

// Value returns the effective value for name, or nil if the setting was
// not declared.
func (r Resolved) Value(name string) any { return r.values[name] }

// Source returns where the named setting's effective value came from.
func (r Resolved) Source(name string) (Source, bool) {
	s, ok := r.sources[name]
	return s, ok
}

// Bool returns the effective value's truthiness.
func (r Resolved) Bool(name string) bool { return Truthy(r.values[name]) }

// Int returns the effective value as an int, reporting whether it fits.
func (r Resolved) Int(name string) (int, bool) {
	v, ok := fit(Int, r.values[name])
	if !ok || v == nil {
		return 0, false
	}
	return v.(int), true
}

// String returns the effective value as a string, or "" if it is not
// one.
func (r Resolved) String(name string) string {
	s, _ := r.values[name].(string)
	return s
}

// Resolve returns the effective value of the named setting for one call.
// Direct values pass through. Indirect values look up the named
// parameter in args uniformly across positionally supplied,
// keyword-supplied, and default-filled parameters; a missing name falls
// back to the setting's declared default and is never an error.
func (m *Mapping) Resolve(name string, args bind.Arguments) (any, error) {
	m.mu.RLock()
	e, ok := m.entries[name]
	var sp Spec
	var v value
	if ok {
		sp, v = e.spec, e.value
	}
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSetting, name)
	}
	val, _ := resolveValue(sp, v, args)
	return val, nil
}

// ResolveAll resolves every declared setting against args and returns
// the per-call snapshot.
func (m *Mapping) ResolveAll(args bind.Arguments) Resolved {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r := Resolved{
		values:  make(map[string]any, len(m.order)),
		sources: make(map[string]Source, len(m.order)),
	}
	for _, name := range m.order {
		e := m.entries[name]
		val, src := resolveValue(e.spec, e.value, args)
		r.values[name] = val
		r.sources[name] = src
	}
	return r
}

func resolveValue(sp Spec, v value, args bind.Arguments) (any, Source) {
	if !v.indirect {
		return v.val, SourceDirect
	}
	param, _ := v.val.(string)
	raw, found := args.Lookup(param)
	if !found {
		return sp.Default, SourceFallback
	}
	if fitted, ok := fit(sp.Kind, raw); ok {
		return fitted, SourceCall
	}
	// An ill-fitting falsy value keeps its falsiness; a truthy one falls
	// back to the declared default.
	if !Truthy(raw) {
		return zeroOf(sp.Kind), SourceCall
	}
	return sp.Default, SourceFallback
}
