package settings

import (
	"fmt"
	"sync"
)

// Mapping owns an ordered set of declared settings and their values.
//
// Contract:
// - Concurrency: safe for concurrent use; reads take a shared lock.
// - Errors: Get and Set surface ErrUnknownSetting / ErrImmutableSetting;
//   Update skips such entries silently.
// - Ownership: maps returned by AsMap are copies.
type Mapping struct {
	mu      sync.RWMutex
	order   []string
	entries map[string]*entry
}

type entry struct {
	spec  Spec
	value value
}

// NewMapping declares a mapping from specs, in declaration order, and
// applies initial values on top of the declared defaults.
//
// Initial values may set immutable settings; after construction only
// mutable settings can change. An initial value naming an undeclared
// setting is a configuration mistake and fails with ErrUnknownSetting.
func NewMapping(specs []Spec, initial map[string]any) (*Mapping, error) {
	m := &Mapping{entries: make(map[string]*entry, len(specs))}
	for _, sp := range specs {
		if sp.Name == "" {
			return nil, fmt.Errorf("%w: empty name", ErrInvalidSpec)
		}
		if _, dup := m.entries[sp.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalidSpec, sp.Name)
		}
		if _, ok := fit(sp.Kind, sp.Default); !ok {
			return nil, fmt.Errorf("%w: %q: default %v does not fit kind %s",
				ErrInvalidSpec, sp.Name, sp.Default, sp.Kind)
		}
		m.order = append(m.order, sp.Name)
		m.entries[sp.Name] = &entry{spec: sp, value: value{val: sp.Default}}
	}
	for name, raw := range initial {
		e, ok := m.entries[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSetting, name)
		}
		e.value = classify(e.spec, raw)
	}
	return m, nil
}

// Get returns the setting's configured value. Indirect values are
// returned in their marked string form.
func (m *Mapping) Get(name string) (any, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSetting, name)
	}
	return exportValue(e.value), nil
}

// Set changes a mutable setting's value.
func (m *Mapping) Set(name string, val any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSetting, name)
	}
	if !e.spec.Mutable {
		return fmt.Errorf("%w: %q", ErrImmutableSetting, name)
	}
	e.value = classify(e.spec, val)
	return nil
}

// Update applies sources in order. Entries naming unknown or immutable
// settings are skipped silently, so a snapshot from AsMap can be applied
// back without special-casing read-only fields.
func (m *Mapping) Update(sources ...map[string]any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, src := range sources {
		for name, raw := range src {
			e, ok := m.entries[name]
			if !ok || !e.spec.Mutable {
				continue
			}
			e.value = classify(e.spec, raw)
		}
	}
}

// AsMap returns a snapshot of configured values. Indirect values take
// their marked string form. With visibleOnly, settings declared
// Visible=false are omitted.
func (m *Mapping) AsMap(visibleOnly bool) map[string]any {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]any, len(m.order))
	for _, name := range m.order {
		e := m.entries[name]
		if visibleOnly && !e.spec.Visible {
			continue
		}
		out[name] = exportValue(e.value)
	}
	return out
}

// Contains reports whether the setting is declared.
func (m *Mapping) Contains(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.entries[name]
	return ok
}

// Len returns the number of declared settings.
func (m *Mapping) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.order)
}

// Names returns the declared setting names in declaration order.
func (m *Mapping) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.order...)
}

// Spec returns the declaration for the named setting.
func (m *Mapping) Spec(name string) (Spec, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[name]
	if !ok {
		return Spec{}, false
	}
	return e.spec, true
}

// IsIndirect reports whether the setting currently holds an indirect
// value.
func (m *Mapping) IsIndirect(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[name]
	return ok && e.value.indirect
}
