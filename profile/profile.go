package profile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Profile is a declarative settings document: shared defaults plus
// per-interceptor overrides keyed by interceptor name.
type Profile struct {
	Defaults     map[string]any            `yaml:"defaults"`
	Interceptors map[string]map[string]any `yaml:"interceptors"`
}

// Parse decodes a YAML profile. Unknown top-level fields are rejected;
// an empty document yields an empty profile.
func Parse(data []byte) (*Profile, error) {
	var p Profile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return &Profile{}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}
	return &p, nil
}

// Load reads and parses a profile file.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("profile: read %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Names returns the configured interceptor names, sorted.
func (p *Profile) Names() []string {
	names := make([]string, 0, len(p.Interceptors))
	for name := range p.Interceptors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether the profile carries overrides for name.
func (p *Profile) Has(name string) bool {
	_, ok := p.Interceptors[name]
	return ok
}

// Settings returns the effective setting values for name: the shared
// defaults overlaid with the interceptor's own entries. The result is a
// fresh map ready to seed an interceptor's settings; names absent from
// the profile get the defaults alone.
func (p *Profile) Settings(name string) map[string]any {
	out := make(map[string]any, len(p.Defaults))
	for k, v := range p.Defaults {
		out[k] = v
	}
	for k, v := range p.Interceptors[name] {
		out[k] = v
	}
	return out
}
