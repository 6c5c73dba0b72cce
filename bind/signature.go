package bind

import "fmt"

// Param declares one named parameter of a callable.
type Param struct {
	// Name identifies the parameter. Unique within a Signature.
	Name string

	// Default is the value used when a call does not supply the parameter.
	// Only meaningful when HasDefault is true.
	Default any

	// HasDefault marks the parameter as optional.
	HasDefault bool
}

// Required declares a parameter with no default value.
func Required(name string) Param { return Param{Name: name} }

// Optional declares a parameter with a default value.
func Optional(name string, def any) Param {
	return Param{Name: name, Default: def, HasDefault: true}
}

// Signature is the explicit declaration of a callable's parameters.
//
// Contract:
// - Ownership: a Signature is a value type; callers may copy it freely.
// - Concurrency: safe for concurrent reads once constructed.
// - Errors: Bind reports structural problems via ErrInvalidSignature.
type Signature struct {
	// FuncName is the callable's base display name.
	FuncName string

	// Params are the declared parameters in declaration order.
	Params []Param

	// Variadic, when non-empty, names a trailing parameter that collects
	// positional arguments beyond the declared ones.
	Variadic string

	// VariadicKeywords, when non-empty, names a parameter that collects
	// keyword arguments matching no declared parameter.
	VariadicKeywords string
}

// NewSignature declares a signature for the named callable.
func NewSignature(funcName string, params ...Param) Signature {
	return Signature{FuncName: funcName, Params: params}
}

// Validate checks the declaration for structural problems.
func (s Signature) Validate() error {
	if s.FuncName == "" {
		return fmt.Errorf("%w: empty function name", ErrInvalidSignature)
	}
	seen := make(map[string]bool, len(s.Params)+2)
	for _, p := range s.Params {
		if p.Name == "" {
			return fmt.Errorf("%w: %s: empty parameter name", ErrInvalidSignature, s.FuncName)
		}
		if seen[p.Name] {
			return fmt.Errorf("%w: %s: duplicate parameter %q", ErrInvalidSignature, s.FuncName, p.Name)
		}
		seen[p.Name] = true
	}
	for _, name := range []string{s.Variadic, s.VariadicKeywords} {
		if name == "" {
			continue
		}
		if seen[name] {
			return fmt.Errorf("%w: %s: duplicate parameter %q", ErrInvalidSignature, s.FuncName, name)
		}
		seen[name] = true
	}
	return nil
}

// Param returns the declared parameter with the given name.
func (s Signature) Param(name string) (Param, bool) {
	for _, p := range s.Params {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}

// ParamNames returns the declared parameter names in declaration order.
// Catch-all names are not included.
func (s Signature) ParamNames() []string {
	names := make([]string, len(s.Params))
	for i, p := range s.Params {
		names[i] = p.Name
	}
	return names
}

// HasParams reports whether the signature accepts any arguments at all,
// counting the catch-alls.
func (s Signature) HasParams() bool {
	return len(s.Params) > 0 || s.Variadic != "" || s.VariadicKeywords != ""
}
