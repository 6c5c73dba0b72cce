package settings

import "strings"

// IndirectMarker is the suffix that marks a string value as naming a
// parameter of the wrapped callable. For settings of any kind other than
// String, every non-empty string value is read as a parameter name and a
// trailing marker is optional; for String settings the marker is what
// distinguishes an indirect value from a literal.
const IndirectMarker = "="

// Kind constrains the values a setting accepts.
type Kind int

const (
	// Any accepts every value unchanged.
	Any Kind = iota
	// Bool accepts booleans; integers are read as truthy encodings.
	Bool
	// Int accepts integers; booleans are read as 0 and 1.
	Int
	// Float accepts floating-point and integer values.
	Float
	// String accepts strings only.
	String
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	default:
		return "any"
	}
}

// Spec declares one named setting.
type Spec struct {
	// Name identifies the setting within its mapping.
	Name string

	// Kind constrains accepted values. Ill-fitting values fall back to
	// Default rather than failing.
	Kind Kind

	// Default is the value used when resolution finds nothing better. It
	// is also the setting's initial value.
	Default any

	// Mutable permits changes via Set and Update after construction.
	Mutable bool

	// Visible includes the setting in exported snapshots.
	Visible bool

	// AllowIndirect permits binding the setting to a parameter of the
	// wrapped callable.
	AllowIndirect bool
}

// Indirect marks a value as naming a parameter of the wrapped callable,
// regardless of the setting's kind. A trailing IndirectMarker is
// tolerated and stripped.
type Indirect string

// value is a setting's stored state: a direct value, or the name of the
// parameter it is bound to.
type value struct {
	indirect bool
	val      any
}

// classify turns a raw configuration value into stored state for sp.
// Ill-fitting direct values fall back to the declared default.
func classify(sp Spec, raw any) value {
	if ind, ok := raw.(Indirect); ok {
		if sp.AllowIndirect {
			return value{indirect: true, val: strings.TrimSuffix(string(ind), IndirectMarker)}
		}
		return value{val: sp.Default}
	}
	if s, ok := raw.(string); ok && s != "" && sp.AllowIndirect {
		if sp.Kind != String {
			return value{indirect: true, val: strings.TrimSuffix(s, IndirectMarker)}
		}
		if strings.HasSuffix(s, IndirectMarker) {
			return value{indirect: true, val: strings.TrimSuffix(s, IndirectMarker)}
		}
		return value{val: s}
	}
	if v, ok := fit(sp.Kind, raw); ok {
		return value{val: v}
	}
	return value{val: sp.Default}
}

// exportValue renders stored state for snapshots. Indirect values take
// their marked string form so a snapshot applies back via Update without
// special cases.
func exportValue(v value) any {
	if v.indirect {
		param, _ := v.val.(string)
		return param + IndirectMarker
	}
	return v.val
}

// fit normalizes v to the kind, reporting whether it fits. nil always
// fits and stays nil.
func fit(k Kind, v any) (any, bool) {
	if v == nil {
		return nil, true
	}
	switch k {
	case Any:
		return v, true
	case Bool:
		switch x := v.(type) {
		case bool:
			return x, true
		case int:
			return x != 0, true
		case int64:
			return x != 0, true
		}
	case Int:
		switch x := v.(type) {
		case int:
			return x, true
		case int64:
			return int(x), true
		case bool:
			if x {
				return 1, true
			}
			return 0, true
		}
	case Float:
		switch x := v.(type) {
		case float64:
			return x, true
		case float32:
			return float64(x), true
		case int:
			return float64(x), true
		case int64:
			return float64(x), true
		}
	case String:
		if s, ok := v.(string); ok {
			return s, true
		}
	}
	return nil, false
}

// zeroOf returns the kind's falsy value.
func zeroOf(k Kind) any {
	switch k {
	case Bool:
		return false
	case Int:
		return 0
	case Float:
		return 0.0
	case String:
		return ""
	default:
		return nil
	}
}

// Truthy reports whether v counts as "on" under the accepted
// truthy/falsy encodings: nil, false, zero numbers, and empty strings
// are falsy; everything else is truthy.
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case int:
		return x != 0
	case int32:
		return x != 0
	case int64:
		return x != 0
	case uint:
		return x != 0
	case uint64:
		return x != 0
	case float32:
		return x != 0
	case float64:
		return x != 0
	case string:
		return x != ""
	}
	return true
}
