package bind

import "sort"

// Pair is one name/value argument for rendering and records.
type Pair struct {
	Name  string
	Value any
}

// Arguments is the bound argument set for a single call.
//
// Contract:
// - Concurrency: immutable after Bind returns; safe to share.
// - Ownership: slices returned by accessors are copies.
type Arguments struct {
	sig        Signature
	values     map[string]any  // final value per declared parameter
	supplied   map[string]bool // declared parameters the caller actually gave
	positional map[string]bool // declared parameters bound positionally
	rest       []any
	extra      map[string]any
}

// Bind resolves one call's positional and keyword arguments against sig.
//
// Every declared parameter ends up with a value, caller-supplied or the
// declared default. A *BindError is returned when positionals overflow a
// signature without a variadic catch-all, when an unknown keyword arrives
// without a keyword catch-all, when a parameter is supplied both
// positionally and by keyword, or when a parameter with no default is
// left unfilled.
func Bind(sig Signature, positional []any, keyword map[string]any) (Arguments, error) {
	if err := sig.Validate(); err != nil {
		return Arguments{}, err
	}
	a := Arguments{
		sig:        sig,
		values:     make(map[string]any, len(sig.Params)),
		supplied:   make(map[string]bool, len(positional)+len(keyword)),
		positional: make(map[string]bool, len(positional)),
	}

	n := len(positional)
	if n > len(sig.Params) {
		if sig.Variadic == "" {
			return Arguments{}, bindErrorf(sig.FuncName,
				"takes at most %d positional arguments, got %d", len(sig.Params), n)
		}
		a.rest = append([]any(nil), positional[len(sig.Params):]...)
		n = len(sig.Params)
	}
	for i := 0; i < n; i++ {
		name := sig.Params[i].Name
		a.values[name] = positional[i]
		a.supplied[name] = true
		a.positional[name] = true
	}

	// Keywords are visited in sorted order so error selection is
	// deterministic.
	for _, k := range sortedKeys(keyword) {
		v := keyword[k]
		if _, ok := sig.Param(k); !ok {
			if sig.VariadicKeywords == "" {
				return Arguments{}, bindErrorf(sig.FuncName, "unexpected keyword argument %q", k)
			}
			if a.extra == nil {
				a.extra = make(map[string]any)
			}
			a.extra[k] = v
			continue
		}
		if a.positional[k] {
			return Arguments{}, bindErrorf(sig.FuncName, "multiple values for parameter %q", k)
		}
		a.values[k] = v
		a.supplied[k] = true
	}

	for _, p := range sig.Params {
		if a.supplied[p.Name] {
			continue
		}
		if !p.HasDefault {
			return Arguments{}, bindErrorf(sig.FuncName, "missing required parameter %q", p.Name)
		}
		a.values[p.Name] = p.Default
	}
	return a, nil
}

// Signature returns the declaration this set was bound against.
func (a Arguments) Signature() Signature { return a.sig }

// Lookup returns the bound value for name. Declared parameters resolve
// uniformly whether they were supplied positionally, by keyword, or filled
// from their defaults; keyword catch-all entries are consulted last.
func (a Arguments) Lookup(name string) (any, bool) {
	if v, ok := a.values[name]; ok {
		return v, true
	}
	if v, ok := a.extra[name]; ok {
		return v, true
	}
	return nil, false
}

// Value returns the bound value for name, or nil if absent.
func (a Arguments) Value(name string) any {
	v, _ := a.Lookup(name)
	return v
}

// Supplied reports whether the caller explicitly provided the named
// declared parameter.
func (a Arguments) Supplied(name string) bool { return a.supplied[name] }

// Pairs returns every declared parameter with its final value, in
// declaration order.
func (a Arguments) Pairs() []Pair {
	pairs := make([]Pair, 0, len(a.sig.Params))
	for _, p := range a.sig.Params {
		pairs = append(pairs, Pair{Name: p.Name, Value: a.values[p.Name]})
	}
	return pairs
}

// PositionalPairs returns the parameters bound positionally, in
// declaration order.
func (a Arguments) PositionalPairs() []Pair {
	pairs := make([]Pair, 0, len(a.positional))
	for _, p := range a.sig.Params {
		if a.positional[p.Name] {
			pairs = append(pairs, Pair{Name: p.Name, Value: a.values[p.Name]})
		}
	}
	return pairs
}

// KeywordPairs returns the declared parameters supplied by keyword,
// sorted by name.
func (a Arguments) KeywordPairs() []Pair {
	pairs := make([]Pair, 0, len(a.supplied))
	for _, p := range a.sig.Params {
		if a.supplied[p.Name] && !a.positional[p.Name] {
			pairs = append(pairs, Pair{Name: p.Name, Value: a.values[p.Name]})
		}
	}
	sortPairs(pairs)
	return pairs
}

// DefaultedPairs returns the declared parameters filled from their
// defaults, in declaration order.
func (a Arguments) DefaultedPairs() []Pair {
	var pairs []Pair
	for _, p := range a.sig.Params {
		if !a.supplied[p.Name] {
			pairs = append(pairs, Pair{Name: p.Name, Value: a.values[p.Name]})
		}
	}
	return pairs
}

// ExtraPairs returns the keyword catch-all entries, sorted by name.
func (a Arguments) ExtraPairs() []Pair {
	pairs := make([]Pair, 0, len(a.extra))
	for _, k := range sortedKeys(a.extra) {
		pairs = append(pairs, Pair{Name: k, Value: a.extra[k]})
	}
	return pairs
}

// Rest returns the positional arguments collected by the variadic
// catch-all.
func (a Arguments) Rest() []any {
	if len(a.rest) == 0 {
		return nil
	}
	return append([]any(nil), a.rest...)
}

// Empty reports whether the caller supplied no arguments at all.
func (a Arguments) Empty() bool {
	return len(a.supplied) == 0 && len(a.rest) == 0 && len(a.extra) == 0
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortPairs(pairs []Pair) {
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Name < pairs[j].Name })
}
