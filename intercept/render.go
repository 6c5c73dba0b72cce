package intercept

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonwraymond/callops/bind"
	"github.com/jonwraymond/callops/settings"
)

// maxRetvalLen bounds the rendered return value on the log line.
const maxRetvalLen = 60

// enabledFor evaluates the enabled setting. Booleans gate logging
// outright. An int is a depth budget: the call logs only while the
// budget exceeds the count of enabled ancestors. Anything else falls
// back to truthiness.
func enabledFor(v any, enabledAncestors int) bool {
	switch x := v.(type) {
	case bool:
		return x
	case int:
		return x > enabledAncestors
	case int64:
		return x > int64(enabledAncestors)
	default:
		return settings.Truthy(v)
	}
}

// displayedChain is the chain shown on entry and exit lines, innermost
// caller first. With no enabled ancestors the runtime caller stands in.
func displayedChain(ancestors []string) []string {
	if len(ancestors) == 0 {
		return []string{callerName()}
	}
	out := make([]string, len(ancestors))
	for i, name := range ancestors {
		out[len(ancestors)-1-i] = name
	}
	return out
}

// argsLine renders the entry arguments line. A separator ending in a
// newline puts every argument on its own continuation line.
func argsLine(pad string, args bind.Arguments, sep string) string {
	if sep == "" {
		sep = ", "
	}
	lead := ""
	if strings.HasSuffix(sep, "\n") {
		sep = "\n" + pad + "        "
		lead = sep
	}
	return pad + "    args: " + lead + renderCallArgs(args, sep)
}

// renderCallArgs renders the arguments explicitly passed to a call:
// positional values by parameter name, collected variadic overflow,
// keyword values, then collected unknown keywords. Parameters that fell
// back to declared defaults are omitted; "<none>" marks a call that
// passed nothing to a parameterized callable.
func renderCallArgs(args bind.Arguments, sep string) string {
	sig := args.Signature()
	pairs := args.PositionalPairs()
	if rest := args.Rest(); len(rest) > 0 {
		pairs = append(pairs, bind.Pair{Name: "[*]" + sig.Variadic, Value: rest})
	}
	pairs = append(pairs, args.KeywordPairs()...)
	if extra := args.ExtraPairs(); len(extra) > 0 {
		m := make(map[string]any, len(extra))
		for _, p := range extra {
			m[p.Name] = p.Value
		}
		pairs = append(pairs, bind.Pair{Name: "[**]" + sig.VariadicKeywords, Value: m})
	}
	if len(pairs) == 0 {
		return "<none>"
	}
	return bind.FormatPairs(pairs, sep)
}

// renderRecordArgs renders the history cells: positional arguments with
// any variadic overflow, and the full keyword view, which merges passed
// keywords, defaulted parameters, and unknown keywords sorted by name.
func renderRecordArgs(args bind.Arguments) (argsCell, kwargsCell string) {
	sig := args.Signature()
	pos := args.PositionalPairs()
	if rest := args.Rest(); len(rest) > 0 {
		pos = append(pos, bind.Pair{Name: "[*]" + sig.Variadic, Value: rest})
	}
	argsCell = bind.FormatPairs(pos, ", ")

	kw := args.KeywordPairs()
	kw = append(kw, args.DefaultedPairs()...)
	kw = append(kw, args.ExtraPairs()...)
	sort.Slice(kw, func(i, j int) bool { return kw[i].Name < kw[j].Name })
	kwargsCell = bind.FormatPairs(kw, ", ")
	return argsCell, kwargsCell
}

// renderResult renders a return for the log line and history. Errors
// render distinctly so a nil value on failure is not read as a result.
func renderResult(value any, err error) string {
	if err != nil {
		return "<error: " + err.Error() + ">"
	}
	return fmt.Sprintf("%v", value)
}

// truncate caps s at max runes, marking elision with "...".
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}
