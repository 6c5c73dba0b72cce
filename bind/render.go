package bind

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatValue renders v deterministically for log lines and call records.
// Strings are quoted; everything else uses fmt's %v verb, whose map
// rendering is key-sorted.
func FormatValue(v any) string {
	if s, ok := v.(string); ok {
		return strconv.Quote(s)
	}
	return fmt.Sprintf("%v", v)
}

// FormatPair renders one name=value argument.
func FormatPair(p Pair) string {
	return p.Name + "=" + FormatValue(p.Value)
}

// FormatPairs renders pairs joined by sep. Empty input renders as "".
func FormatPairs(pairs []Pair, sep string) string {
	if len(pairs) == 0 {
		return ""
	}
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = FormatPair(p)
	}
	return strings.Join(parts, sep)
}
