// Package display holds small console formatting helpers shared by the
// runner, the preflight check and the command.
package display

import (
	"fmt"
	"strings"
)

// FormatParts renders decoded name parts with their zero-based template
// index, e.g. "{0}=alpha {1}=beta".
func FormatParts(parts []string) string {
	if len(parts) == 0 {
		return "(none)"
	}
	var b strings.Builder
	for i, p := range parts {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "{%d}=%q", i, p)
	}
	return b.String()
}

// FormatRename renders a before/after pair as "old -> new".
func FormatRename(before, after string) string {
	return before + " -> " + after
}

// FormatCount pairs n with noun, adding "s" unless n is 1.
func FormatCount(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
