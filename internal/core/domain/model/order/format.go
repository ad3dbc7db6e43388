package order

import (
	"fmt"
	"strings"
)

// FormatLines renders order lines as a single human-readable string in the
// form "<quantity> <item>" per entry, comma-separated, preserving the slice
// order. Empty input formats as the empty string. Pure function.
func FormatLines(lines []Line) string {
	if len(lines) == 0 {
		return ""
	}

	parts := make([]string, len(lines))
	for i, l := range lines {
		parts[i] = fmt.Sprintf("%d %s", l.Quantity, l.Item)
	}
	return strings.Join(parts, ", ")
}
