package gcode

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// reExtrusion captures the numeric value of the first E field on a line.
var reExtrusion = regexp.MustCompile(`E([-\d.]+)`)

// SyntheticFeed is the feed rate stamped on every synthetic Z move.
const SyntheticFeed = 1200

// IsMove reports whether a line is a candidate linear move: it starts with
// the G1 command token and carries both horizontal-axis fields. Field
// presence is substring-based, matching the slicer output this tool targets.
func IsMove(line string) bool {
	return strings.HasPrefix(line, "G1") && strings.Contains(line, "X") && strings.Contains(line, "Y")
}

// HasExtrusion reports whether a move line carries an E field. This is the
// block-opening test; whether the value is actually rewritable is decided
// separately by RewriteExtrusion.
func HasExtrusion(line string) bool {
	return strings.Contains(line, "E")
}

// HasFeed reports whether a move line carries a feed-rate field.
func HasFeed(line string) bool {
	return strings.Contains(line, "F")
}

// RewriteExtrusion multiplies the first E field's value and re-renders it to
// five decimal places on the whitespace-trimmed line. Returns the original
// line and false when no parsable E value is present; the caller then emits
// the line untouched.
func RewriteExtrusion(line string, multiplier float64) (string, bool) {
	m := reExtrusion.FindStringSubmatch(line)
	if m == nil {
		return line, false
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return line, false
	}
	rewritten := reExtrusion.ReplaceAllString(strings.TrimSpace(line), fmt.Sprintf("E%.5f", value*multiplier))
	return rewritten, true
}

// ZMove formats a synthetic vertical move at the fixed feed rate with a
// trailing comment naming why it was injected.
func ZMove(z float64, comment string) string {
	return fmt.Sprintf("G1 Z%.3f F%d ; %s", z, SyntheticFeed, comment)
}
