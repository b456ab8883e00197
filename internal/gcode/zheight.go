package gcode

import (
	"regexp"
	"strconv"
	"strings"
)

// Z-height comment layouts, one per dialect. The value group is permissive
// ([\d.]+); anything strconv can't parse afterwards is treated as no value.
var (
	reZHeightBambu = regexp.MustCompile(`; Z_HEIGHT: ([\d.]+)`)
	reZHeightPrusa = regexp.MustCompile(`;Z:([\d.]+)`)
)

// ExtractZ parses the vertical position out of a Z-height comment. The Bambu
// layout is checked first; a line carrying the Bambu prefix with a garbled
// value yields no result even if a Prusa-style value is also present.
// Returns false for lines matching neither layout or with an unparsable
// number; both are non-fatal "no update" conditions.
func ExtractZ(line string) (float64, bool) {
	if strings.Contains(line, "; Z_HEIGHT:") {
		return parseZMatch(reZHeightBambu, line)
	}
	if strings.Contains(line, ";Z:") {
		return parseZMatch(reZHeightPrusa, line)
	}
	return 0, false
}

func parseZMatch(re *regexp.Regexp, line string) (float64, bool) {
	m := re.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	z, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		// Values like "1.2.3" match the pattern but are not numbers.
		return 0, false
	}
	return z, true
}
