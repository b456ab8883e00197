package gcode

import "strings"

// Dialect identifies which slicer's marker convention a file was produced
// with. Detection is informational: the pass matches both vocabularies
// unconditionally, so a mixed or misdetected stream still rewrites correctly.
type Dialect string

const (
	// DialectBambu is the Bambu Studio / OrcaSlicer convention
	// ("; FEATURE:" tags). This is the default when no marker is found.
	DialectBambu Dialect = "bambu"

	// DialectPrusa is the PrusaSlicer convention (";TYPE:" tags).
	DialectPrusa Dialect = "prusa"
)

// DetectDialect scans the stream for the first feature-tag line and returns
// the dialect it belongs to plus the index of that line. If no feature tag
// exists anywhere, it returns (DialectBambu, -1); callers should surface the
// absence as a warning, not an error.
func DetectDialect(lines []string) (Dialect, int) {
	for i, line := range lines {
		if strings.Contains(line, MarkerFeatureBambu) {
			return DialectBambu, i
		}
		if strings.Contains(line, MarkerFeaturePrusa) {
			return DialectPrusa, i
		}
	}
	return DialectBambu, -1
}
