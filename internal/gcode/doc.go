// Package gcode holds the marker vocabulary and line-level parsers for the
// two slicer dialects the rewriter understands (Bambu/Orca and PrusaSlicer).
//
// The package is deliberately dumb: it classifies a single line into a tagged
// event, extracts numeric fields, and formats synthetic moves. All decisions
// about what to do with a line live in the engine package, so the marker
// table here stays the single source of truth for what the rewriter
// recognizes.
//
// Matching is substring-based and dialect-agnostic, mirroring how slicers
// actually interleave these comments: both dialects' markers are recognized
// regardless of which dialect was detected. Dialect detection exists for
// diagnostics only.
package gcode
