// Package engine implements the single-pass bricklaying rewriter.
//
// The engine walks the input line sequence exactly once, threading one
// mutable print-state record through the walk. Per line, object-scope and
// layer tracking update first; the perimeter state machine then decides,
// from that state plus the line itself, whether to inject a synthetic Z move
// before the line and whether to rewrite the line's extrusion field.
//
// Determinism model: strictly single-threaded, no goroutines, no wall-clock
// input. The only non-sequential access is a one-line lookahead at
// layer-change markers, bounds-checked against end of input. The same input
// and options always produce the same output, which is what the golden tests
// rely on.
//
// The transform is intentionally not idempotent: running it over its own
// output shifts the already-shifted synthetic moves' surrounding blocks
// again. Callers must not re-process a rewritten file.
package engine
