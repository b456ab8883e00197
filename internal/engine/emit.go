package engine

import "github.com/roach88/bricklayers/internal/gcode"

// Comments stamped on synthetic Z moves and rewritten extrusion lines. These
// appear verbatim in output files, so they are part of the tool's contract.
const (
	commentShiftInnerWall  = "Z shift for inner wall"
	commentResetInnerWall  = "Reset Z after inner wall"
	commentResetTransition = "Reset Z for feature transition"
	commentResetOuterWall  = "Reset Z for outer wall"
	commentResetObjectEnd  = "Reset Z at object end"

	annotationAdjustedE = " ; Adjusted E for inner wall"
)

// emitter assembles the rewritten line sequence. Synthetic lines are
// appended before the original (possibly rewritten) line they belong to,
// always in decision order.
type emitter struct {
	lines []string
}

func newEmitter(capacity int) *emitter {
	return &emitter{lines: make([]string, 0, capacity)}
}

// shift injects the Z-shift-up move that opens an inner-wall block.
func (em *emitter) shift(z float64) {
	em.lines = append(em.lines, gcode.ZMove(z, commentShiftInnerWall))
}

// reset injects a Z move back to the unshifted height, with the given
// close-reason comment.
func (em *emitter) reset(z float64, comment string) {
	em.lines = append(em.lines, gcode.ZMove(z, comment))
}

// original appends the input line itself, after any synthetic lines.
func (em *emitter) original(line string) {
	em.lines = append(em.lines, line)
}
