package engine

import "github.com/roach88/bricklayers/internal/gcode"

// printState is the mutable record threaded through one pass. It is created
// zeroed at pass start, mutated in place line by line, and discarded with the
// pass; nothing outside a single Process call ever sees it.
//
// Invariants:
//   - insideBlock implies perimeter == gcode.FeatureInner
//   - perimeter is only ever non-none while inObject is true
//   - zShift is fixed at construction and never mutated
type printState struct {
	currentLayer int
	currentZ     float64
	zShift       float64

	inObject  bool
	perimeter gcode.Feature

	// insideBlock is true strictly between a shift emission and the
	// corresponding reset emission.
	insideBlock bool

	// blockCount is diagnostic only; it resets on every object start and
	// every layer change and gates no behavior.
	blockCount int
}

func newPrintState(layerHeight float64) *printState {
	return &printState{
		zShift:    layerHeight * 0.5,
		perimeter: gcode.FeatureNone,
	}
}

// enterObject handles an object-start marker. Every object starts with no
// active perimeter, so a stale feature tag from a previous object can never
// shift untagged moves in the next one.
func (st *printState) enterObject() {
	st.inObject = true
	st.perimeter = gcode.FeatureNone
	st.blockCount = 0
}

// layerChanged applies a successfully extracted Z height.
func (st *printState) layerChanged(z float64) {
	st.currentZ = z
	st.currentLayer++
	st.blockCount = 0
}

// openBlock marks the start of an inner-wall perimeter block.
func (st *printState) openBlock() {
	st.blockCount++
	st.insideBlock = true
}
