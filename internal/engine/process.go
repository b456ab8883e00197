package engine

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/roach88/bricklayers/internal/diag"
	"github.com/roach88/bricklayers/internal/gcode"
)

// Options configures one rewriting pass.
type Options struct {
	// LayerHeight is the print's layer height in mm. The applied Z shift is
	// half of it, fixed for the whole run.
	LayerHeight float64

	// ExtrusionMultiplier scales the E value of each block's opening
	// extrusion move. 1.0 leaves values untouched (the field is still
	// re-rendered to five decimals).
	ExtrusionMultiplier float64

	// Sink receives structured diagnostics. Nil means discard.
	Sink diag.Sink
}

func (o Options) validate() error {
	if o.LayerHeight <= 0 {
		return fmt.Errorf("layer height must be positive, got %g", o.LayerHeight)
	}
	if o.ExtrusionMultiplier <= 0 {
		return fmt.Errorf("extrusion multiplier must be positive, got %g", o.ExtrusionMultiplier)
	}
	return nil
}

// Result is the outcome of one pass: the full rewritten sequence plus
// counters used only for diagnostics.
type Result struct {
	// Lines is the complete rewritten line sequence.
	Lines []string

	// Dialect is the detected marker dialect; DialectLine is the index of
	// the line that triggered detection, or -1 when no marker was found.
	Dialect     gcode.Dialect
	DialectLine int

	// Layers counts recognized layer changes.
	Layers int

	// ShiftedBlocks counts opened (and therefore shifted) inner-wall blocks.
	ShiftedBlocks int

	// PerimeterFound reports whether any inner-wall tag was seen at all.
	PerimeterFound bool
}

// Process rewrites a G-code line sequence in one forward pass, shifting each
// inner-wall perimeter block up by half a layer height and scaling its
// opening extrusion. The input slice is not mutated.
func Process(lines []string, opts Options) (*Result, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	sink := opts.Sink
	if sink == nil {
		sink = diag.Discard
	}

	st := newPrintState(opts.LayerHeight)
	sink.Record(diag.Event{
		Kind:    diag.KindSettings,
		Level:   slog.LevelInfo,
		Message: "starting G-code processing",
		Details: map[string]string{
			"layer_height":         formatFloat(opts.LayerHeight),
			"z_shift":              formatFloat(st.zShift),
			"extrusion_multiplier": formatFloat(opts.ExtrusionMultiplier),
		},
	})

	res := &Result{}
	res.Dialect, res.DialectLine = gcode.DetectDialect(lines)
	if res.DialectLine < 0 {
		sink.Record(diag.Event{
			Kind:    diag.KindNoMarkers,
			Level:   slog.LevelWarn,
			Message: "no dialect markers found, defaulting",
			Details: map[string]string{"dialect": string(res.Dialect)},
		})
	} else {
		sink.Record(diag.Event{
			Kind:    diag.KindDialect,
			Level:   slog.LevelInfo,
			Message: "detected dialect",
			Details: map[string]string{
				"dialect": string(res.Dialect),
				"line":    strconv.Itoa(res.DialectLine),
			},
		})
	}

	out := newEmitter(len(lines))

	for i, line := range lines {
		ev := gcode.Classify(line)

		// Object scope and layer tracking run for every line, before the
		// perimeter machine sees it.
		switch ev.Kind {
		case gcode.EventObjectStart:
			st.enterObject()
		case gcode.EventObjectEnd:
			st.inObject = false
			st.perimeter = gcode.FeatureNone
			if st.insideBlock {
				out.reset(st.currentZ, commentResetObjectEnd)
				st.insideBlock = false
			}
		case gcode.EventLayerChange:
			// One-line lookahead; a marker on the final line updates nothing.
			if i+1 < len(lines) {
				if z, ok := gcode.ExtractZ(lines[i+1]); ok {
					st.layerChanged(z)
					sink.Record(diag.Event{
						Kind:    diag.KindLayerChange,
						Level:   slog.LevelInfo,
						Message: "layer change detected",
						Details: map[string]string{
							"layer": strconv.Itoa(st.currentLayer),
							"z":     formatFloat(st.currentZ),
						},
					})
				}
			}
		}

		if st.inObject {
			line = processInObject(st, out, res, ev, line, opts.ExtrusionMultiplier)
		}

		out.original(line)
	}

	if !res.PerimeterFound {
		sink.Record(diag.Event{
			Kind:    diag.KindNoPerimeters,
			Level:   slog.LevelWarn,
			Message: "no internal perimeters found in the file",
		})
	} else {
		sink.Record(diag.Event{
			Kind:    diag.KindSummary,
			Level:   slog.LevelInfo,
			Message: "processing complete",
			Details: map[string]string{
				"shifted_blocks": strconv.Itoa(res.ShiftedBlocks),
				"layers":         strconv.Itoa(st.currentLayer),
			},
		})
	}

	res.Lines = out.lines
	res.Layers = st.currentLayer
	return res, nil
}

// processInObject is the perimeter state machine, evaluated only inside an
// object scope. Returns the line to append, rewritten when a block opens on
// an extrusion move.
func processInObject(st *printState, out *emitter, res *Result, ev gcode.Event, line string, multiplier float64) string {
	if ev.Kind == gcode.EventFeature {
		// A feature transition always closes any open block first.
		if st.insideBlock {
			out.reset(st.currentZ, commentResetTransition)
			st.insideBlock = false
		}
		switch ev.Feature {
		case gcode.FeatureInner:
			st.perimeter = gcode.FeatureInner
			res.PerimeterFound = true
		case gcode.FeatureOuter:
			st.perimeter = gcode.FeatureOuter
			// The transition close above has already fired by this point,
			// so this branch cannot see an open block; it only matters if
			// that unconditional close is ever removed.
			if st.insideBlock {
				out.reset(st.currentZ, commentResetOuterWall)
				st.insideBlock = false
			}
		default:
			st.perimeter = gcode.FeatureNone
		}
	}

	if st.perimeter == gcode.FeatureInner && gcode.IsMove(line) {
		switch {
		case gcode.HasExtrusion(line):
			if !st.insideBlock {
				st.openBlock()
				out.shift(st.currentZ + st.zShift)
				res.ShiftedBlocks++
				// An E field with no parsable number still opens the block;
				// only the rewrite is skipped.
				if rewritten, ok := gcode.RewriteExtrusion(line, multiplier); ok {
					line = rewritten + annotationAdjustedE
				}
			}
		case gcode.HasFeed(line) && st.insideBlock:
			// Non-extruding travel move ends the inner-wall stroke.
			out.reset(st.currentZ, commentResetInnerWall)
			st.insideBlock = false
		}
	}

	return line
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
