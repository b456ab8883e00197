package gcode

import "strings"

// Marker vocabulary. These literals are matched as substrings anywhere in a
// line and must be reproduced byte-exact; slicers emit them verbatim.
const (
	// Feature-tag prefixes, one per dialect.
	MarkerFeatureBambu = "; FEATURE:"
	MarkerFeaturePrusa = ";TYPE:"

	// Feature-tag spellings for the two wall types the rewriter acts on.
	MarkerInnerWallBambu = "; FEATURE: Inner wall"
	MarkerInnerWallPrusa = ";TYPE:Inner wall"
	MarkerOuterWallBambu = "; FEATURE: Outer wall"
	MarkerOuterWallPrusa = ";TYPE:Outer wall"

	// Layer-change markers. The Z height is read from the line that follows.
	MarkerLayerChangeBambu = "; CHANGE_LAYER"
	MarkerLayerChangePrusa = ";LAYER_CHANGE"

	// Object scope markers. M624/M625 are the Bambu firmware convention,
	// EXCLUDE_OBJECT_* the Klipper/Prusa one.
	MarkerObjectStartBambu = "M624"
	MarkerObjectStartPrusa = "EXCLUDE_OBJECT_START"
	MarkerObjectEndBambu   = "M625"
	MarkerObjectEndPrusa   = "EXCLUDE_OBJECT_END"
)

// EventKind tags the marker role of a single input line.
type EventKind string

const (
	// EventOther is any line carrying no recognized marker, including all
	// plain motion lines.
	EventOther EventKind = "other"

	// EventFeature is a feature-tag comment (either dialect's prefix).
	EventFeature EventKind = "feature"

	// EventLayerChange is a layer-change marker.
	EventLayerChange EventKind = "layer_change"

	// EventObjectStart enters an object scope.
	EventObjectStart EventKind = "object_start"

	// EventObjectEnd leaves an object scope.
	EventObjectEnd EventKind = "object_end"
)

// Feature classifies the text of a feature-tag line.
type Feature string

const (
	// FeatureNone means no feature is active, or a feature tag that is
	// neither an inner nor an outer wall.
	FeatureNone Feature = "none"

	// FeatureInner is an inner-wall (internal perimeter) tag.
	FeatureInner Feature = "inner"

	// FeatureOuter is an outer-wall (external perimeter) tag.
	FeatureOuter Feature = "outer"
)

// Event is the classification of one input line.
// Feature is meaningful only when Kind is EventFeature.
type Event struct {
	Kind    EventKind
	Feature Feature
}

// Classify maps a line to its tagged event. A line matches at most one kind;
// object markers win over layer changes, which win over feature tags, so a
// pathological line carrying several markers behaves like its highest-priority
// one.
func Classify(line string) Event {
	switch {
	case strings.Contains(line, MarkerObjectStartBambu) || strings.Contains(line, MarkerObjectStartPrusa):
		return Event{Kind: EventObjectStart}
	case strings.Contains(line, MarkerObjectEndBambu) || strings.Contains(line, MarkerObjectEndPrusa):
		return Event{Kind: EventObjectEnd}
	case strings.Contains(line, MarkerLayerChangeBambu) || strings.Contains(line, MarkerLayerChangePrusa):
		return Event{Kind: EventLayerChange}
	case strings.Contains(line, MarkerFeatureBambu) || strings.Contains(line, MarkerFeaturePrusa):
		return Event{Kind: EventFeature, Feature: classifyFeature(line)}
	default:
		return Event{Kind: EventOther}
	}
}

// classifyFeature inspects the text of a feature-tag line.
func classifyFeature(line string) Feature {
	switch {
	case strings.Contains(line, MarkerInnerWallBambu) || strings.Contains(line, MarkerInnerWallPrusa):
		return FeatureInner
	case strings.Contains(line, MarkerOuterWallBambu) || strings.Contains(line, MarkerOuterWallPrusa):
		return FeatureOuter
	default:
		return FeatureNone
	}
}
