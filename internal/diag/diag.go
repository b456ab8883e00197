// Package diag defines the structured diagnostic events the rewriting engine
// emits and the sinks that consume them. The engine depends only on the Sink
// interface; whether events end up on stderr, in SQLite, or nowhere at all is
// the caller's wiring decision.
package diag

import (
	"context"
	"log/slog"
)

// Kind categorizes a diagnostic event.
type Kind string

const (
	// KindSettings records the effective run parameters.
	KindSettings Kind = "settings"

	// KindDialect records which dialect was detected and the line that
	// triggered the match.
	KindDialect Kind = "dialect_detected"

	// KindNoMarkers warns that no feature tag exists anywhere in the file.
	KindNoMarkers Kind = "no_markers"

	// KindLayerChange records a recognized layer change with its Z value.
	KindLayerChange Kind = "layer_change"

	// KindNoPerimeters warns that the whole run contained no inner walls.
	KindNoPerimeters Kind = "no_perimeters"

	// KindSummary records the final block/layer counts.
	KindSummary Kind = "summary"
)

// Event is one diagnostic record. Details carries event-specific fields as
// strings so sinks can persist them without knowing every kind.
type Event struct {
	Kind    Kind
	Level   slog.Level
	Message string
	Details map[string]string
}

// Sink consumes diagnostic events in emission order.
type Sink interface {
	Record(Event)
}

// Discard is a Sink that drops every event.
var Discard Sink = discard{}

type discard struct{}

func (discard) Record(Event) {}

// Logger adapts a slog.Logger into a Sink.
type Logger struct {
	L *slog.Logger
}

// Record logs the event at its level with Details flattened into attrs.
func (s Logger) Record(e Event) {
	attrs := make([]any, 0, 2+2*len(e.Details))
	attrs = append(attrs, "kind", string(e.Kind))
	for k, v := range e.Details {
		attrs = append(attrs, k, v)
	}
	s.L.Log(context.Background(), e.Level, e.Message, attrs...)
}

// Recorder captures events in order, for persistence or assertions.
type Recorder struct {
	events []Event
}

// Record appends the event.
func (r *Recorder) Record(e Event) {
	r.events = append(r.events, e)
}

// Events returns the captured events in emission order.
func (r *Recorder) Events() []Event {
	return r.events
}

// Multi fans one event out to several sinks in order.
func Multi(sinks ...Sink) Sink {
	return multi(sinks)
}

type multi []Sink

func (m multi) Record(e Event) {
	for _, s := range m {
		s.Record(e)
	}
}
