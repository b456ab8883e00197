package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// RunEvent is one persisted diagnostic event, read back for inspection.
type RunEvent struct {
	Seq     int               `json:"seq"`
	Kind    string            `json:"kind"`
	Level   string            `json:"level"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// ListRuns returns all recorded runs, most recent first.
func (s *Store) ListRuns(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, input_path, dialect, layer_height, extrusion_multiplier,
		       layers, shifted_blocks, perimeter_found, created_at
		FROM runs
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(
			&r.ID,
			&r.InputPath,
			&r.Dialect,
			&r.LayerHeight,
			&r.ExtrusionMultiplier,
			&r.Layers,
			&r.ShiftedBlocks,
			&r.PerimeterFound,
			&r.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("list runs: scan: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}

// RunEvents returns the diagnostic events of one run in emission order.
func (s *Store) RunEvents(ctx context.Context, runID string) ([]RunEvent, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT seq, kind, level, message, details
		FROM run_events
		WHERE run_id = ?
		ORDER BY seq
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("run events: %w", err)
	}
	defer rows.Close()

	var events []RunEvent
	for rows.Next() {
		var ev RunEvent
		var details sql.NullString
		if err := rows.Scan(&ev.Seq, &ev.Kind, &ev.Level, &ev.Message, &details); err != nil {
			return nil, fmt.Errorf("run events: scan: %w", err)
		}
		if details.Valid {
			if err := json.Unmarshal([]byte(details.String), &ev.Details); err != nil {
				return nil, fmt.Errorf("run events: decode details for seq %d: %w", ev.Seq, err)
			}
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("run events: %w", err)
	}
	return events, nil
}
