package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/roach88/bricklayers/internal/diag"
)

// Run is one recorded processing run.
type Run struct {
	ID                  string  `json:"id"`
	InputPath           string  `json:"input_path"`
	Dialect             string  `json:"dialect"`
	LayerHeight         float64 `json:"layer_height"`
	ExtrusionMultiplier float64 `json:"extrusion_multiplier"`
	Layers              int     `json:"layers"`
	ShiftedBlocks       int     `json:"shifted_blocks"`
	PerimeterFound      bool    `json:"perimeter_found"`
	CreatedAt           string  `json:"created_at,omitempty"`
}

// RecordRun inserts a run and its diagnostic events in one transaction.
// Events are stored with their emission order as seq. A duplicate run ID is
// an error: run IDs are freshly generated UUIDs, so a collision means a
// caller bug.
func (s *Store) RecordRun(ctx context.Context, run Run, events []diag.Event) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("record run: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs
		(id, input_path, dialect, layer_height, extrusion_multiplier, layers, shifted_blocks, perimeter_found)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		run.ID,
		run.InputPath,
		run.Dialect,
		run.LayerHeight,
		run.ExtrusionMultiplier,
		run.Layers,
		run.ShiftedBlocks,
		run.PerimeterFound,
	)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}

	for seq, ev := range events {
		var details []byte
		if ev.Details != nil {
			details, err = json.Marshal(ev.Details)
			if err != nil {
				return fmt.Errorf("record run: marshal event details: %w", err)
			}
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO run_events (run_id, seq, kind, level, message, details)
			VALUES (?, ?, ?, ?, ?, ?)
		`,
			run.ID,
			seq,
			string(ev.Kind),
			ev.Level.String(),
			ev.Message,
			nullableString(details),
		)
		if err != nil {
			return fmt.Errorf("record run: event %d: %w", seq, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("record run: commit: %w", err)
	}
	return nil
}

// nullableString maps empty JSON to SQL NULL.
func nullableString(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return string(b)
}
