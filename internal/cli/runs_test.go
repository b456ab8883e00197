package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/bricklayers/internal/store"
)

func execRuns(t *testing.T, rootOpts *RootOptions, args ...string) (*bytes.Buffer, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewRunsCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	return buf, cmd.Execute()
}

func seedRunsDB(t *testing.T) (string, store.Run) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "runs.db")
	st, err := store.Open(dbPath)
	require.NoError(t, err)
	defer st.Close()

	run := store.Run{
		ID:                  uuid.Must(uuid.NewV7()).String(),
		InputPath:           "benchy.gcode",
		Dialect:             "prusa",
		LayerHeight:         0.2,
		ExtrusionMultiplier: 1.0,
		Layers:              80,
		ShiftedBlocks:       160,
		PerimeterFound:      true,
	}
	require.NoError(t, st.RecordRun(context.Background(), run, nil))
	return dbPath, run
}

func TestRunsListsRecordedRuns(t *testing.T) {
	dbPath, run := seedRunsDB(t)

	buf, err := execRuns(t, &RootOptions{Format: "text"}, "--db", dbPath)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, run.ID)
	assert.Contains(t, out, "benchy.gcode")
	assert.Contains(t, out, "shifted=160")
}

func TestRunsJSON(t *testing.T) {
	dbPath, run := seedRunsDB(t)

	buf, err := execRuns(t, &RootOptions{Format: "json"}, "--db", dbPath)
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	data := resp.Data.(map[string]interface{})
	runs := data["runs"].([]interface{})
	require.Len(t, runs, 1)
	assert.Equal(t, run.ID, runs[0].(map[string]interface{})["id"])
}

func TestRunsEmptyDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")
	st, err := store.Open(dbPath)
	require.NoError(t, err)
	require.NoError(t, st.Close())

	buf, err := execRuns(t, &RootOptions{Format: "text"}, "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "no recorded runs")
}

func TestRunsMissingDatabase(t *testing.T) {
	_, err := execRuns(t, &RootOptions{Format: "text"},
		"--db", filepath.Join(t.TempDir(), "absent.db"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestRunsRequiresDBFlag(t *testing.T) {
	_, err := execRuns(t, &RootOptions{Format: "text"})
	require.Error(t, err)
}
