package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execDetect(t *testing.T, rootOpts *RootOptions, args ...string) (*bytes.Buffer, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewDetectCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	return buf, cmd.Execute()
}

func TestDetectBambu(t *testing.T) {
	path := writeGcode(t, "G28\n; FEATURE: Outer wall\n")

	buf, err := execDetect(t, &RootOptions{Format: "text"}, path)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "bambu")
	assert.Contains(t, out, "line 2")
}

func TestDetectPrusaJSON(t *testing.T) {
	path := writeGcode(t, ";TYPE:Skirt/Brim\n")

	buf, err := execDetect(t, &RootOptions{Format: "json"}, path)
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "prusa", data["dialect"])
	assert.Equal(t, float64(1), data["line"])
	assert.Equal(t, ";TYPE:Skirt/Brim", data["text"])
}

func TestDetectNoMarkersDefaults(t *testing.T) {
	path := writeGcode(t, "G28\nG1 X0 Y0\n")

	buf, err := execDetect(t, &RootOptions{Format: "text"}, path)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "no feature markers found")
	assert.Contains(t, out, "bambu")
}

func TestDetectMissingFile(t *testing.T) {
	_, err := execDetect(t, &RootOptions{Format: "text"}, "/nonexistent/part.gcode")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
