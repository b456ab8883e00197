package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/bricklayers/internal/fileio"
	"github.com/roach88/bricklayers/internal/gcode"
)

// DetectResult is the detect command's result payload.
type DetectResult struct {
	Input   string `json:"input"`
	Dialect string `json:"dialect"`
	// Line is the 1-based number of the line that triggered detection,
	// 0 when no marker was found and the dialect is the default.
	Line int    `json:"line,omitempty"`
	Text string `json:"text,omitempty"`
}

func (r DetectResult) String() string {
	if r.Line == 0 {
		return fmt.Sprintf("%s: no feature markers found, defaulting to %s", r.Input, r.Dialect)
	}
	return fmt.Sprintf("%s: %s (line %d: %s)", r.Input, r.Dialect, r.Line, r.Text)
}

// NewDetectCommand creates the detect command.
func NewDetectCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect <gcode-file>",
		Short: "Report which slicer dialect a file uses",
		Long: `Scan a G-code file for the first feature-tag comment and report which
slicer dialect produced it. Detection is informational: processing recognizes
both dialects' markers regardless of the result.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetect(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runDetect(opts *RootOptions, inputPath string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	lines, err := fileio.ReadLines(inputPath)
	if err != nil {
		return fail(formatter, ExitCommandError, "failed to read input", err)
	}
	formatter.VerboseLog("scanning %d lines from %s", len(lines), inputPath)

	dialect, idx := gcode.DetectDialect(lines)
	result := DetectResult{
		Input:   inputPath,
		Dialect: string(dialect),
	}
	if idx >= 0 {
		result.Line = idx + 1
		result.Text = strings.TrimSpace(lines[idx])
	}

	return formatter.Success(result)
}
