package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/roach88/bricklayers/internal/config"
	"github.com/roach88/bricklayers/internal/diag"
	"github.com/roach88/bricklayers/internal/engine"
	"github.com/roach88/bricklayers/internal/fileio"
	"github.com/roach88/bricklayers/internal/store"
)

// Default print parameters, used when neither flag nor profile sets them.
const (
	DefaultLayerHeight         = 0.2
	DefaultExtrusionMultiplier = 1.0
)

// ProcessOptions holds flags for the process command.
type ProcessOptions struct {
	*RootOptions
	LayerHeight         float64
	ExtrusionMultiplier float64
	Profile             string
	Output              string
	DryRun              bool
	LogDB               string
}

// ProcessSummary is the process command's result payload.
type ProcessSummary struct {
	RunID               string  `json:"run_id,omitempty"`
	Input               string  `json:"input"`
	Output              string  `json:"output,omitempty"`
	DryRun              bool    `json:"dry_run,omitempty"`
	Dialect             string  `json:"dialect"`
	LayerHeight         float64 `json:"layer_height"`
	ExtrusionMultiplier float64 `json:"extrusion_multiplier"`
	Layers              int     `json:"layers"`
	ShiftedBlocks       int     `json:"shifted_blocks"`
	PerimeterFound      bool    `json:"perimeter_found"`
}

func (s ProcessSummary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Processed %s (dialect: %s)\n", s.Input, s.Dialect)
	fmt.Fprintf(&b, "  layers: %d, shifted blocks: %d\n", s.Layers, s.ShiftedBlocks)
	if !s.PerimeterFound {
		b.WriteString("  warning: no inner walls found, output unchanged\n")
	}
	switch {
	case s.DryRun:
		b.WriteString("  dry run: nothing written")
	case s.Output != s.Input:
		fmt.Fprintf(&b, "  written to %s", s.Output)
	default:
		b.WriteString("  overwritten in place")
	}
	return b.String()
}

// NewProcessCommand creates the process command.
func NewProcessCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ProcessOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "process <gcode-file>",
		Short: "Rewrite a G-code file with bricklaying Z shifts",
		Long: `Rewrite a sliced G-code file in one pass, shifting each inner-wall
perimeter block up by half a layer height and scaling its opening extrusion.

The whole file is read into memory, rewritten, and written back to the same
path only after the pass succeeds. Do not process a file twice: the transform
is not idempotent and would re-shift already-shifted walls.

Example:
  bricklayers process part.gcode --layer-height 0.2 --extrusion-multiplier 1.5
  bricklayers process part.gcode --profile voron.yaml --log-db runs.db`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProcess(opts, args[0], cmd)
		},
	}

	cmd.Flags().Float64Var(&opts.LayerHeight, "layer-height", DefaultLayerHeight, "layer height in mm")
	cmd.Flags().Float64Var(&opts.ExtrusionMultiplier, "extrusion-multiplier", DefaultExtrusionMultiplier, "multiplier for shifted blocks' opening extrusion")
	cmd.Flags().StringVar(&opts.Profile, "profile", "", "path to a YAML print profile")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "write result here instead of overwriting the input")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "process but write nothing")
	cmd.Flags().StringVar(&opts.LogDB, "log-db", "", "record the run in this SQLite database")

	return cmd
}

func runProcess(opts *ProcessOptions, inputPath string, cmd *cobra.Command) error {
	logger := newLogger(opts.Verbose)
	formatter := newFormatter(opts.RootOptions, cmd)

	layerHeight, multiplier, err := resolveParams(opts, cmd)
	if err != nil {
		return fail(formatter, ExitCommandError, "failed to load profile", err)
	}

	lines, err := fileio.ReadLines(inputPath)
	if err != nil {
		return fail(formatter, ExitCommandError, "failed to read input", err)
	}
	formatter.VerboseLog("read %d lines from %s", len(lines), inputPath)

	recorder := &diag.Recorder{}
	result, err := engine.Process(lines, engine.Options{
		LayerHeight:         layerHeight,
		ExtrusionMultiplier: multiplier,
		Sink:                diag.Multi(diag.Logger{L: logger}, recorder),
	})
	if err != nil {
		return fail(formatter, ExitCommandError, "processing failed", err)
	}

	outputPath := opts.Output
	if outputPath == "" {
		outputPath = inputPath
	}
	if !opts.DryRun {
		// Plain in-place overwrite; a failure here can leave a partial file.
		if err := fileio.WriteLines(outputPath, result.Lines); err != nil {
			return fail(formatter, ExitFailure, "failed to write output", err)
		}
	}

	summary := ProcessSummary{
		Input:               inputPath,
		Output:              outputPath,
		DryRun:              opts.DryRun,
		Dialect:             string(result.Dialect),
		LayerHeight:         layerHeight,
		ExtrusionMultiplier: multiplier,
		Layers:              result.Layers,
		ShiftedBlocks:       result.ShiftedBlocks,
		PerimeterFound:      result.PerimeterFound,
	}

	if opts.LogDB != "" {
		summary.RunID = uuid.Must(uuid.NewV7()).String()
		if err := recordRun(cmd, opts.LogDB, summary, recorder.Events()); err != nil {
			return fail(formatter, ExitFailure, "failed to record run", err)
		}
	}

	return formatter.Success(summary)
}

// resolveParams merges profile values with flags. An explicitly set flag wins
// over the profile; the profile wins over flag defaults.
func resolveParams(opts *ProcessOptions, cmd *cobra.Command) (layerHeight, multiplier float64, err error) {
	layerHeight = opts.LayerHeight
	multiplier = opts.ExtrusionMultiplier
	if opts.Profile == "" {
		return layerHeight, multiplier, nil
	}

	profile, err := config.LoadProfile(opts.Profile)
	if err != nil {
		return 0, 0, err
	}
	if profile.LayerHeight > 0 && !cmd.Flags().Changed("layer-height") {
		layerHeight = profile.LayerHeight
	}
	if profile.ExtrusionMultiplier > 0 && !cmd.Flags().Changed("extrusion-multiplier") {
		multiplier = profile.ExtrusionMultiplier
	}
	return layerHeight, multiplier, nil
}

// recordRun persists the run and its diagnostics to the history database.
func recordRun(cmd *cobra.Command, dbPath string, summary ProcessSummary, events []diag.Event) error {
	st, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing run database", "error", closeErr)
		}
	}()

	return st.RecordRun(cmd.Context(), store.Run{
		ID:                  summary.RunID,
		InputPath:           summary.Input,
		Dialect:             summary.Dialect,
		LayerHeight:         summary.LayerHeight,
		ExtrusionMultiplier: summary.ExtrusionMultiplier,
		Layers:              summary.Layers,
		ShiftedBlocks:       summary.ShiftedBlocks,
		PerimeterFound:      summary.PerimeterFound,
	}, events)
}

// newLogger configures slog output based on the verbose flag and installs it
// as the default.
func newLogger(verbose bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
