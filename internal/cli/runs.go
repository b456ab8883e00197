package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/bricklayers/internal/store"
)

// RunsOptions holds flags for the runs command.
type RunsOptions struct {
	*RootOptions
	Database string
}

// RunsList is the runs command's result payload.
type RunsList struct {
	Runs []store.Run `json:"runs"`
}

func (l RunsList) String() string {
	if len(l.Runs) == 0 {
		return "no recorded runs"
	}
	var b strings.Builder
	for i, r := range l.Runs {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s  %s  %s  layers=%d shifted=%d", r.CreatedAt, r.ID, r.InputPath, r.Layers, r.ShiftedBlocks)
		if !r.PerimeterFound {
			b.WriteString(" (no inner walls)")
		}
	}
	return b.String()
}

// NewRunsCommand creates the runs command.
func NewRunsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recorded processing runs",
		Long: `List the processing runs recorded in a run-history database
(written by "process --log-db"), most recent first.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRuns(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to the run-history database (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runRuns(opts *RunsOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	if _, err := os.Stat(opts.Database); err != nil {
		return fail(formatter, ExitCommandError, "run-history database not found", err)
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return fail(formatter, ExitCommandError, "failed to open database", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing run database", "error", closeErr)
		}
	}()

	runs, err := st.ListRuns(cmd.Context())
	if err != nil {
		return fail(formatter, ExitCommandError, "failed to list runs", err)
	}
	formatter.VerboseLog("loaded %d runs from %s", len(runs), opts.Database)

	return formatter.Success(RunsList{Runs: runs})
}
