package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stablematch/store"
)

// RunOutput is one stored run.
type RunOutput struct {
	ID            string    `json:"id"`
	StartedAt     time.Time `json:"started_at"`
	N             int       `json:"n"`
	Rounds        int       `json:"rounds"`
	Seed          int64     `json:"seed"`
	Concurrent    bool      `json:"concurrent"`
	Successes     int       `json:"successes"`
	Failures      int       `json:"failures"`
	MeanElapsedNS int64     `json:"mean_elapsed_ns"`
}

// RunsResult is the payload of the runs command.
type RunsResult struct {
	Runs []RunOutput `json:"runs"`
}

// WriteText prints one line per run.
func (r RunsResult) WriteText(w io.Writer) error {
	if len(r.Runs) == 0 {
		_, err := fmt.Fprintln(w, "No runs recorded.")
		return err
	}
	for _, run := range r.Runs {
		mode := "sequential"
		if run.Concurrent {
			mode = "concurrent"
		}
		_, err := fmt.Fprintf(w, "%s  %s  n=%d rounds=%d seed=%d %s  ok=%d failed=%d mean=%s\n",
			run.ID, run.StartedAt.Format(time.RFC3339), run.N, run.Rounds, run.Seed, mode,
			run.Successes, run.Failures, time.Duration(run.MeanElapsedNS))
		if err != nil {
			return err
		}
	}
	return nil
}

// NewRunsCommand creates the runs command.
func NewRunsCommand(rootOpts *RootOptions) *cobra.Command {
	var storePath string

	cmd := &cobra.Command{
		Use:           "runs",
		Short:         "List trial runs recorded in a store",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("store") {
				storePath = rootOpts.Config.StorePath
			}
			return runRuns(cmd.Context(), rootOpts, storePath, cmd)
		},
	}

	cmd.Flags().StringVar(&storePath, "store", "", "SQLite database (default from config)")

	return cmd
}

func runRuns(ctx context.Context, opts *RootOptions, storePath string, cmd *cobra.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}
	f := opts.formatter(cmd)
	if storePath == "" {
		return f.Fail(NewExitError(ExitCommandError, "no store given: use --store or store_path"))
	}

	st, err := store.Open(ctx, storePath)
	if err != nil {
		return f.Fail(WrapExitError(ExitCommandError, "failed to open store", err))
	}
	defer st.Close()

	runs, err := st.Runs(ctx)
	if err != nil {
		return f.Fail(WrapExitError(ExitCommandError, "failed to list runs", err))
	}

	res := RunsResult{Runs: make([]RunOutput, 0, len(runs))}
	for _, r := range runs {
		res.Runs = append(res.Runs, RunOutput{
			ID:            r.ID.String(),
			StartedAt:     r.StartedAt,
			N:             r.N,
			Rounds:        r.Rounds,
			Seed:          r.Seed,
			Concurrent:    r.Concurrent,
			Successes:     r.Successes,
			Failures:      r.Failures,
			MeanElapsedNS: r.MeanElapsed.Nanoseconds(),
		})
	}
	return f.Success(res)
}
