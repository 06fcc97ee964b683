package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stablematch/harness"
	"github.com/katalvlaran/stablematch/store"
)

// TrialsResult is the payload of the trials command.
type TrialsResult struct {
	RunID         string `json:"run_id"`
	N             int    `json:"n"`
	Rounds        int    `json:"rounds"`
	Seed          int64  `json:"seed"`
	Concurrent    bool   `json:"concurrent"`
	SolverWorkers int    `json:"solver_workers,omitempty"`
	Successes     int    `json:"successes"`
	Failures      int    `json:"failures"`
	MeanElapsedNS int64  `json:"mean_elapsed_ns"`
	MatrixSize    int    `json:"matrix_size"`
	FailedRounds  []int  `json:"failed_rounds,omitempty"`
}

func newTrialsResult(rep harness.Report) TrialsResult {
	res := TrialsResult{
		RunID:         rep.RunID.String(),
		N:             rep.N,
		Rounds:        rep.Rounds,
		Seed:          rep.Seed,
		Concurrent:    rep.Concurrent,
		Successes:     rep.Successes,
		Failures:      rep.Failures,
		MeanElapsedNS: rep.MeanElapsed.Nanoseconds(),
		MatrixSize:    rep.MatrixSize(),
	}
	for _, tr := range rep.Trials {
		if !tr.OK {
			res.FailedRounds = append(res.FailedRounds, tr.Round)
		}
	}
	return res
}

// WriteText prints the run summary.
func (r TrialsResult) WriteText(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"Run:         %s\nRounds:      %d\nSuccesses:   %d\nFailures:    %d\nMean time:   %s\nn:           %d\nMatrix size: %d\n",
		r.RunID, r.Rounds, r.Successes, r.Failures, time.Duration(r.MeanElapsedNS), r.N, r.MatrixSize)
	if err != nil {
		return err
	}
	if len(r.FailedRounds) > 0 {
		_, err = fmt.Fprintf(w, "Failed:      %v\n", r.FailedRounds)
	}
	return err
}

type trialsFlags struct {
	n             int
	rounds        int
	seed          int64
	workers       int
	solverWorkers int
	concurrent    bool
	storePath     string
	failuresDir   string
}

// NewTrialsCommand creates the trials command.
func NewTrialsCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &trialsFlags{}

	cmd := &cobra.Command{
		Use:   "trials",
		Short: "Compare the engine with the reference on random instances",
		Long: `Run repeated trials: every round generates a random instance, solves it
with the engine and with an independent reference solver, and compares the
matchings. Exits with status 1 when any round disagrees.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.applyConfig(cmd, rootOpts)
			return runTrials(cmd.Context(), rootOpts, flags, cmd)
		},
	}

	cmd.Flags().IntVar(&flags.n, "n", 0, "group size (default from config)")
	cmd.Flags().IntVar(&flags.rounds, "rounds", 0, "number of trials (default from config)")
	cmd.Flags().Int64Var(&flags.seed, "seed", 0, "run seed (default from config)")
	cmd.Flags().IntVar(&flags.workers, "workers", 0, "rounds run in parallel (0 = GOMAXPROCS)")
	cmd.Flags().IntVar(&flags.solverWorkers, "solver-workers", 0, "concurrent solver workers per round (0 = GOMAXPROCS)")
	cmd.Flags().BoolVar(&flags.concurrent, "concurrent", false, "use the concurrent solver")
	cmd.Flags().StringVar(&flags.storePath, "store", "", "SQLite database recording the run")
	cmd.Flags().StringVar(&flags.failuresDir, "failures-dir", "", "directory receiving mismatching instances")

	return cmd
}

// applyConfig fills flags that were not given on the command line.
func (t *trialsFlags) applyConfig(cmd *cobra.Command, opts *RootOptions) {
	cfg := opts.Config
	fl := cmd.Flags()
	if !fl.Changed("n") {
		t.n = cfg.N
	}
	if !fl.Changed("rounds") {
		t.rounds = cfg.Rounds
	}
	if !fl.Changed("seed") {
		t.seed = cfg.Seed
	}
	if !fl.Changed("workers") {
		t.workers = cfg.Workers
	}
	if !fl.Changed("solver-workers") {
		t.solverWorkers = cfg.SolverWorkers
	}
	if !fl.Changed("concurrent") {
		t.concurrent = cfg.Concurrent
	}
	if !fl.Changed("store") {
		t.storePath = cfg.StorePath
	}
}

func runTrials(ctx context.Context, opts *RootOptions, flags *trialsFlags, cmd *cobra.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}
	f := opts.formatter(cmd)

	hopts := harness.Options{
		N:             flags.n,
		Rounds:        flags.rounds,
		Seed:          flags.seed,
		Workers:       flags.workers,
		Concurrent:    flags.concurrent,
		SolverWorkers: flags.solverWorkers,
		FailureDir:    flags.failuresDir,
	}
	if flags.storePath != "" {
		st, err := store.Open(ctx, flags.storePath)
		if err != nil {
			return f.Fail(WrapExitError(ExitCommandError, "failed to open store", err))
		}
		defer st.Close()
		hopts.Recorder = st
		f.VerboseLog("Recording run in %s", flags.storePath)
	}

	rep, err := harness.Run(ctx, hopts, opts.logger())
	if err != nil {
		return f.Fail(WrapExitError(ExitCommandError, "trial run failed", err))
	}

	res := newTrialsResult(rep)
	if rep.Concurrent {
		res.SolverWorkers = hopts.SolverWorkers
	}
	if err := f.Success(res); err != nil {
		return err
	}
	if !rep.Passed() {
		return NewExitError(ExitFailure,
			fmt.Sprintf("%d of %d rounds disagreed with the reference", rep.Failures, rep.Rounds))
	}
	return nil
}
