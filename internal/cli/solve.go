package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/stablematch/matching"
	"github.com/katalvlaran/stablematch/matrix"
)

// PairOutput is one matched pair in file numbering.
type PairOutput struct {
	Proposer int `json:"proposer"`
	Reviewer int `json:"reviewer"`
}

// SolveResult is the payload of the solve command.
type SolveResult struct {
	N         int          `json:"n"`
	Proposals int          `json:"proposals,omitempty"`
	ElapsedNS int64        `json:"elapsed_ns,omitempty"`
	Pairs     []PairOutput `json:"pairs"`

	timing bool
}

// WriteText prints one "proposer reviewer" line per pair.
func (r SolveResult) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Proposer\tReviewer\n"); err != nil {
		return err
	}
	for _, p := range r.Pairs {
		if _, err := fmt.Fprintf(w, "%d\t%d\n", p.Proposer, p.Reviewer); err != nil {
			return err
		}
	}
	if r.Proposals > 0 {
		if _, err := fmt.Fprintf(w, "\nProposals: %d\n", r.Proposals); err != nil {
			return err
		}
	}
	if r.timing {
		if _, err := fmt.Fprintf(w, "Elapsed: %s\n", time.Duration(r.ElapsedNS)); err != nil {
			return err
		}
	}
	return nil
}

type solveFlags struct {
	queue      bool
	concurrent bool
	workers    int
	timing     bool
}

// NewSolveCommand creates the solve command.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &solveFlags{}

	cmd := &cobra.Command{
		Use:   "solve <matrix-file>",
		Short: "Solve the instance stored in a preference matrix file",
		Long: `Read a preference matrix file and print the proposer-optimal stable
matching using the file's numbering (reviewers are n..2n-1).`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd.Context(), rootOpts, flags, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&flags.queue, "queue", false, "process free proposers first-in first-out")
	cmd.Flags().BoolVar(&flags.concurrent, "concurrent", false, "use the concurrent solver")
	cmd.Flags().IntVar(&flags.workers, "workers", 0, "concurrent solver workers (0 = GOMAXPROCS)")
	cmd.Flags().BoolVar(&flags.timing, "timing", true, "report elapsed time")

	return cmd
}

func runSolve(ctx context.Context, opts *RootOptions, flags *solveFlags, path string, cmd *cobra.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}
	f := opts.formatter(cmd)
	log := opts.logger()

	in, err := matrix.ReadFile(path)
	if err != nil {
		return f.Fail(WrapExitError(ExitCommandError, "failed to read matrix", err))
	}
	n := in.N()
	f.VerboseLog("Loaded %s (n=%d)", path, n)

	var res matching.Result
	if flags.concurrent {
		res, err = matching.SolveConcurrentInstance(ctx, in, flags.workers)
	} else {
		var sopts []matching.Option
		if flags.queue {
			sopts = append(sopts, matching.WithQueue())
		}
		res, err = matching.SolveInstance(in, sopts...)
	}
	if err != nil {
		return f.Fail(WrapExitError(ExitCommandError, "failed to solve", err))
	}
	log.Debug("instance solved",
		zap.String("path", path),
		zap.Int("n", n),
		zap.Int("proposals", res.Proposals),
		zap.Duration("elapsed", res.Elapsed))

	out := SolveResult{N: n, Proposals: res.Proposals, Pairs: make([]PairOutput, n), timing: flags.timing}
	if flags.timing {
		out.ElapsedNS = res.Elapsed.Nanoseconds()
	}
	for p, r := range res.Matching {
		out.Pairs[p] = PairOutput{Proposer: p, Reviewer: matrix.ReviewerLabel(n, r)}
	}

	return f.Success(out)
}
