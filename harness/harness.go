package harness

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/stablematch/builder"
	"github.com/katalvlaran/stablematch/matching"
	"github.com/katalvlaran/stablematch/matrix"
	"github.com/katalvlaran/stablematch/reference"
)

// solverFunc runs the engine under test on one instance.
type solverFunc func(ctx context.Context, in matching.Instance, opts Options) (matching.Result, error)

// Run executes opts.Rounds trials and returns the aggregated report.
// A nil logger is replaced by zap.NewNop(). Engine or reference errors abort
// the run; a mismatch does not and is counted as a failure.
func Run(ctx context.Context, opts Options, logger *zap.Logger) (Report, error) {
	return run(ctx, opts, logger, engineSolve)
}

func run(ctx context.Context, opts Options, logger *zap.Logger, solve solverFunc) (Report, error) {
	if opts.N < 0 || opts.Rounds < 0 {
		return Report{}, fmt.Errorf("%w: n=%d rounds=%d", ErrInvalidOptions, opts.N, opts.Rounds)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	rep := Report{
		RunID:      uuid.New(),
		StartedAt:  time.Now().UTC(),
		N:          opts.N,
		Rounds:     opts.Rounds,
		Seed:       opts.Seed,
		Concurrent: opts.Concurrent,
		Trials:     make([]Trial, opts.Rounds),
	}
	log := logger.With(zap.String("run_id", rep.RunID.String()), zap.Int("n", opts.N))
	log.Info("trial run started", zap.Int("rounds", opts.Rounds), zap.Int64("seed", opts.Seed),
		zap.Bool("concurrent", opts.Concurrent))

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < opts.Rounds; i++ {
		g.Go(func() error {
			tr, err := runRound(gctx, i, opts, solve, log)
			if err != nil {
				return err
			}
			// Each round owns its slot.
			rep.Trials[i] = tr
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Error("trial run aborted", zap.Error(err))
		return Report{}, err
	}

	var total time.Duration
	for _, tr := range rep.Trials {
		if tr.OK {
			rep.Successes++
		} else {
			rep.Failures++
		}
		total += tr.Elapsed
	}
	if rep.Rounds > 0 {
		rep.MeanElapsed = total / time.Duration(rep.Rounds)
	}

	log.Info("trial run finished",
		zap.Int("successes", rep.Successes),
		zap.Int("failures", rep.Failures),
		zap.Duration("mean_elapsed", rep.MeanElapsed),
		zap.Int("matrix_size", rep.MatrixSize()))

	if opts.Recorder != nil {
		if err := opts.Recorder.Record(ctx, rep); err != nil {
			return rep, fmt.Errorf("harness: record run %s: %w", rep.RunID, err)
		}
	}

	return rep, nil
}

// runRound generates, solves and compares one instance.
func runRound(ctx context.Context, i int, opts Options, solve solverFunc, log *zap.Logger) (Trial, error) {
	if err := ctx.Err(); err != nil {
		return Trial{}, err
	}

	seed := builder.DeriveSeed(opts.Seed, uint64(i))
	in, err := builder.RandomPreferences(opts.N, builder.WithSeed(seed))
	if err != nil {
		return Trial{}, fmt.Errorf("round %d: generate: %w", i, err)
	}

	res, err := solve(ctx, in, opts)
	if err != nil {
		return Trial{}, fmt.Errorf("round %d: engine: %w", i, err)
	}
	ref, err := reference.McVitieWilson(in.Proposers, in.Reviewers)
	if err != nil {
		return Trial{}, fmt.Errorf("round %d: reference: %w", i, err)
	}

	tr := Trial{
		Round:     i,
		Seed:      seed,
		Engine:    res.Matching,
		Reference: ref,
		Proposals: res.Proposals,
		Elapsed:   res.Elapsed,
		OK:        res.Matching.Equal(ref),
	}
	log.Debug("round finished",
		zap.Int("round", i),
		zap.Bool("ok", tr.OK),
		zap.Int("proposals", tr.Proposals),
		zap.Duration("elapsed", tr.Elapsed))

	if !tr.OK {
		log.Warn("engine disagrees with reference",
			zap.Int("round", i),
			zap.Int64("seed", seed),
			zap.Ints("engine", tr.Engine),
			zap.Ints("reference", tr.Reference))
		if opts.FailureDir != "" {
			path := filepath.Join(opts.FailureDir, fmt.Sprintf("round-%d.dat", i))
			if werr := matrix.WriteFile(path, in); werr != nil {
				log.Warn("could not save failing instance", zap.String("path", path), zap.Error(werr))
			}
		}
	}

	return tr, nil
}

// engineSolve is the production solverFunc.
func engineSolve(ctx context.Context, in matching.Instance, opts Options) (matching.Result, error) {
	if !opts.Concurrent {
		return matching.SolveInstance(in)
	}
	return matching.SolveConcurrentInstance(ctx, in, opts.SolverWorkers)
}
