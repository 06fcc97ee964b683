package harness

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/stablematch/matching"
)

// ErrInvalidOptions reports negative sizes or round counts.
var ErrInvalidOptions = errors.New("harness: invalid options")

// Options configures a trial run.
type Options struct {
	// N is the group size of every generated instance.
	N int
	// Rounds is the number of independent trials.
	Rounds int
	// Seed is the run seed; round i uses builder.DeriveSeed(Seed, i).
	Seed int64
	// Workers bounds the rounds executing at once; ≤ 0 means GOMAXPROCS.
	Workers int
	// Concurrent switches the engine to matching.SolveConcurrent.
	Concurrent bool
	// SolverWorkers is passed to SolveConcurrent; ≤ 0 means GOMAXPROCS.
	SolverWorkers int
	// FailureDir, when set, receives the preference matrix of every
	// mismatching round as round-<i>.dat for later reproduction.
	FailureDir string
	// Recorder, when set, receives the final report.
	Recorder Recorder
}

// Recorder persists finished reports.
type Recorder interface {
	Record(ctx context.Context, r Report) error
}

// Trial is the outcome of a single round.
type Trial struct {
	Round     int
	Seed      int64
	Engine    matching.Matching
	Reference matching.Matching
	Proposals int
	Elapsed   time.Duration
	OK        bool
}

// Report aggregates a run.
type Report struct {
	RunID       uuid.UUID
	StartedAt   time.Time
	N           int
	Rounds      int
	Seed        int64
	Concurrent  bool
	Successes   int
	Failures    int
	MeanElapsed time.Duration
	Trials      []Trial
}

// MatrixSize is the number of entries in one preference matrix file (2n²).
func (r Report) MatrixSize() int { return 2 * r.N * r.N }

// Passed reports whether every round matched the reference.
func (r Report) Passed() bool { return r.Failures == 0 }
