package harness_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/stablematch/harness"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// recorderFunc adapts a function to harness.Recorder.
type recorderFunc func(ctx context.Context, r harness.Report) error

func (f recorderFunc) Record(ctx context.Context, r harness.Report) error { return f(ctx, r) }

func TestRun_AllRoundsPass(t *testing.T) {
	for _, concurrent := range []bool{false, true} {
		rep, err := harness.Run(context.Background(), harness.Options{
			N: 8, Rounds: 12, Seed: 5, Workers: 3, Concurrent: concurrent, SolverWorkers: 2,
		}, nil)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, rep.RunID)
		assert.Equal(t, 12, rep.Rounds)
		assert.Equal(t, 12, rep.Successes)
		assert.Zero(t, rep.Failures)
		assert.True(t, rep.Passed())
		assert.Equal(t, 128, rep.MatrixSize())
		assert.Equal(t, concurrent, rep.Concurrent)
		require.Len(t, rep.Trials, 12)
		for i, tr := range rep.Trials {
			assert.Equal(t, i, tr.Round)
			assert.True(t, tr.OK)
			assert.Len(t, tr.Engine, 8)
			assert.GreaterOrEqual(t, tr.Proposals, 8, "every proposer proposes at least once")
		}
	}
}

// TestRun_Deterministic: the same seed reproduces every round.
func TestRun_Deterministic(t *testing.T) {
	opts := harness.Options{N: 10, Rounds: 6, Seed: 42}
	a, err := harness.Run(context.Background(), opts, nil)
	require.NoError(t, err)
	b, err := harness.Run(context.Background(), opts, nil)
	require.NoError(t, err)

	assert.NotEqual(t, a.RunID, b.RunID)
	for i := range a.Trials {
		assert.Equal(t, a.Trials[i].Seed, b.Trials[i].Seed)
		assert.Equal(t, a.Trials[i].Engine, b.Trials[i].Engine)
		assert.Equal(t, a.Trials[i].Proposals, b.Trials[i].Proposals)
	}
}

func TestRun_EmptyAndZeroRounds(t *testing.T) {
	rep, err := harness.Run(context.Background(), harness.Options{N: 0, Rounds: 3}, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, rep.Successes)

	rep, err = harness.Run(context.Background(), harness.Options{N: 5, Rounds: 0}, nil)
	require.NoError(t, err)
	assert.Zero(t, rep.MeanElapsed)
	assert.Empty(t, rep.Trials)
}

func TestRun_InvalidOptions(t *testing.T) {
	_, err := harness.Run(context.Background(), harness.Options{N: -1, Rounds: 1}, nil)
	assert.ErrorIs(t, err, harness.ErrInvalidOptions)
	_, err = harness.Run(context.Background(), harness.Options{N: 1, Rounds: -1}, nil)
	assert.ErrorIs(t, err, harness.ErrInvalidOptions)
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := harness.Run(ctx, harness.Options{N: 4, Rounds: 4}, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_Recorder(t *testing.T) {
	var got harness.Report
	rec := recorderFunc(func(_ context.Context, r harness.Report) error {
		got = r
		return nil
	})
	rep, err := harness.Run(context.Background(), harness.Options{N: 3, Rounds: 2, Recorder: rec}, nil)
	require.NoError(t, err)
	assert.Equal(t, rep.RunID, got.RunID)

	boom := errors.New("disk full")
	_, err = harness.Run(context.Background(), harness.Options{
		N: 3, Rounds: 2,
		Recorder: recorderFunc(func(context.Context, harness.Report) error { return boom }),
	}, nil)
	assert.ErrorIs(t, err, boom)
}

// TestRun_Logging checks the structured summary entry.
func TestRun_Logging(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	_, err := harness.Run(context.Background(), harness.Options{N: 4, Rounds: 3, Seed: 1}, zap.New(core))
	require.NoError(t, err)

	finished := logs.FilterMessage("trial run finished").All()
	require.Len(t, finished, 1)
	fields := finished[0].ContextMap()
	assert.EqualValues(t, 3, fields["successes"])
	assert.EqualValues(t, 0, fields["failures"])
	assert.EqualValues(t, 32, fields["matrix_size"])
	assert.EqualValues(t, 4, fields["n"])
	assert.Zero(t, logs.FilterMessage("round finished").Len(), "per-round entries are debug level")
}
