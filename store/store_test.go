package store_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stablematch/harness"
	"github.com/katalvlaran/stablematch/matching"
	"github.com/katalvlaran/stablematch/store"
)

func openTemp(t *testing.T) (*store.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "runs.db")
	s, err := store.Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s, path
}

func TestStore_RecordAndList(t *testing.T) {
	ctx := context.Background()
	s, _ := openTemp(t)

	rep := harness.Report{
		RunID:       uuid.New(),
		StartedAt:   time.Date(2024, 5, 1, 12, 0, 0, 123, time.UTC),
		N:           3,
		Rounds:      2,
		Seed:        -7,
		Concurrent:  true,
		Successes:   1,
		Failures:    1,
		MeanElapsed: 1500 * time.Nanosecond,
		Trials: []harness.Trial{
			{Round: 0, Seed: 11, Engine: matching.Matching{1, 0, 2}, Reference: matching.Matching{1, 0, 2},
				Proposals: 6, Elapsed: time.Microsecond, OK: true},
			{Round: 1, Seed: 12, Engine: matching.Matching{0, 1, 2}, Reference: matching.Matching{2, 1, 0},
				Proposals: 3, Elapsed: 2 * time.Microsecond, OK: false},
		},
	}
	require.NoError(t, s.Record(ctx, rep))

	runs, err := s.Runs(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, store.RunSummary{
		ID: rep.RunID, StartedAt: rep.StartedAt, N: 3, Rounds: 2, Seed: -7, Concurrent: true,
		Successes: 1, Failures: 1, MeanElapsed: 1500 * time.Nanosecond,
	}, runs[0])

	trials, err := s.Trials(ctx, rep.RunID)
	require.NoError(t, err)
	assert.Equal(t, rep.Trials, trials)

	none, err := s.Trials(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, none)
}

// TestStore_DuplicateRunRejected: the transaction leaves no partial rows.
func TestStore_DuplicateRunRejected(t *testing.T) {
	ctx := context.Background()
	s, _ := openTemp(t)

	rep := harness.Report{RunID: uuid.New(), StartedAt: time.Now().UTC(), N: 1, Rounds: 1,
		Trials: []harness.Trial{{Round: 0, Engine: matching.Matching{0}, Reference: matching.Matching{0}, OK: true}}}
	require.NoError(t, s.Record(ctx, rep))
	assert.Error(t, s.Record(ctx, rep))

	runs, err := s.Runs(ctx)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

// TestStore_RecorderIntegration wires the store into a harness run and
// reopens the database to read it back.
func TestStore_RecorderIntegration(t *testing.T) {
	ctx := context.Background()
	s, path := openTemp(t)

	rep, err := harness.Run(ctx, harness.Options{N: 5, Rounds: 4, Seed: 9, Recorder: s}, nil)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	reopened, err := store.Open(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()

	runs, err := reopened.Runs(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, rep.RunID, runs[0].ID)
	assert.Equal(t, 4, runs[0].Successes)

	trials, err := reopened.Trials(ctx, rep.RunID)
	require.NoError(t, err)
	require.Len(t, trials, 4)
	for i, tr := range trials {
		assert.Equal(t, rep.Trials[i].Engine, tr.Engine)
		assert.True(t, tr.OK)
	}
}
