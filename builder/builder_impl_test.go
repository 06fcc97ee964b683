// Package builder_test contains functional tests for the instance
// constructors, verifying shape, permutation invariants, determinism and
// the expected engine behavior on each family.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stablematch/builder"
	"github.com/katalvlaran/stablematch/matching"
)

// TestBuilders_Functional runs table-driven checks for each constructor.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		ctor          builder.Constructor
		opts          []builder.BuilderOption
		wantN         int
		wantMatching  matching.Matching // nil: skip
		wantProposals int               // 0: skip
	}{
		{name: "Random(6)", ctor: builder.Random(6), opts: []builder.BuilderOption{builder.WithSeed(3)}, wantN: 6},
		{name: "Random(0)", ctor: builder.Random(0), opts: []builder.BuilderOption{builder.WithSeed(3)}, wantN: 0},
		{
			name: "Identical(5)", ctor: builder.Identical(5), wantN: 5,
			wantMatching: matching.Matching{0, 1, 2, 3, 4}, wantProposals: 15,
		},
		{
			name: "Cyclic(5)", ctor: builder.Cyclic(5), wantN: 5,
			wantMatching: matching.Matching{0, 1, 2, 3, 4}, wantProposals: 5,
		},
		{
			name: "Textbook", ctor: builder.Textbook(), wantN: builder.TextbookSize,
			wantMatching: matching.Matching{3, 1, 0, 2}, wantProposals: 6,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			in, err := builder.BuildInstance(tc.opts, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantN, in.N())
			require.NoError(t, matching.Validate(in.Proposers, in.Reviewers), "generated lists must be permutations")

			res, err := matching.SolveInstance(in)
			require.NoError(t, err)
			assert.True(t, matching.IsStable(in.Proposers, in.Reviewers, res.Matching))
			if tc.wantMatching != nil {
				assert.Equal(t, tc.wantMatching, res.Matching)
			}
			if tc.wantProposals != 0 {
				assert.Equal(t, tc.wantProposals, res.Proposals)
			}
		})
	}
}

// TestRandom_Deterministic checks that the same seed reproduces the same
// instance and a different seed does not.
func TestRandom_Deterministic(t *testing.T) {
	t.Parallel()

	a, err := builder.RandomPreferences(8, builder.WithSeed(11))
	require.NoError(t, err)
	b, err := builder.RandomPreferences(8, builder.WithSeed(11))
	require.NoError(t, err)
	c, err := builder.RandomPreferences(8, builder.WithSeed(12))
	require.NoError(t, err)

	assert.Equal(t, a, b, "same seed must give identical instances")
	assert.NotEqual(t, a, c, "different seeds should give different instances")
}

// TestBuilders_Errors asserts sentinel errors with errors.Is semantics.
func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	_, err := builder.RandomPreferences(4)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource, "Random without RNG")

	_, err = builder.RandomPreferences(-1, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrBadSize, "size is checked before RNG")

	_, err = builder.BuildInstance(nil, builder.Identical(-2))
	assert.ErrorIs(t, err, builder.ErrBadSize)

	_, err = builder.BuildInstance(nil, builder.Cyclic(-3))
	assert.ErrorIs(t, err, builder.ErrBadSize)
}

// TestDeriveSeed checks determinism and stream separation.
func TestDeriveSeed(t *testing.T) {
	t.Parallel()

	assert.Equal(t, builder.DeriveSeed(5, 1), builder.DeriveSeed(5, 1))
	assert.NotEqual(t, builder.DeriveSeed(5, 1), builder.DeriveSeed(5, 2))
	assert.NotEqual(t, builder.DeriveSeed(5, 1), builder.DeriveSeed(6, 1))
}
