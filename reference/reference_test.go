package reference_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stablematch/builder"
	"github.com/katalvlaran/stablematch/matching"
	"github.com/katalvlaran/stablematch/reference"
)

// twoStable has exactly two stable matchings: proposer-optimal [0 1] and
// reviewer-optimal [1 0].
var twoStable = matching.Instance{
	Proposers: []matching.PreferenceList{{0, 1}, {1, 0}},
	Reviewers: []matching.PreferenceList{{1, 0}, {0, 1}},
}

func TestStableMatchings_TwoStable(t *testing.T) {
	all, err := reference.StableMatchings(twoStable.Proposers, twoStable.Reviewers)
	require.NoError(t, err)
	assert.ElementsMatch(t, []matching.Matching{{0, 1}, {1, 0}}, all)

	best, err := reference.ProposerOptimal(twoStable.Proposers, twoStable.Reviewers)
	require.NoError(t, err)
	assert.Equal(t, matching.Matching{0, 1}, best)
}

// TestStableMatchings_Textbook: all 24 permutations are checked and only one
// survives, since every reviewer shares the same list.
func TestStableMatchings_Textbook(t *testing.T) {
	in, err := builder.BuildInstance(nil, builder.Textbook())
	require.NoError(t, err)

	all, err := reference.StableMatchings(in.Proposers, in.Reviewers)
	require.NoError(t, err)
	assert.Equal(t, []matching.Matching{{3, 1, 0, 2}}, all)
}

func TestMcVitieWilson_Textbook(t *testing.T) {
	in, err := builder.BuildInstance(nil, builder.Textbook())
	require.NoError(t, err)

	m, err := reference.McVitieWilson(in.Proposers, in.Reviewers)
	require.NoError(t, err)
	assert.Equal(t, matching.Matching{3, 1, 0, 2}, m)
}

// TestMcVitieWilson_AgreesWithBruteForce on random small instances.
func TestMcVitieWilson_AgreesWithBruteForce(t *testing.T) {
	for n := 1; n <= 6; n++ {
		for seed := int64(1); seed <= 10; seed++ {
			in, err := builder.RandomPreferences(n, builder.WithSeed(seed))
			require.NoError(t, err)

			mw, err := reference.McVitieWilson(in.Proposers, in.Reviewers)
			require.NoError(t, err)
			bf, err := reference.ProposerOptimal(in.Proposers, in.Reviewers)
			require.NoError(t, err)
			assert.Equal(t, bf, mw, "n=%d seed=%d", n, seed)
			assert.True(t, reference.Stable(in.Proposers, in.Reviewers, mw))
		}
	}
}

func TestStable_DetectsBlockingPair(t *testing.T) {
	assert.True(t, reference.Stable(twoStable.Proposers, twoStable.Reviewers, matching.Matching{1, 0}))

	// Everyone ranks index 0 first: pairing 0 with 1 leaves (0,0) blocking.
	in, err := builder.BuildInstance(nil, builder.Identical(2))
	require.NoError(t, err)
	assert.False(t, reference.Stable(in.Proposers, in.Reviewers, matching.Matching{1, 0}))
}

func TestErrors(t *testing.T) {
	big, err := builder.BuildInstance(nil, builder.Identical(reference.MaxBruteForce+1))
	require.NoError(t, err)
	_, err = reference.StableMatchings(big.Proposers, big.Reviewers)
	assert.ErrorIs(t, err, reference.ErrTooLarge)

	bad := []matching.PreferenceList{{0, 0}, {1, 0}}
	_, err = reference.McVitieWilson(bad, twoStable.Reviewers)
	assert.ErrorIs(t, err, reference.ErrMalformed)
	_, err = reference.ProposerOptimal(twoStable.Proposers, bad)
	assert.ErrorIs(t, err, reference.ErrMalformed)
	_, err = reference.McVitieWilson(twoStable.Proposers, twoStable.Reviewers[:1])
	assert.ErrorIs(t, err, reference.ErrMalformed)
}
