package matching_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/stablematch/matching"
)

// TestBlockingPairs_Unstable: the identity matching on the hand-traced 3×3
// instance has blocking pairs, reported in proposer then preference order.
func TestBlockingPairs_Unstable(t *testing.T) {
	proposers := []matching.PreferenceList{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}}
	reviewers := []matching.PreferenceList{{1, 2, 0}, {0, 1, 2}, {0, 1, 2}}

	// Stable result is [1 0 2]. Under the identity, reviewer 0 holds its last
	// choice (proposer 0) and proposer 1 is stuck with its last choice.
	bad := matching.Matching{0, 1, 2}

	pairs := matching.BlockingPairs(proposers, reviewers, bad)
	assert.Equal(t, []matching.Pair{
		{Proposer: 1, Reviewer: 0},
		{Proposer: 1, Reviewer: 2},
		{Proposer: 2, Reviewer: 0},
	}, pairs)
	assert.False(t, matching.IsStable(proposers, reviewers, bad))
	assert.True(t, matching.IsStable(proposers, reviewers, matching.Matching{1, 0, 2}))
}

// TestIsStable_RejectsNonPerfect: duplicates, wrong size and invalid tables.
func TestIsStable_RejectsNonPerfect(t *testing.T) {
	proposers := []matching.PreferenceList{{0, 1}, {1, 0}}
	reviewers := []matching.PreferenceList{{1, 0}, {0, 1}}

	assert.False(t, matching.IsStable(proposers, reviewers, matching.Matching{0, 0}))
	assert.False(t, matching.IsStable(proposers, reviewers, matching.Matching{0}))
	assert.False(t, matching.IsStable(proposers, reviewers, matching.Matching{0, 2}))
	assert.False(t, matching.IsStable(proposers, []matching.PreferenceList{{0, 0}, {0, 1}}, matching.Matching{0, 1}))
	assert.Nil(t, matching.BlockingPairs(proposers, reviewers, matching.Matching{1, 1}))
}

// TestIsStable_Empty: the empty matching of the empty instance is stable.
func TestIsStable_Empty(t *testing.T) {
	assert.True(t, matching.IsStable(nil, nil, matching.Matching{}))
}
