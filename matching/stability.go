package matching

// BlockingPairs returns every (proposer, reviewer) pair that blocks m: both
// prefer each other over their assigned partners. Pairs are ordered by
// proposer, then by the proposer's preference.
//
// Inputs must be valid (see Validate) and m must be a perfect matching of the
// same size; otherwise the result is nil.
//
// Complexity: O(n²) time, O(n²) space for the rank tables.
func BlockingPairs(proposers, reviewers []PreferenceList, m Matching) []Pair {
	n := len(proposers)
	if Validate(proposers, reviewers) != nil || !isPerfect(m, n) {
		return nil
	}

	var (
		rank  = buildRanks(reviewers)
		owner = m.Inverse()
		pairs []Pair
	)
	for p := 0; p < n; p++ {
		// Only reviewers p ranks above its partner can block.
		for _, r := range proposers[p] {
			if r == m[p] {
				break
			}
			if rank[r*n+p] < rank[r*n+owner[r]] {
				pairs = append(pairs, Pair{Proposer: p, Reviewer: r})
			}
		}
	}

	return pairs
}

// IsStable reports whether m is a perfect matching with no blocking pair.
func IsStable(proposers, reviewers []PreferenceList, m Matching) bool {
	if Validate(proposers, reviewers) != nil || !isPerfect(m, len(proposers)) {
		return false
	}

	return len(BlockingPairs(proposers, reviewers, m)) == 0
}

// isPerfect reports whether m is a permutation of [0,n).
func isPerfect(m Matching, n int) bool {
	if len(m) != n {
		return false
	}
	seen := make([]bool, n)
	for _, r := range m {
		if r < 0 || r >= n || seen[r] {
			return false
		}
		seen[r] = true
	}

	return true
}
