package reference

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stablematch/matching"
)

// MaxBruteForce bounds n for the enumerating oracles (8! = 40320 matchings).
const MaxBruteForce = 8

var (
	// ErrMalformed reports tables of unequal size or lists that are not
	// permutations of the opposite group.
	ErrMalformed = errors.New("reference: malformed preferences")

	// ErrTooLarge reports an instance beyond MaxBruteForce.
	ErrTooLarge = errors.New("reference: instance too large for brute force")

	// ErrNoOptimum reports that no stable matching dominates the others for
	// every proposer. It cannot happen for well-formed input.
	ErrNoOptimum = errors.New("reference: no proposer-optimal matching")
)

// McVitieWilson computes the proposer-optimal stable matching by
// introducing proposers one at a time; each newcomer proposes down its list
// and every rejected or displaced proposer recursively proposes next.
//
// Complexity: O(n³) time (list scans for comparisons), O(n) space plus
// recursion depth bounded by n².
func McVitieWilson(proposers, reviewers []matching.PreferenceList) (matching.Matching, error) {
	if err := wellFormed(proposers, reviewers); err != nil {
		return nil, err
	}
	n := len(proposers)
	mw := &mcvw{
		proposers: proposers,
		reviewers: reviewers,
		next:      make([]int, n),
		fiance:    make([]int, n),
	}
	for r := range mw.fiance {
		mw.fiance[r] = -1
	}
	for p := 0; p < n; p++ {
		if err := mw.propose(p); err != nil {
			return nil, err
		}
	}

	out := make(matching.Matching, n)
	for r, p := range mw.fiance {
		out[p] = r
	}

	return out, nil
}

type mcvw struct {
	proposers []matching.PreferenceList
	reviewers []matching.PreferenceList
	next      []int
	fiance    []int // reviewer → proposer
}

func (mw *mcvw) propose(p int) error {
	if mw.next[p] == len(mw.proposers[p]) {
		return fmt.Errorf("%w: proposer %d rejected everywhere", ErrMalformed, p)
	}
	r := mw.proposers[p][mw.next[p]]
	mw.next[p]++

	cur := mw.fiance[r]
	if cur == -1 {
		mw.fiance[r] = p
		return nil
	}
	if likes(mw.reviewers[r], p, cur) {
		mw.fiance[r] = p
		return mw.propose(cur)
	}

	return mw.propose(p)
}

// likes reports whether list ranks a above b, scanning from the top.
func likes(list matching.PreferenceList, a, b int) bool {
	for _, x := range list {
		switch x {
		case a:
			return true
		case b:
			return false
		}
	}

	return false
}

// position returns the index of x in list, or len(list).
func position(list matching.PreferenceList, x int) int {
	for i, v := range list {
		if v == x {
			return i
		}
	}

	return len(list)
}

// Stable reports whether the perfect matching m admits no blocking pair.
// It checks every (p, r) couple directly, without rank tables.
func Stable(proposers, reviewers []matching.PreferenceList, m matching.Matching) bool {
	n := len(m)
	owner := make([]int, n)
	for p, r := range m {
		owner[r] = p
	}
	for p := 0; p < n; p++ {
		for r := 0; r < n; r++ {
			if r == m[p] {
				continue
			}
			if likes(proposers[p], r, m[p]) && likes(reviewers[r], p, owner[r]) {
				return false
			}
		}
	}

	return true
}

// StableMatchings enumerates every stable matching of the instance using
// Heap's permutation algorithm. The order of the returned slice is the
// enumeration order and carries no meaning.
//
// Complexity: O(n!·n²).
func StableMatchings(proposers, reviewers []matching.PreferenceList) ([]matching.Matching, error) {
	if err := wellFormed(proposers, reviewers); err != nil {
		return nil, err
	}
	n := len(proposers)
	if n > MaxBruteForce {
		return nil, fmt.Errorf("%w: n=%d > %d", ErrTooLarge, n, MaxBruteForce)
	}

	var (
		perm   = make(matching.Matching, n)
		c      = make([]int, n)
		stable []matching.Matching
	)
	for i := range perm {
		perm[i] = i
	}
	keep := func() {
		if Stable(proposers, reviewers, perm) {
			cp := make(matching.Matching, n)
			copy(cp, perm)
			stable = append(stable, cp)
		}
	}

	// Iterative Heap's algorithm.
	keep()
	for i := 1; i < n; {
		if c[i] < i {
			if i%2 == 0 {
				perm[0], perm[i] = perm[i], perm[0]
			} else {
				perm[c[i]], perm[i] = perm[i], perm[c[i]]
			}
			keep()
			c[i]++
			i = 1
			continue
		}
		c[i] = 0
		i++
	}

	return stable, nil
}

// ProposerOptimal returns the stable matching in which every proposer is
// matched to a reviewer at least as good as in any other stable matching.
func ProposerOptimal(proposers, reviewers []matching.PreferenceList) (matching.Matching, error) {
	all, err := StableMatchings(proposers, reviewers)
	if err != nil {
		return nil, err
	}
	for _, cand := range all {
		if dominates(proposers, cand, all) {
			return cand, nil
		}
	}

	return nil, ErrNoOptimum
}

func dominates(proposers []matching.PreferenceList, cand matching.Matching, all []matching.Matching) bool {
	for _, other := range all {
		for p := range cand {
			if position(proposers[p], cand[p]) > position(proposers[p], other[p]) {
				return false
			}
		}
	}

	return true
}

// wellFormed performs the minimal checks the oracles rely on.
func wellFormed(proposers, reviewers []matching.PreferenceList) error {
	n := len(proposers)
	if len(reviewers) != n {
		return fmt.Errorf("%w: %d proposers, %d reviewers", ErrMalformed, n, len(reviewers))
	}
	for _, table := range [][]matching.PreferenceList{proposers, reviewers} {
		for i, list := range table {
			if !isPermutation(list, n) {
				return fmt.Errorf("%w: list %d is not a permutation of [0,%d)", ErrMalformed, i, n)
			}
		}
	}

	return nil
}

func isPermutation(list matching.PreferenceList, n int) bool {
	if len(list) != n {
		return false
	}
	seen := make(map[int]bool, n)
	for _, v := range list {
		if v < 0 || v >= n || seen[v] {
			return false
		}
		seen[v] = true
	}

	return true
}
