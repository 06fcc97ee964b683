package matching

import "time"

// PreferenceList is a strict total order over the opposite group: a
// permutation of [0,n), most preferred first.
type PreferenceList []int

// Instance pairs the proposer-side and reviewer-side preference tables of a
// single problem.
type Instance struct {
	Proposers []PreferenceList
	Reviewers []PreferenceList
}

// N returns the group size of the instance.
func (in Instance) N() int { return len(in.Proposers) }

// Clone returns a deep copy of the instance.
func (in Instance) Clone() Instance {
	return Instance{
		Proposers: cloneTable(in.Proposers),
		Reviewers: cloneTable(in.Reviewers),
	}
}

func cloneTable(t []PreferenceList) []PreferenceList {
	if t == nil {
		return nil
	}
	cp := make([]PreferenceList, len(t))
	for i := range t {
		cp[i] = append(PreferenceList(nil), t[i]...)
	}

	return cp
}

// Matching is indexed by proposer and holds the matched reviewer.
// For a result of Solve it is itself a permutation of [0,n).
type Matching []int

// Inverse returns the reviewer → proposer view of m.
// Entries of reviewers nobody is matched to are -1.
//
// Complexity: O(n).
func (m Matching) Inverse() []int {
	inv := make([]int, len(m))
	for i := range inv {
		inv[i] = unmatched
	}
	for p, r := range m {
		if r >= 0 && r < len(inv) {
			inv[r] = p
		}
	}

	return inv
}

// Equal reports whether m and other assign every proposer the same reviewer.
func (m Matching) Equal(other Matching) bool {
	if len(m) != len(other) {
		return false
	}
	for i := range m {
		if m[i] != other[i] {
			return false
		}
	}

	return true
}

// Result carries a Matching together with diagnostic metadata.
type Result struct {
	// Matching is the proposer-optimal stable matching.
	Matching Matching

	// Proposals counts proposal attempts. It is the same for every
	// processing order and never exceeds n².
	Proposals int

	// Elapsed is the wall time spent inside the algorithm, validation excluded.
	Elapsed time.Duration
}

// Pair is a (proposer, reviewer) couple.
type Pair struct {
	Proposer int
	Reviewer int
}

// unmatched marks a reviewer holding nobody.
const unmatched = -1
