// Package matching computes stable matchings between two equal-sized groups
// with the Gale–Shapley deferred-acceptance algorithm.
//
// 🚀 What is a stable matching?
//
//	Two groups of n members each (Proposers and Reviewers) rank every member
//	of the opposite group. A perfect matching is stable when no proposer p and
//	reviewer r, not matched to each other, both prefer one another over their
//	assigned partners (a "blocking pair"). Deferred acceptance always finds
//	one, and the one it finds is proposer-optimal: every proposer receives the
//	best reviewer it can hold in any stable matching.
//
// ✨ Key features:
//   - Solve / SolveInstance: sequential deferred acceptance, O(n²) time
//   - SolveConcurrent: worker pool with per-reviewer locking, identical output
//   - WithOrder / WithQueue / WithStack: processing-order controls; the result
//     never depends on them
//   - Validate: eager permutation checks before any state is built
//   - IsStable / BlockingPairs: independent stability checks for callers
//
// ⚙️ Usage:
//
//	proposers := []matching.PreferenceList{{0, 1}, {1, 0}}
//	reviewers := []matching.PreferenceList{{1, 0}, {0, 1}}
//
//	m, err := matching.Solve(proposers, reviewers)
//	if err != nil {
//	  // errors.Is(err, matching.ErrInvalidInput)
//	}
//	fmt.Println(m) // [0 1]
//
// Indices are zero-based on both sides. Translating other numbering schemes
// (for example the 2n-row matrix file, where reviewers are numbered n..2n-1)
// is the caller's job; see package matrix.
//
// The package performs no I/O and never logs. All working state is owned by a
// single call and discarded when it returns.
//
// Performance:
//
//   - Time:   O(n²) proposals in the worst case, O(1) per comparison
//   - Memory: O(n²) for the reviewer rank tables
package matching
