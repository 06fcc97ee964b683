package matching

import "errors"

// Sentinel errors. Callers branch with errors.Is; the concrete error values
// returned by this package wrap these with positional context.
var (
	// ErrInvalidInput reports preference tables that violate the input
	// contract: a list that is not a permutation of [0,n), group sizes that
	// differ, or a processing order that is not a permutation of proposers.
	// Detected before any algorithm step runs.
	ErrInvalidInput = errors.New("matching: invalid input")

	// ErrInternalConsistency reports a proposer that exhausted its list
	// without being held. Impossible for validated input; it signals a broken
	// invariant and aborts the run instead of truncating the result.
	ErrInternalConsistency = errors.New("matching: internal consistency violated")
)
