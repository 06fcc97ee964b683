package builder

import "fmt"

// validateSize ensures that n is at least MinGroupSize.
// Returns "<Method>: n=<n> (must be ≥ 0): builder: invalid size" otherwise.
//
// Complexity: O(1) time and space.
func validateSize(method string, n int) error {
	if n < MinGroupSize {
		return fmt.Errorf("%s: n=%d (must be ≥ %d): %w", method, n, MinGroupSize, ErrBadSize)
	}

	return nil
}
