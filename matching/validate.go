package matching

import "fmt"

// Side names used in validation errors.
const (
	sideProposer = "proposer"
	sideReviewer = "reviewer"
)

// Validate checks that proposers and reviewers describe a well-formed
// instance: equal group sizes and every list a permutation of [0,n).
// It returns nil or an error wrapping ErrInvalidInput.
//
// Complexity: O(n²) time, O(n) extra space.
func Validate(proposers, reviewers []PreferenceList) error {
	var n = len(proposers)
	if len(reviewers) != n {
		return fmt.Errorf("%w: %d proposers but %d reviewers", ErrInvalidInput, n, len(reviewers))
	}

	// One scratch slice reused across all 2n lists; generation stamps avoid
	// clearing it between lists.
	var (
		seen = make([]int, n)
		err  error
	)
	for i := range proposers {
		if err = validateList(sideProposer, i, proposers[i], seen, 2*i+1); err != nil {
			return err
		}
	}
	for i := range reviewers {
		if err = validateList(sideReviewer, i, reviewers[i], seen, 2*i+2); err != nil {
			return err
		}
	}

	return nil
}

// validateList checks that list is a permutation of [0,len(seen)).
// stamp must be unique per list and non-zero.
func validateList(side string, idx int, list PreferenceList, seen []int, stamp int) error {
	var n = len(seen)
	if len(list) != n {
		return fmt.Errorf("%w: %s %d ranks %d members, want %d", ErrInvalidInput, side, idx, len(list), n)
	}
	for pos, v := range list {
		if v < 0 || v >= n {
			return fmt.Errorf("%w: %s %d position %d: index %d out of range [0,%d)",
				ErrInvalidInput, side, idx, pos, v, n)
		}
		if seen[v] == stamp {
			return fmt.Errorf("%w: %s %d position %d: index %d listed twice",
				ErrInvalidInput, side, idx, pos, v)
		}
		seen[v] = stamp
	}

	return nil
}

// validateOrder checks a processing order supplied through WithOrder.
func validateOrder(order []int, n int) error {
	if len(order) != n {
		return fmt.Errorf("%w: processing order has %d entries, want %d", ErrInvalidInput, len(order), n)
	}
	seen := make([]bool, n)
	for pos, p := range order {
		if p < 0 || p >= n || seen[p] {
			return fmt.Errorf("%w: processing order position %d: proposer %d invalid or repeated",
				ErrInvalidInput, pos, p)
		}
		seen[p] = true
	}

	return nil
}
