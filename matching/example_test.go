// Package matching_test provides runnable, deterministic examples for the
// deferred-acceptance engine. Each example prints a stable // Output: block.
package matching_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/stablematch/matching"
)

// ExampleSolve solves the 2×2 instance where both proposers get their
// first choice.
func ExampleSolve() {
	proposers := []matching.PreferenceList{{0, 1}, {1, 0}}
	reviewers := []matching.PreferenceList{{1, 0}, {0, 1}}

	m, err := matching.Solve(proposers, reviewers)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(m)
	// Output:
	// [0 1]
}

// ExampleSolveInstance shows the diagnostic metadata on the 4×4
// walkthrough instance.
func ExampleSolveInstance() {
	in := matching.Instance{
		Proposers: []matching.PreferenceList{{3, 1, 2, 0}, {1, 0, 2, 3}, {0, 1, 2, 3}, {0, 1, 2, 3}},
		Reviewers: []matching.PreferenceList{{0, 1, 2, 3}, {0, 1, 2, 3}, {0, 1, 2, 3}, {0, 1, 2, 3}},
	}
	res, err := matching.SolveInstance(in, matching.WithQueue())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("matching=%v proposals=%d reviewers=%v\n", res.Matching, res.Proposals, res.Matching.Inverse())
	// Output:
	// matching=[3 1 0 2] proposals=6 reviewers=[2 1 3 0]
}

// ExampleSolve_invalid shows how malformed lists are reported.
func ExampleSolve_invalid() {
	_, err := matching.Solve(
		[]matching.PreferenceList{{0, 0}, {1, 0}},
		[]matching.PreferenceList{{0, 1}, {1, 0}},
	)
	fmt.Println(errors.Is(err, matching.ErrInvalidInput))
	fmt.Println(err)
	// Output:
	// true
	// matching: invalid input: proposer 0 position 1: index 0 listed twice
}

// ExampleSolveConcurrent runs the worker-pool variant.
func ExampleSolveConcurrent() {
	proposers := []matching.PreferenceList{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}}
	reviewers := []matching.PreferenceList{{1, 2, 0}, {0, 1, 2}, {0, 1, 2}}

	m, err := matching.SolveConcurrent(context.Background(), proposers, reviewers, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(m)
	// Output:
	// [1 0 2]
}
