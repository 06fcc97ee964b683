// SPDX-License-Identifier: MIT
// Package: stablematch/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildInstance(bopts, con). Resolves cfg, runs con.
//   - All public factories are declared here, implemented in impl_*.go.
//   - Determinism: same inputs/options/seed ⇒ identical instances.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/stablematch/matching"
)

// Constructor produces a preference instance from the resolved
// builderConfig. Constructors MUST validate parameters early and return
// sentinel errors (no panics).
type Constructor func(cfg builderConfig) (matching.Instance, error)

// BuildInstance resolves the builder configuration from bopts and runs con.
// Constructor errors are wrapped with "BuildInstance: %w".
//
// Complexity: O(len(bopts)) for option resolution plus the constructor cost.
func BuildInstance(bopts []BuilderOption, con Constructor) (matching.Instance, error) {
	cfg := newBuilderConfig(bopts...)
	in, err := con(cfg)
	if err != nil {
		return matching.Instance{}, fmt.Errorf("BuildInstance: %w", err)
	}

	return in, nil
}

// Random returns a Constructor drawing every preference list as an
// independent uniform permutation. Proposer lists are drawn first, then
// reviewer lists, so a given seed always yields the same instance.
// Requires an RNG (WithSeed or WithRand).
func Random(n int) Constructor { return randomPreferences(n) }

// Identical returns a Constructor where every member ranks the opposite
// group in index order.
func Identical(n int) Constructor { return identicalPreferences(n) }

// Cyclic returns a Constructor with Latin-square preferences: proposer i
// ranks reviewers i, i+1, … (mod n) and reviewer j ranks proposers
// j+1, j+2, … (mod n).
func Cyclic(n int) Constructor { return cyclicPreferences(n) }

// Textbook returns a Constructor for the fixed 4×4 instance of the classic
// Gale–Shapley walkthrough. Its proposer-optimal matching is [3 1 0 2].
func Textbook() Constructor { return textbookPreferences() }

// RandomPreferences is shorthand for BuildInstance(opts, Random(n)).
func RandomPreferences(n int, opts ...BuilderOption) (matching.Instance, error) {
	return BuildInstance(opts, Random(n))
}
