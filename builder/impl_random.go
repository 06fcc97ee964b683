// SPDX-License-Identifier: MIT
// Package: stablematch/builder
//
// impl_random.go - implementation of the Random(n) constructor.
//
// Contract:
//   • n ≥ 0 (else ErrBadSize); cfg.rng != nil (else ErrNeedRandSource).
//   • Size is validated before the RNG so errors follow the sentinel priority.
//   • Every list is a Fisher–Yates shuffle of [0,n) drawn from cfg.rng.
//
// Complexity:
//   • Time: O(n²). Space: O(n²) for the two tables.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/stablematch/matching"
)

func randomPreferences(n int) Constructor {
	return func(cfg builderConfig) (matching.Instance, error) {
		if err := validateSize(MethodRandom, n); err != nil {
			return matching.Instance{}, err
		}
		if cfg.rng == nil {
			return matching.Instance{}, fmt.Errorf("%s: %w", MethodRandom, ErrNeedRandSource)
		}

		return matching.Instance{
			Proposers: shuffledTable(n, cfg.rng),
			Reviewers: shuffledTable(n, cfg.rng),
		}, nil
	}
}

// shuffledTable draws n independent permutations of [0,n).
func shuffledTable(n int, rng *rand.Rand) []matching.PreferenceList {
	table := make([]matching.PreferenceList, n)
	for i := range table {
		list := make(matching.PreferenceList, n)
		for j := range list {
			list[j] = j
		}
		rng.Shuffle(n, func(a, b int) { list[a], list[b] = list[b], list[a] })
		table[i] = list
	}

	return table
}
