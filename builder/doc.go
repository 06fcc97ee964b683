// Package builder provides deterministic generators of stable-matching
// instances in the "functional options" style shared across the module.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – Constructor:       a function producing a matching.Instance from a resolved config.
//     – BuildInstance:     resolves BuilderOptions once and runs a Constructor.
//   - Constructors:
//     – Random(n):         every list an independent uniform shuffle (needs an RNG).
//     – Identical(n):      everyone ranks the opposite side 0..n-1; worst case
//     for deferred acceptance with n(n+1)/2 proposals.
//     – Cyclic(n):         Latin-square lists; every proposer wins its first choice.
//     – Textbook():        the classic 4×4 walkthrough instance.
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – WithSeed/WithRand: explicit randomness; nothing is time-seeded.
//   - Seeds:
//     – DeriveSeed:        SplitMix64-style per-stream seeds for repeated trials.
//
// Guarantees:
//
//   - Same options, seed and constructor ⇒ identical instances.
//   - Every generated list is a permutation, so output always passes
//     matching.Validate.
//   - Fast-fail on invalid option parameters via panics in option constructors;
//     constructors themselves only return wrapped sentinel errors.
package builder
