// Package stablematch computes stable matchings between two equal-sized
// groups with the Gale–Shapley deferred-acceptance algorithm.
//
// 🚀 What is stablematch?
//
//	Given strict preference lists for n proposers and n reviewers, the
//	engine pairs everyone so that no proposer and reviewer would both
//	rather be with each other than with their assigned partners. Among
//	all such matchings it returns the one every proposer likes best.
//
// ✨ What's inside?
//
//   - A deterministic engine with eager input validation
//   - A concurrent variant with per-reviewer locking
//   - Independent reference solvers for cross-checking
//   - A trial harness with SQLite persistence and a CLI
//
// Under the hood, everything is organized under these subpackages:
//
//	matching/  - the engine: Solve, SolveConcurrent, Validate, IsStable
//	builder/   - preference generators (random, identical, cyclic, textbook)
//	matrix/    - the 2n-row preference matrix text format
//	reference/ - McVitie–Wilson and brute-force oracles
//	harness/   - repeated trials comparing engine and reference
//	store/     - SQLite recorder for harness runs
//	config/    - YAML and environment configuration
//
// Quick example (proposers 0,1; reviewers 0,1):
//
//	P0: 0 1    R0: 1 0
//	P1: 0 1    R1: 0 1
//
//	P1 wins R0 (R0 prefers P1), P0 settles for R1 → [1 0]
//
//	go install github.com/katalvlaran/stablematch/cmd/stablematch@latest
package stablematch
