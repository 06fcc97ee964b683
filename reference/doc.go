// Package reference provides stable-matching oracles written independently
// of package matching, so that engine results can be cross-checked without
// validating an implementation against itself.
//
//   - McVitieWilson: recursive-proposal deferred acceptance (McVitie & Wilson,
//     1971). Same proposer-optimal answer, different control flow and no rank
//     tables: preferences are compared by scanning the reviewer's list.
//   - StableMatchings: brute-force enumeration of all n! perfect matchings,
//     keeping the stable ones. Only practical for small n (≤ MaxBruteForce).
//   - ProposerOptimal: the stable matching every proposer weakly prefers,
//     picked from the brute-force set.
package reference
