// Package harness runs repeated randomized trials of the matching engine
// against an independent reference implementation and aggregates the
// outcome.
//
// Each round derives its own seed from the run seed, generates a random
// n×n instance, times the engine (sequential or concurrent), computes the
// McVitie–Wilson reference matching and compares the two bit for bit.
// Rounds are independent and run in parallel, bounded by Options.Workers.
//
// The report mirrors what the trial summary prints: rounds executed,
// successes, failures, mean engine time, n and the matrix size (2n² entries).
package harness
