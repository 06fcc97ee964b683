// Package builder - seed utilities for repeated stochastic fixtures.
//
// Goals:
//   - Determinism: same parent seed and stream ⇒ identical child seed.
//   - Independence: neighbouring stream ids give decorrelated seeds.
package builder

// DeriveSeed mixes a parent seed and a stream identifier (e.g. a trial
// round) into a new 64-bit seed using a SplitMix64-style finalizer.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}
