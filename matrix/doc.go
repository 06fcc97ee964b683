// Package matrix reads and writes stable-matching instances in the plain
// text "preference matrix" format.
//
// Format:
//
//	A file holds 2n whitespace-separated rows of n integers each.
//	Rows 0..n-1 are proposer preference lists over reviewers numbered
//	n..2n-1; rows n..2n-1 are reviewer preference lists over proposers
//	numbered 0..n-1. Most preferred first. Blank lines are ignored.
//
//	  7 5 6 4      ← proposer 0
//	  5 4 6 7
//	  4 5 6 7
//	  4 5 6 7
//	  0 1 2 3      ← reviewer 0 (file index 4)
//	  0 1 2 3
//	  0 1 2 3
//	  0 1 2 3
//
// Read translates this numbering into the zero-based, same-range indices
// package matching expects; Write does the reverse. Whether the lists are
// permutations is left to matching.Validate (Write checks it before
// emitting anything).
package matrix
