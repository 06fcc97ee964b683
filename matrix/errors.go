// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set for the preference-matrix codec.
// Decoding functions return these sentinels wrapped with the offending line
// (fmt.Errorf("line %d: ...: %w", ...)); callers match with errors.Is.

package matrix

import "errors"

var (
	// ErrOddRows is returned when the number of non-blank rows is odd, so the
	// file cannot be split into n proposer rows and n reviewer rows.
	ErrOddRows = errors.New("matrix: odd number of rows")

	// ErrRowLength indicates a row whose field count differs from n.
	ErrRowLength = errors.New("matrix: row length differs from n")

	// ErrBadToken indicates a field that is not a base-10 integer.
	ErrBadToken = errors.New("matrix: malformed token")

	// ErrOutOfRange indicates an index outside the numbering range of its
	// row: [n,2n) for proposer rows, [0,n) for reviewer rows.
	ErrOutOfRange = errors.New("matrix: index out of range")
)
