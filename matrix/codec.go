package matrix

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/stablematch/matching"
)

// maxLineBytes bounds a single row; enough for n in the hundreds of thousands.
const maxLineBytes = 16 << 20

// Read decodes a preference matrix from r.
//
// Errors: ErrOddRows, ErrRowLength, ErrBadToken, ErrOutOfRange (wrapped with
// the 1-based line number), or the underlying read error.
//
// Complexity: O(n²) time and space.
func Read(r io.Reader) (matching.Instance, error) {
	var (
		rows  [][]string
		lines []int
		sc    = bufio.NewScanner(r)
		ln    int
	)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		ln++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		rows = append(rows, fields)
		lines = append(lines, ln)
	}
	if err := sc.Err(); err != nil {
		return matching.Instance{}, fmt.Errorf("matrix: read: %w", err)
	}
	if len(rows)%2 != 0 {
		return matching.Instance{}, fmt.Errorf("%d rows: %w", len(rows), ErrOddRows)
	}

	n := len(rows) / 2
	in := matching.Instance{
		Proposers: make([]matching.PreferenceList, n),
		Reviewers: make([]matching.PreferenceList, n),
	}
	for i, fields := range rows {
		// Proposer rows name reviewers n..2n-1; reviewer rows name proposers 0..n-1.
		offset, table, idx := n, in.Proposers, i
		if i >= n {
			offset, table, idx = 0, in.Reviewers, i-n
		}
		list, err := parseRow(fields, n, offset)
		if err != nil {
			return matching.Instance{}, fmt.Errorf("line %d: %w", lines[i], err)
		}
		table[idx] = list
	}

	return in, nil
}

// parseRow converts one row of file indices in [offset, offset+n) to
// zero-based indices.
func parseRow(fields []string, n, offset int) (matching.PreferenceList, error) {
	if len(fields) != n {
		return nil, fmt.Errorf("%d fields, want %d: %w", len(fields), n, ErrRowLength)
	}
	list := make(matching.PreferenceList, n)
	for j, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("field %d %q: %w", j+1, f, ErrBadToken)
		}
		if v < offset || v >= offset+n {
			return nil, fmt.Errorf("field %d: %d not in [%d,%d): %w", j+1, v, offset, offset+n, ErrOutOfRange)
		}
		list[j] = v - offset
	}

	return list, nil
}

// Write encodes in as a preference matrix: single-space separated fields,
// one newline-terminated row per list. The instance is validated first so
// that no partial output is produced for malformed input.
func Write(w io.Writer, in matching.Instance) error {
	if err := matching.Validate(in.Proposers, in.Reviewers); err != nil {
		return err
	}
	n := in.N()
	bw := bufio.NewWriter(w)
	for _, list := range in.Proposers {
		writeRow(bw, list, n)
	}
	for _, list := range in.Reviewers {
		writeRow(bw, list, 0)
	}

	return bw.Flush()
}

func writeRow(bw *bufio.Writer, list matching.PreferenceList, offset int) {
	var buf []byte
	for j, v := range list {
		if j > 0 {
			buf = append(buf, ' ')
		}
		buf = strconv.AppendInt(buf, int64(v+offset), 10)
	}
	buf = append(buf, '\n')
	// bufio.Writer keeps the first error and reports it from Flush.
	_, _ = bw.Write(buf)
}

// ReadFile decodes the preference matrix stored at path.
func ReadFile(path string) (matching.Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return matching.Instance{}, err
	}
	defer f.Close()

	return Read(f)
}

// WriteFile encodes in into path, creating or truncating it.
func WriteFile(path string, in matching.Instance) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = Write(f, in); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// ReviewerLabel converts a zero-based reviewer index to its file number.
func ReviewerLabel(n, r int) int { return n + r }
