package matrix_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/stablematch/matching"
	"github.com/katalvlaran/stablematch/matrix"
)

// ExampleRead decodes the 2n-row file format, solves it, and prints the
// pairs back in file numbering.
func ExampleRead() {
	in, err := matrix.Read(strings.NewReader("3 2\n2 3\n1 0\n0 1\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	m, err := matching.Solve(in.Proposers, in.Reviewers)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for p, r := range m {
		fmt.Printf("%d-%d\n", p, matrix.ReviewerLabel(in.N(), r))
	}
	// Output:
	// 0-3
	// 1-2
}

// ExampleWrite encodes an instance with reviewers renumbered n..2n-1.
func ExampleWrite() {
	in := matching.Instance{
		Proposers: []matching.PreferenceList{{0, 1}, {1, 0}},
		Reviewers: []matching.PreferenceList{{1, 0}, {0, 1}},
	}
	if err := matrix.Write(os.Stdout, in); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// 2 3
	// 3 2
	// 1 0
	// 0 1
}
