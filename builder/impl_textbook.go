package builder

import "github.com/katalvlaran/stablematch/matching"

// textbookPreferences is the 4×4 walkthrough instance: in file numbering
// the proposer rows are {7 5 6 4}, {5 4 6 7}, {4 5 6 7}, {4 5 6 7} and every
// reviewer row is {0 1 2 3}.
func textbookPreferences() Constructor {
	return func(_ builderConfig) (matching.Instance, error) {
		return matching.Instance{
			Proposers: []matching.PreferenceList{
				{3, 1, 2, 0},
				{1, 0, 2, 3},
				{0, 1, 2, 3},
				{0, 1, 2, 3},
			},
			Reviewers: []matching.PreferenceList{
				{0, 1, 2, 3},
				{0, 1, 2, 3},
				{0, 1, 2, 3},
				{0, 1, 2, 3},
			},
		}, nil
	}
}
