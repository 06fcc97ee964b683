package builder

import "github.com/katalvlaran/stablematch/matching"

// identicalPreferences: proposer p ends with reviewer p after being
// rejected by reviewers 0..p-1, hence n(n+1)/2 proposals in total.
func identicalPreferences(n int) Constructor {
	return func(_ builderConfig) (matching.Instance, error) {
		if err := validateSize(MethodIdentical, n); err != nil {
			return matching.Instance{}, err
		}

		return matching.Instance{
			Proposers: shiftedTable(n, 0),
			Reviewers: shiftedTable(n, 0),
		}, nil
	}
}

// shiftedTable returns n lists where list i starts at i*step and counts up
// mod n. With step 0 every list is 0..n-1.
func shiftedTable(n, step int) []matching.PreferenceList {
	table := make([]matching.PreferenceList, n)
	for i := range table {
		list := make(matching.PreferenceList, n)
		start := i * step
		for k := range list {
			list[k] = (start + k) % n
		}
		table[i] = list
	}

	return table
}
