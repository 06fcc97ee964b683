package builder

import "github.com/katalvlaran/stablematch/matching"

// cyclicPreferences: reviewer i receives exactly one first-round proposal
// (from proposer i), so the run ends after n proposals with the identity
// matching even though no reviewer gets its first choice.
func cyclicPreferences(n int) Constructor {
	return func(_ builderConfig) (matching.Instance, error) {
		if err := validateSize(MethodCyclic, n); err != nil {
			return matching.Instance{}, err
		}

		reviewers := make([]matching.PreferenceList, n)
		for j := range reviewers {
			list := make(matching.PreferenceList, n)
			for k := range list {
				list[k] = (j + 1 + k) % n
			}
			reviewers[j] = list
		}

		return matching.Instance{
			Proposers: shiftedTable(n, 1),
			Reviewers: reviewers,
		}, nil
	}
}
