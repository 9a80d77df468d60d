package decider

import "sort"

// WeightedScorer is the default ranking collaborator: each alternative's
// score is its importance-weighted average rating, normalized so that the
// anchored baseline alternative lands at 1.0. Ties keep elicitation
// order. Any Scorer implementation can replace it; the engine only
// depends on the interface.
type WeightedScorer struct{}

func (WeightedScorer) Rank(alts []Alternative, factors []Factor, ratings [][]float64) []Alternative {
	ranked := append([]Alternative(nil), alts...)
	var weightSum float64
	for _, f := range factors {
		weightSum += float64(f.Rank)
	}
	if weightSum == 0 || len(factors) == 0 {
		return ranked
	}

	var baseline float64
	for r := range ranked {
		var sum float64
		for c, f := range factors {
			if r < len(ratings) && c < len(ratings[r]) {
				sum += float64(f.Rank) * ratings[r][c]
			}
		}
		score := sum / weightSum
		if r == 0 {
			baseline = score
		}
		ranked[r].SetScore(score)
	}
	if baseline != 0 {
		for r := range ranked {
			ranked[r].SetScore(ranked[r].Score / baseline)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })
	return ranked
}
