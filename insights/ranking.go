// Package insights derives view models from backend payloads: rankings,
// skill matrices, aggregates, and display formatting. Everything here is
// pure; absent or malformed optional fields degrade to zero values instead
// of failing.
package insights

import (
	"sort"

	"hirescope/client"
)

// RankedResult is a comparison result with its 1-based rank attached.
type RankedResult struct {
	client.ComparisonResult
	Rank int
}

// RankComparisons sorts results by match percentage descending. The sort is
// stable, so equal percentages keep the backend's order (which is request
// order), and re-ranking an already ranked list is a no-op.
func RankComparisons(results []client.ComparisonResult) []RankedResult {
	sorted := make([]client.ComparisonResult, len(results))
	copy(sorted, results)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MatchPercentage > sorted[j].MatchPercentage
	})

	ranked := make([]RankedResult, len(sorted))
	for i, r := range sorted {
		ranked[i] = RankedResult{ComparisonResult: r, Rank: i + 1}
	}
	return ranked
}

// ExperienceSummary counts how many experience checks a result passed.
func ExperienceSummary(r client.ComparisonResult) (verified, total int) {
	total = len(r.ExperienceChecks)
	for _, check := range r.ExperienceChecks {
		if check.Sufficient {
			verified++
		}
	}
	return verified, total
}
