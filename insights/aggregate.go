package insights

import "hirescope/client"

// TaxonomySummary aggregates the taxonomy analytics payload for the header
// line of the report. HasData is false when the most-effective list is
// empty; callers must render a "no data" state instead of the averages,
// which are only meaningful (and only computed) when HasData is true.
type TaxonomySummary struct {
	TotalUsage     int
	AvgMatchScore  float64
	AvgSuccessRate float64
	HasData        bool
}

// SummarizeTaxonomies computes total usage over the most-used list and
// arithmetic means over the most-effective list. The empty-list guard keeps
// the division from ever producing NaN.
func SummarizeTaxonomies(resp *client.TaxonomyAnalyticsResponse) TaxonomySummary {
	summary := TaxonomySummary{}
	if resp == nil {
		return summary
	}

	for _, t := range resp.MostUsed {
		summary.TotalUsage += t.UsageCount
	}

	if len(resp.MostEffective) == 0 {
		return summary
	}

	var scoreSum, rateSum float64
	for _, t := range resp.MostEffective {
		scoreSum += t.AvgMatchScore
		rateSum += t.SuccessRate
	}
	n := float64(len(resp.MostEffective))
	summary.AvgMatchScore = scoreSum / n
	summary.AvgSuccessRate = rateSum / n
	summary.HasData = true

	return summary
}

// StageConversion is a funnel stage with its derived rates: Conversion
// relative to the first stage, DropOff relative to the previous one.
type StageConversion struct {
	Stage      client.FunnelStage
	Conversion float64
	DropOff    float64
}

// FunnelConversions derives per-stage conversion and adjacent drop-off.
// A zero previous count reports zero drop-off rather than dividing.
func FunnelConversions(stages []client.FunnelStage) []StageConversion {
	if len(stages) == 0 {
		return nil
	}

	first := stages[0].Count
	out := make([]StageConversion, len(stages))
	for i, s := range stages {
		conv := 0.0
		if first > 0 {
			conv = float64(s.Count) / float64(first)
		}

		drop := 0.0
		if i > 0 && stages[i-1].Count > 0 {
			drop = 1 - float64(s.Count)/float64(stages[i-1].Count)
		}

		out[i] = StageConversion{Stage: s, Conversion: conv, DropOff: drop}
	}
	return out
}
