package stubserver

import (
	"time"

	"github.com/google/uuid"

	"hirescope/client"
)

// matchCycle assigns deterministic percentages so repeated runs render the
// same ranking regardless of which resume ids the caller picks.
var matchCycle = []float64{85.5, 65.0, 45.5, 72.3, 58.9}

var fixtureSkills = []client.SkillMark{
	{Name: "Go", Matched: true, Highlight: "strong"},
	{Name: "PostgreSQL", Matched: true},
	{Name: "Kubernetes", Matched: false},
	{Name: "React", Matched: true},
	{Name: "Terraform", Matched: false},
}

func comparisonFixture(req client.ComparisonRequest) client.ComparisonResponse {
	comparisons := make([]client.ComparisonResult, len(req.ResumeIDs))
	for i, id := range req.ResumeIDs {
		pct := matchCycle[i%len(matchCycle)]

		var matched, missing []client.SkillMark
		for j, s := range fixtureSkills {
			// Weaker candidates match fewer skills
			if pct >= 60 || j%2 == 0 {
				if s.Matched {
					matched = append(matched, s)
					continue
				}
			}
			missing = append(missing, client.SkillMark{Name: s.Name})
		}

		comparisons[i] = client.ComparisonResult{
			ResumeID:        id,
			MatchPercentage: pct,
			MatchedSkills:   matched,
			MissingSkills:   missing,
			ExperienceChecks: []client.ExperienceCheck{
				{
					Skill:             "Go",
					AccumulatedMonths: 18 + 6*i,
					RequiredMonths:    24,
					Sufficient:        18+6*i >= 24,
					Projects: []client.ProjectEntry{
						{Name: "billing service", Months: 12},
						{Name: "internal tooling", Months: 6 + 6*i},
					},
				},
			},
			OverallMatch: pct >= 60,
		}
	}

	skills := make([]string, len(fixtureSkills))
	for i, s := range fixtureSkills {
		skills[i] = s.Name
	}

	return client.ComparisonResponse{
		VacancyID:       req.VacancyID,
		Comparisons:     comparisons,
		AllUniqueSkills: skills,
		ProcessingTime:  0.42,
	}
}

var fixtureTaxonomies = []client.TaxonomyStat{
	{ID: "tx-backend", Name: "Backend Engineering", UsageCount: 1240, AvgMatchScore: 78.5, SuccessRate: 0.74, MatchedCandidates: 311, Industry: "software"},
	{ID: "tx-frontend", Name: "Frontend Engineering", UsageCount: 980, AvgMatchScore: 75.2, SuccessRate: 0.68, MatchedCandidates: 244, Industry: "software"},
	{ID: "tx-data", Name: "Data Engineering", UsageCount: 610, AvgMatchScore: 82.1, SuccessRate: 0.81, MatchedCandidates: 189, Industry: "software"},
	{ID: "tx-devops", Name: "DevOps", UsageCount: 455, AvgMatchScore: 73.8, SuccessRate: 0.62, MatchedCandidates: 97, Industry: "software"},
	{ID: "tx-fin", Name: "Financial Analysis", UsageCount: 320, AvgMatchScore: 71.2, SuccessRate: 0.55, MatchedCandidates: 64, Industry: "finance"},
}

func taxonomyFixture(industry string, limit int) client.TaxonomyAnalyticsResponse {
	filtered := make([]client.TaxonomyStat, 0, len(fixtureTaxonomies))
	for _, t := range fixtureTaxonomies {
		if industry == "" || t.Industry == industry {
			filtered = append(filtered, t)
		}
	}
	if limit > 0 && limit < len(filtered) {
		filtered = filtered[:limit]
	}

	var industryFilter *string
	if industry != "" {
		industryFilter = &industry
	}

	return client.TaxonomyAnalyticsResponse{
		MostUsed:       filtered,
		MostEffective:  filtered,
		IndustryFilter: industryFilter,
		TotalAnalyzed:  len(fixtureTaxonomies),
	}
}

func funnelFixture() client.FunnelResponse {
	counts := []int{1000, 850, 600, 350, 150, 45}
	names := []string{
		"applied", "screening_passed", "interview_scheduled",
		"interview_passed", "offer_extended", "candidates_hired",
	}

	stages := make([]client.FunnelStage, len(counts))
	for i := range counts {
		stages[i] = client.FunnelStage{
			Name:           names[i],
			Count:          counts[i],
			ConversionRate: float64(counts[i]) / float64(counts[0]),
		}
	}

	return client.FunnelResponse{
		Stages:          stages,
		TotalResumes:    counts[0],
		OverallHireRate: 0.045,
	}
}

func metricsFixture() client.KeyMetricsResponse {
	return client.KeyMetricsResponse{
		TimeToHire: client.TimeToHireStats{
			MeanDays:   27.4,
			MedianDays: 24.0,
			MinDays:    9.0,
			MaxDays:    88.0,
			P25Days:    18.0,
			P75Days:    33.5,
		},
		Resumes: client.ResumeCounters{
			Total:     14382,
			ThisMonth: 1204,
			ThisWeek:  287,
			PerDay:    41.2,
		},
		MatchRates: client.MatchRateSummary{
			OverallRate:      0.63,
			HighConfidence:   4211,
			MediumConfidence: 6190,
			LowConfidence:    3981,
			AvgConfidence:    0.71,
		},
	}
}

func seedSynonyms() map[string]client.SynonymEntry {
	now := time.Now().UTC()
	seeds := []client.SynonymEntry{
		{
			ID:             uuid.NewString(),
			OrganizationID: "acme",
			Skill:          "React",
			Synonyms:       []string{"react.js", "reactjs"},
			Context:        "web_framework",
			Active:         true,
			CreatedAt:      now,
			UpdatedAt:      now,
		},
		{
			ID:             uuid.NewString(),
			OrganizationID: "acme",
			Skill:          "PostgreSQL",
			Synonyms:       []string{"postgres", "psql"},
			Context:        "database",
			Active:         true,
			CreatedAt:      now,
			UpdatedAt:      now,
		},
	}

	out := make(map[string]client.SynonymEntry, len(seeds))
	for _, e := range seeds {
		out[e.ID] = e
	}
	return out
}
