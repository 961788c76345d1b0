package client

import "time"

// ComparisonRequest is the body of a multi-resume comparison call.
type ComparisonRequest struct {
	ResumeIDs []string `json:"resume_ids"`
	VacancyID string   `json:"vacancy_id"`
}

// SkillMark is one skill from a comparison result, either matched or missing.
type SkillMark struct {
	Name      string `json:"name"`
	Matched   bool   `json:"matched"`
	Highlight string `json:"highlight,omitempty"`
}

// ProjectEntry supports an experience check with a concrete project.
type ProjectEntry struct {
	Name        string `json:"name"`
	Months      int    `json:"months"`
	Description string `json:"description,omitempty"`
}

// ExperienceCheck verifies accumulated experience for one required skill.
type ExperienceCheck struct {
	Skill             string         `json:"skill"`
	AccumulatedMonths int            `json:"accumulated_months"`
	RequiredMonths    int            `json:"required_months"`
	Sufficient        bool           `json:"sufficient"`
	Projects          []ProjectEntry `json:"projects,omitempty"`
}

// ComparisonResult is the per-resume outcome of a comparison.
type ComparisonResult struct {
	ResumeID         string            `json:"resume_id"`
	MatchPercentage  float64           `json:"match_percentage"`
	MatchedSkills    []SkillMark       `json:"matched_skills"`
	MissingSkills    []SkillMark       `json:"missing_skills"`
	ExperienceChecks []ExperienceCheck `json:"experience_checks,omitempty"`
	OverallMatch     bool              `json:"overall_match"`
}

// ComparisonResponse is the payload of POST {comparison}/compare-multiple.
type ComparisonResponse struct {
	VacancyID       string             `json:"vacancy_id"`
	Comparisons     []ComparisonResult `json:"comparisons"`
	AllUniqueSkills []string           `json:"all_unique_skills"`
	ProcessingTime  float64            `json:"processing_time,omitempty"`
}

// TaxonomyStat describes usage and effectiveness of one skill taxonomy.
type TaxonomyStat struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	UsageCount        int     `json:"usage_count"`
	AvgMatchScore     float64 `json:"avg_match_score"`
	SuccessRate       float64 `json:"success_rate"`
	MatchedCandidates int     `json:"matched_candidates"`
	Industry          string  `json:"industry,omitempty"`
}

// TaxonomyAnalyticsResponse is the payload of the taxonomy analytics surface.
type TaxonomyAnalyticsResponse struct {
	MostUsed       []TaxonomyStat `json:"most_used_taxonomies"`
	MostEffective  []TaxonomyStat `json:"most_effective_taxonomies"`
	IndustryFilter *string        `json:"industry_filter"`
	TotalAnalyzed  int            `json:"total_taxonomies_analyzed"`
}

// FunnelStage is one step of the hiring pipeline. Name is a machine key
// such as "interview_scheduled"; ConversionRate is relative to the first
// stage and lies in [0,1].
type FunnelStage struct {
	Name           string  `json:"name"`
	Count          int     `json:"count"`
	ConversionRate float64 `json:"conversion_rate"`
}

// FunnelResponse is the payload of the hiring funnel surface.
type FunnelResponse struct {
	Stages          []FunnelStage `json:"stages"`
	TotalResumes    int           `json:"total_resumes"`
	OverallHireRate float64       `json:"overall_hire_rate"`
}

// TimeToHireStats is the time-to-hire distribution in days.
type TimeToHireStats struct {
	MeanDays   float64 `json:"mean_days"`
	MedianDays float64 `json:"median_days"`
	MinDays    float64 `json:"min_days"`
	MaxDays    float64 `json:"max_days"`
	P25Days    float64 `json:"p25_days"`
	P75Days    float64 `json:"p75_days"`
}

// ResumeCounters tracks resume processing volume.
type ResumeCounters struct {
	Total     int     `json:"total"`
	ThisMonth int     `json:"this_month"`
	ThisWeek  int     `json:"this_week"`
	PerDay    float64 `json:"per_day"`
}

// MatchRateSummary aggregates match outcomes by confidence.
type MatchRateSummary struct {
	OverallRate      float64 `json:"overall_rate"`
	HighConfidence   int     `json:"high_confidence"`
	MediumConfidence int     `json:"medium_confidence"`
	LowConfidence    int     `json:"low_confidence"`
	AvgConfidence    float64 `json:"avg_confidence"`
}

// KeyMetricsResponse is the payload of the key metrics surface.
type KeyMetricsResponse struct {
	TimeToHire TimeToHireStats  `json:"time_to_hire"`
	Resumes    ResumeCounters   `json:"resumes"`
	MatchRates MatchRateSummary `json:"match_rates"`
}

// SynonymEntry maps a canonical skill to alternate terms for one organization.
type SynonymEntry struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	Skill          string    `json:"skill"`
	Synonyms       []string  `json:"synonyms"`
	Context        string    `json:"context,omitempty"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// SynonymPayload is the body of synonym create and update calls. Update
// replaces the synonym list and context wholesale.
type SynonymPayload struct {
	OrganizationID string   `json:"organization_id"`
	Skill          string   `json:"skill"`
	Synonyms       []string `json:"synonyms"`
	Context        string   `json:"context,omitempty"`
	Active         bool     `json:"active"`
}

// TaxonomyOptions are the optional filters of the taxonomy analytics surface.
type TaxonomyOptions struct {
	Industry string
	Limit    int
}

// DateRange bounds funnel and key metrics queries. Dates are YYYY-MM-DD and
// appended to the query string only when present.
type DateRange struct {
	Start string
	End   string
}
