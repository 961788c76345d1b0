package config

import "time"

// API Defaults
const (
	// DefaultAPIURL is the backend root used when no override is supplied
	DefaultAPIURL = "http://localhost:8000"

	// ComparisonPath is the base path of the candidate comparison surface
	ComparisonPath = "/api/v1/comparison"

	// TaxonomyPath is the base path of the taxonomy analytics surface
	TaxonomyPath = "/api/v1/analytics/taxonomies"

	// FunnelPath is the base path of the hiring funnel surface
	FunnelPath = "/api/v1/analytics/funnel"

	// MetricsPath is the base path of the key metrics surface
	MetricsPath = "/api/v1/analytics/key-metrics"

	// SynonymPath is the base path of the skill synonym surface
	SynonymPath = "/api/v1/synonyms"
)

// Comparison Constants
const (
	// MinResumesPerComparison is the smallest selection the backend accepts
	MinResumesPerComparison = 2

	// MaxResumesPerComparison is the largest selection the backend accepts
	MaxResumesPerComparison = 5
)

// Transport Constants
const (
	// RequestTimeout bounds every backend call
	RequestTimeout = 30 * time.Second
)
