package tui

import "hirescope/client"

// Result messages carry the sequence number of the request that produced
// them so Update can discard anything stale.

type comparisonMsg struct {
	seq  int
	resp *client.ComparisonResponse
	err  error
}

type taxonomyMsg struct {
	seq  int
	resp *client.TaxonomyAnalyticsResponse
	err  error
}

type funnelMsg struct {
	seq  int
	resp *client.FunnelResponse
	err  error
}

type metricsMsg struct {
	seq  int
	resp *client.KeyMetricsResponse
	err  error
}

type synonymsMsg struct {
	seq     int
	entries []client.SynonymEntry
	err     error
}
