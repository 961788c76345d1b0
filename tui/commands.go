package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"hirescope/client"
)

// fetchComparison creates a command that compares the selected resumes.
func fetchComparison(c *client.Client, req client.ComparisonRequest, seq int) tea.Cmd {
	return func() tea.Msg {
		resp, err := c.CompareResumes(context.Background(), req)
		return comparisonMsg{seq: seq, resp: resp, err: err}
	}
}

// fetchTaxonomies creates a command that loads taxonomy analytics.
func fetchTaxonomies(c *client.Client, opts client.TaxonomyOptions, seq int) tea.Cmd {
	return func() tea.Msg {
		resp, err := c.TaxonomyAnalytics(context.Background(), opts)
		return taxonomyMsg{seq: seq, resp: resp, err: err}
	}
}

// fetchFunnel creates a command that loads the hiring funnel.
func fetchFunnel(c *client.Client, r client.DateRange, seq int) tea.Cmd {
	return func() tea.Msg {
		resp, err := c.HiringFunnel(context.Background(), r)
		return funnelMsg{seq: seq, resp: resp, err: err}
	}
}

// fetchMetrics creates a command that loads the key metrics snapshot.
func fetchMetrics(c *client.Client, r client.DateRange, seq int) tea.Cmd {
	return func() tea.Msg {
		resp, err := c.KeyMetrics(context.Background(), r)
		return metricsMsg{seq: seq, resp: resp, err: err}
	}
}

// fetchSynonyms creates a command that loads an organization's synonyms.
func fetchSynonyms(c *client.Client, orgID string, seq int) tea.Cmd {
	return func() tea.Msg {
		entries, err := c.ListSynonyms(context.Background(), orgID)
		return synonymsMsg{seq: seq, entries: entries, err: err}
	}
}
