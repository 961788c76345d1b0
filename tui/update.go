package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"hirescope/insights"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case spinner.TickMsg:
		if !m.anyLoading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	case comparisonMsg:
		return m.handleComparison(msg)
	case taxonomyMsg:
		return m.handleTaxonomies(msg)
	case funnelMsg:
		return m.handleFunnel(msg)
	case metricsMsg:
		return m.handleMetrics(msg)
	case synonymsMsg:
		return m.handleSynonyms(msg)
	}
	return m, nil
}

// handleKeyPress processes keyboard input.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "tab", "right", "l":
		m.tab = (m.tab + 1) % Tab(len(tabTitles))
		return m, nil
	case "shift+tab", "left", "h":
		m.tab = (m.tab + Tab(len(tabTitles)) - 1) % Tab(len(tabTitles))
		return m, nil
	case "1", "2", "3", "4", "5":
		m.tab = Tab(int(msg.String()[0] - '1'))
		return m, nil
	case "r", "R":
		return m.refreshCurrent()
	}
	return m, nil
}

// refreshCurrent re-issues the active view's request with the same
// last-used parameters. One keypress is one attempt: no backoff, no cap.
func (m Model) refreshCurrent() (tea.Model, tea.Cmd) {
	switch m.tab {
	case TabComparison:
		if len(m.params.ResumeIDs) == 0 {
			return m, nil
		}
		seq := m.comparison.begin()
		return m, tea.Batch(m.spin.Tick, fetchComparison(m.params.Client, m.comparisonRequest(), seq))
	case TabTaxonomies:
		seq := m.taxonomies.begin()
		return m, tea.Batch(m.spin.Tick, fetchTaxonomies(m.params.Client, m.params.Taxonomy, seq))
	case TabFunnel:
		seq := m.funnel.begin()
		return m, tea.Batch(m.spin.Tick, fetchFunnel(m.params.Client, m.params.Dates, seq))
	case TabMetrics:
		seq := m.metrics.begin()
		return m, tea.Batch(m.spin.Tick, fetchMetrics(m.params.Client, m.params.Dates, seq))
	case TabSynonyms:
		if m.params.OrganizationID == "" {
			return m, nil
		}
		seq := m.synonyms.begin()
		return m, tea.Batch(m.spin.Tick, fetchSynonyms(m.params.Client, m.params.OrganizationID, seq))
	}
	return m, nil
}

// handleComparison commits a comparison result, deriving the ranking and
// the skill matrix. Stale results are dropped.
func (m Model) handleComparison(msg comparisonMsg) (tea.Model, tea.Cmd) {
	if m.comparison.stale(msg.seq) {
		return m, nil
	}
	if msg.err != nil {
		m.comparison.fail(msg.err)
		m.logFailure("comparison", msg.err)
		return m, nil
	}

	m.comparison.resp = msg.resp
	m.comparison.ranked = insights.RankComparisons(msg.resp.Comparisons)
	m.comparison.matrix = insights.BuildSkillMatrix(m.comparison.ranked)
	m.comparison.succeed()
	return m, nil
}

func (m Model) handleTaxonomies(msg taxonomyMsg) (tea.Model, tea.Cmd) {
	if m.taxonomies.stale(msg.seq) {
		return m, nil
	}
	if msg.err != nil {
		m.taxonomies.fail(msg.err)
		m.logFailure("taxonomies", msg.err)
		return m, nil
	}

	m.taxonomies.resp = msg.resp
	m.taxonomies.summary = insights.SummarizeTaxonomies(msg.resp)
	m.taxonomies.succeed()
	return m, nil
}

func (m Model) handleFunnel(msg funnelMsg) (tea.Model, tea.Cmd) {
	if m.funnel.stale(msg.seq) {
		return m, nil
	}
	if msg.err != nil {
		m.funnel.fail(msg.err)
		m.logFailure("funnel", msg.err)
		return m, nil
	}

	m.funnel.resp = msg.resp
	m.funnel.stages = insights.FunnelConversions(msg.resp.Stages)
	m.funnel.succeed()
	return m, nil
}

func (m Model) handleMetrics(msg metricsMsg) (tea.Model, tea.Cmd) {
	if m.metrics.stale(msg.seq) {
		return m, nil
	}
	if msg.err != nil {
		m.metrics.fail(msg.err)
		m.logFailure("metrics", msg.err)
		return m, nil
	}

	m.metrics.resp = msg.resp
	m.metrics.succeed()
	return m, nil
}

func (m Model) handleSynonyms(msg synonymsMsg) (tea.Model, tea.Cmd) {
	if m.synonyms.stale(msg.seq) {
		return m, nil
	}
	if msg.err != nil {
		m.synonyms.fail(msg.err)
		m.logFailure("synonyms", msg.err)
		return m, nil
	}

	m.synonyms.entries = msg.entries
	m.synonyms.succeed()
	return m, nil
}

func (m Model) logFailure(view string, err error) {
	if m.params.Logger != nil {
		m.params.Logger.Warn("fetch failed", "view", view, "error", err)
	}
}
