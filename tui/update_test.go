package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"hirescope/client"
)

func newTestModel() Model {
	return NewModel(Params{
		Client: client.New(client.Config{}),
	})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T; want Model", next)
	}
	return model, cmd
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestInitialStates(t *testing.T) {
	m := newTestModel()

	if m.taxonomies.status != StatusLoading {
		t.Fatalf("taxonomies start as %v; want loading", m.taxonomies.status)
	}
	if m.comparison.status != StatusNoData {
		t.Fatalf("comparison without resumes = %v; want no-data", m.comparison.status)
	}
	if m.synonyms.status != StatusNoData {
		t.Fatalf("synonyms without org = %v; want no-data", m.synonyms.status)
	}
	if m.tab != TabTaxonomies {
		t.Fatalf("initial tab = %v; want taxonomies", m.tab)
	}
	if m.Init() == nil {
		t.Fatalf("Init returned no commands")
	}
}

func TestStaleResponseDiscarded(t *testing.T) {
	m := newTestModel()
	seq := m.taxonomies.seq

	// A result from an older request must not commit
	m, _ = update(t, m, taxonomyMsg{seq: seq - 1, resp: &client.TaxonomyAnalyticsResponse{TotalAnalyzed: 99}})
	if m.taxonomies.status != StatusLoading {
		t.Fatalf("stale result committed: status = %v", m.taxonomies.status)
	}
	if m.taxonomies.resp != nil {
		t.Fatalf("stale payload stored")
	}

	// The current request's result commits
	m, _ = update(t, m, taxonomyMsg{seq: seq, resp: &client.TaxonomyAnalyticsResponse{
		MostUsed: []client.TaxonomyStat{{Name: "Backend", UsageCount: 10}},
	}})
	if m.taxonomies.status != StatusSuccess {
		t.Fatalf("fresh result ignored: status = %v", m.taxonomies.status)
	}

	// A late, stale duplicate after success must not overwrite
	m, _ = update(t, m, taxonomyMsg{seq: seq - 1, err: &client.Error{Kind: client.KindTransport, Message: "late failure"}})
	if m.taxonomies.status != StatusSuccess {
		t.Fatalf("late stale error overwrote success: %v", m.taxonomies.status)
	}
}

func TestRetryFromErrorToSuccess(t *testing.T) {
	m := newTestModel()

	m, _ = update(t, m, funnelMsg{seq: m.funnel.seq, err: &client.Error{
		Kind: client.KindProtocol, Message: "server returned 500 Internal Server Error",
	}})
	if m.funnel.status != StatusError {
		t.Fatalf("funnel status = %v; want error", m.funnel.status)
	}
	if m.funnel.message == "" {
		t.Fatalf("error state lost its message")
	}

	// Switch to the funnel tab and retry
	m, _ = update(t, m, keyMsg("3"))
	if m.tab != TabFunnel {
		t.Fatalf("tab = %v; want funnel", m.tab)
	}

	m, cmd := update(t, m, keyMsg("r"))
	if m.funnel.status != StatusLoading {
		t.Fatalf("retry did not transition to loading: %v", m.funnel.status)
	}
	if cmd == nil {
		t.Fatalf("retry issued no command")
	}

	// Success lands directly from the retried request
	m, _ = update(t, m, funnelMsg{seq: m.funnel.seq, resp: &client.FunnelResponse{
		Stages:       []client.FunnelStage{{Name: "applied", Count: 10}},
		TotalResumes: 10,
	}})
	if m.funnel.status != StatusSuccess {
		t.Fatalf("funnel status after retry = %v; want success", m.funnel.status)
	}
	if m.funnel.message != "" {
		t.Fatalf("stale error message kept: %q", m.funnel.message)
	}
	if len(m.funnel.stages) != 1 {
		t.Fatalf("conversions not derived on commit")
	}
}

func TestEmptyResultBecomesNoData(t *testing.T) {
	m := newTestModel()

	m, _ = update(t, m, metricsMsg{seq: m.metrics.seq, err: &client.Error{
		Kind: client.KindEmpty, Message: "no resumes processed in the selected period",
	}})
	if m.metrics.status != StatusNoData {
		t.Fatalf("empty result mapped to %v; want no-data", m.metrics.status)
	}
}

func TestComparisonCommitDerivesViewModel(t *testing.T) {
	m := NewModel(Params{
		Client:    client.New(client.Config{}),
		ResumeIDs: []string{"r1", "r2"},
		VacancyID: "v42",
	})
	if m.tab != TabComparison {
		t.Fatalf("tab = %v; want comparison when resumes are set", m.tab)
	}

	m, _ = update(t, m, comparisonMsg{seq: m.comparison.seq, resp: &client.ComparisonResponse{
		VacancyID: "v42",
		Comparisons: []client.ComparisonResult{
			{ResumeID: "r2", MatchPercentage: 65, MatchedSkills: []client.SkillMark{{Name: "Go", Matched: true}}},
			{ResumeID: "r1", MatchPercentage: 85.5, MissingSkills: []client.SkillMark{{Name: "Go"}}},
		},
	}})

	if m.comparison.status != StatusSuccess {
		t.Fatalf("status = %v", m.comparison.status)
	}
	if m.comparison.ranked[0].ResumeID != "r1" {
		t.Fatalf("ranking not applied: %v first", m.comparison.ranked[0].ResumeID)
	}
	if len(m.comparison.matrix) != 1 || m.comparison.matrix[0].Skill != "Go" {
		t.Fatalf("matrix not derived: %+v", m.comparison.matrix)
	}
	if m.View() == "" {
		t.Fatalf("View rendered nothing")
	}
}

func TestComparisonViewShowsEveryCandidate(t *testing.T) {
	m := NewModel(Params{
		Client:    client.New(client.Config{}),
		ResumeIDs: []string{"alpha-resume", "bravo-resume", "charlie-resume"},
		VacancyID: "v42",
	})

	m, _ = update(t, m, comparisonMsg{seq: m.comparison.seq, resp: &client.ComparisonResponse{
		VacancyID: "v42",
		Comparisons: []client.ComparisonResult{
			{ResumeID: "alpha-resume", MatchPercentage: 85.5},
			{ResumeID: "bravo-resume", MatchPercentage: 65.0},
			{ResumeID: "charlie-resume", MatchPercentage: 45.5},
		},
	}})

	// Every ranked candidate must appear in the table, the lowest included
	out := m.View()
	for _, id := range []string{"alpha-resume", "bravo-resume", "charlie-resume"} {
		if !strings.Contains(out, id) {
			t.Fatalf("candidate %s missing from rendered view", id)
		}
	}
}
