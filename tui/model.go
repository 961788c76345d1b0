package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"hirescope/client"
	"hirescope/insights"
)

// Status is the lifecycle of one view's data fetch.
type Status string

const (
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
	StatusNoData  Status = "no_data"
)

// fetchState drives a view's request lifecycle. seq is bumped every time a
// request is issued; results carrying an older seq are stale and must be
// discarded, so only the most recent request ever commits to view state.
type fetchState struct {
	status  Status
	message string
	seq     int
}

// begin marks the view loading and returns the sequence the outgoing
// request must carry.
func (f *fetchState) begin() int {
	f.seq++
	f.status = StatusLoading
	f.message = ""
	return f.seq
}

func (f *fetchState) stale(seq int) bool {
	return seq != f.seq
}

// fail classifies the error; empty results become the informational
// no-data state rather than an error.
func (f *fetchState) fail(err error) {
	apiErr := client.Classify(err)
	if apiErr.Kind == client.KindEmpty {
		f.status = StatusNoData
	} else {
		f.status = StatusError
	}
	f.message = apiErr.Message
}

func (f *fetchState) succeed() {
	f.status = StatusSuccess
	f.message = ""
}

// idle puts a view into the no-data state without a request, used when the
// view's required parameters were never supplied.
func (f *fetchState) idle(message string) {
	f.status = StatusNoData
	f.message = message
}

// Tab identifies one dashboard view.
type Tab int

const (
	TabComparison Tab = iota
	TabTaxonomies
	TabFunnel
	TabMetrics
	TabSynonyms
)

var tabTitles = []string{"Comparison", "Taxonomies", "Funnel", "Key Metrics", "Synonyms"}

type comparisonView struct {
	fetchState
	resp   *client.ComparisonResponse
	ranked []insights.RankedResult
	matrix []insights.SkillMatrixRow
}

type taxonomyView struct {
	fetchState
	resp    *client.TaxonomyAnalyticsResponse
	summary insights.TaxonomySummary
}

type funnelView struct {
	fetchState
	resp   *client.FunnelResponse
	stages []insights.StageConversion
}

type metricsView struct {
	fetchState
	resp *client.KeyMetricsResponse
}

type synonymView struct {
	fetchState
	entries []client.SynonymEntry
}

// Params are the dashboard inputs. Retry and refresh always reuse them
// unchanged; the user never resupplies parameters.
type Params struct {
	Client         *client.Client
	Logger         *slog.Logger
	ResumeIDs      []string
	VacancyID      string
	Taxonomy       client.TaxonomyOptions
	Dates          client.DateRange
	OrganizationID string
}

// Model is the dashboard state. Each view owns its data exclusively; there
// is no sharing across views.
type Model struct {
	params Params
	tab    Tab
	spin   spinner.Model
	width  int

	// initCmds are prepared in NewModel because Init runs on a value
	// receiver and could not record the issued sequence numbers.
	initCmds []tea.Cmd

	comparison comparisonView
	taxonomies taxonomyView
	funnel     funnelView
	metrics    metricsView
	synonyms   synonymView
}

// NewModel creates the dashboard model. Every view with usable parameters
// starts loading with its request prepared; the rest settle into an
// informational state.
func NewModel(p Params) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = StatusStyle

	m := Model{
		params: p,
		tab:    firstTab(p),
		spin:   s,
	}

	if len(p.ResumeIDs) > 0 {
		seq := m.comparison.begin()
		m.initCmds = append(m.initCmds, fetchComparison(p.Client, m.comparisonRequest(), seq))
	} else {
		m.comparison.idle(TextNoResumesSelected)
	}

	m.initCmds = append(m.initCmds, fetchTaxonomies(p.Client, p.Taxonomy, m.taxonomies.begin()))
	m.initCmds = append(m.initCmds, fetchFunnel(p.Client, p.Dates, m.funnel.begin()))
	m.initCmds = append(m.initCmds, fetchMetrics(p.Client, p.Dates, m.metrics.begin()))

	if p.OrganizationID != "" {
		m.initCmds = append(m.initCmds, fetchSynonyms(p.Client, p.OrganizationID, m.synonyms.begin()))
	} else {
		m.synonyms.idle(TextNoOrganization)
	}

	return m
}

// firstTab opens on the comparison when resumes were selected, otherwise on
// the taxonomy report.
func firstTab(p Params) Tab {
	if len(p.ResumeIDs) > 0 {
		return TabComparison
	}
	return TabTaxonomies
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(append([]tea.Cmd{m.spin.Tick}, m.initCmds...)...)
}

func (m Model) comparisonRequest() client.ComparisonRequest {
	return client.ComparisonRequest{
		ResumeIDs: m.params.ResumeIDs,
		VacancyID: m.params.VacancyID,
	}
}

// anyLoading reports whether some view still waits on a request, which
// keeps the spinner ticking.
func (m Model) anyLoading() bool {
	for _, s := range []Status{
		m.comparison.status, m.taxonomies.status, m.funnel.status,
		m.metrics.status, m.synonyms.status,
	} {
		if s == StatusLoading {
			return true
		}
	}
	return false
}
