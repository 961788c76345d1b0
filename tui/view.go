package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"hirescope/insights"
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Hirescope — recruiting analytics"))
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.tab {
	case TabComparison:
		b.WriteString(m.renderState(m.comparison.fetchState, m.renderComparison))
	case TabTaxonomies:
		b.WriteString(m.renderState(m.taxonomies.fetchState, m.renderTaxonomies))
	case TabFunnel:
		b.WriteString(m.renderState(m.funnel.fetchState, m.renderFunnel))
	case TabMetrics:
		b.WriteString(m.renderState(m.metrics.fetchState, m.renderMetrics))
	case TabSynonyms:
		b.WriteString(m.renderState(m.synonyms.fetchState, m.renderSynonyms))
	}

	b.WriteString("\n\n")
	if m.currentStatus() == StatusError {
		b.WriteString(InfoStyle.Render(TextFooterError))
	} else {
		b.WriteString(InfoStyle.Render(TextFooter))
	}
	b.WriteString("\n")

	return b.String()
}

func (m Model) currentStatus() Status {
	switch m.tab {
	case TabComparison:
		return m.comparison.status
	case TabTaxonomies:
		return m.taxonomies.status
	case TabFunnel:
		return m.funnel.status
	case TabMetrics:
		return m.metrics.status
	default:
		return m.synonyms.status
	}
}

func (m Model) renderTabs() string {
	parts := make([]string, len(tabTitles))
	for i, title := range tabTitles {
		if Tab(i) == m.tab {
			parts[i] = ActiveTabStyle.Render(fmt.Sprintf("%d %s", i+1, title))
		} else {
			parts[i] = TabStyle.Render(fmt.Sprintf("%d %s", i+1, title))
		}
	}
	return strings.Join(parts, " ")
}

// renderState renders the shared lifecycle around a view's success body.
func (m Model) renderState(f fetchState, success func() string) string {
	switch f.status {
	case StatusLoading:
		return m.spin.View() + " " + InfoStyle.Render(TextLoading)
	case StatusError:
		return ErrorStyle.Render("Error: "+f.message) + "\n" +
			InfoStyle.Render("Press 'r' to retry")
	case StatusNoData:
		msg := f.message
		if msg == "" {
			msg = TextNoData
		}
		return InfoStyle.Render(msg)
	default:
		return success()
	}
}

func (m Model) renderComparison() string {
	var b strings.Builder
	resp := m.comparison.resp

	b.WriteString(HeaderStyle.Render(fmt.Sprintf("Vacancy %s — %d candidates", resp.VacancyID, len(m.comparison.ranked))))
	b.WriteString("\n\n")

	cols := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Resume", Width: 16},
		{Title: "Match", Width: 6},
		{Title: "Category", Width: 10},
		{Title: "Experience", Width: 12},
		{Title: "Overall", Width: 8},
	}
	rows := make([]table.Row, len(m.comparison.ranked))
	for i, r := range m.comparison.ranked {
		label, _ := insights.MatchQuality(r.MatchPercentage)
		verified, total := insights.ExperienceSummary(r.ComparisonResult)
		exp := "—"
		if total > 0 {
			exp = fmt.Sprintf("%d/%d checks", verified, total)
		}
		overall := "no"
		if r.OverallMatch {
			overall = "yes"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.Rank),
			r.ResumeID,
			insights.WholePercent(r.MatchPercentage),
			label,
			exp,
			overall,
		}
	}
	b.WriteString(renderTable(cols, rows))
	b.WriteString("\n\n")

	b.WriteString(HeaderStyle.Render("Skill matrix"))
	b.WriteString("\n")
	b.WriteString(m.renderSkillMatrix())

	if resp.ProcessingTime > 0 {
		b.WriteString("\n")
		b.WriteString(InfoStyle.Render(fmt.Sprintf("computed in %.2fs", resp.ProcessingTime)))
	}
	return b.String()
}

func (m Model) renderSkillMatrix() string {
	var b strings.Builder
	for _, row := range m.comparison.matrix {
		b.WriteString(fmt.Sprintf("%-24s", row.Skill))
		for _, matched := range row.Cells {
			if matched {
				b.WriteString(StatusStyle.Render(" ✓ "))
			} else {
				b.WriteString(ErrorStyle.Render(" ✗ "))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderTaxonomies() string {
	var b strings.Builder
	resp := m.taxonomies.resp
	summary := m.taxonomies.summary

	if summary.HasData {
		b.WriteString(HeaderStyle.Render(fmt.Sprintf(
			"%s taxonomies analyzed — %s uses, avg match %s, avg success %s",
			insights.FormatCount(resp.TotalAnalyzed),
			insights.FormatCount(summary.TotalUsage),
			insights.Percent1(summary.AvgMatchScore),
			insights.RatePercent1(summary.AvgSuccessRate),
		)))
	} else {
		b.WriteString(InfoStyle.Render("No effectiveness data yet"))
	}
	b.WriteString("\n\n")

	b.WriteString(HeaderStyle.Render("Most used"))
	b.WriteString("\n")
	cols := []table.Column{
		{Title: "Taxonomy", Width: 22},
		{Title: "Uses", Width: 8},
		{Title: "Avg match", Width: 10},
		{Title: "Success", Width: 8},
		{Title: "Industry", Width: 12},
	}
	rows := make([]table.Row, len(resp.MostUsed))
	for i, t := range resp.MostUsed {
		industry := t.Industry
		if industry == "" {
			industry = "—"
		}
		rows[i] = table.Row{
			t.Name,
			insights.FormatCount(t.UsageCount),
			insights.Percent1(t.AvgMatchScore),
			insights.RatePercent1(t.SuccessRate),
			industry,
		}
	}
	b.WriteString(renderTable(cols, rows))
	b.WriteString("\n\n")

	b.WriteString(HeaderStyle.Render("Most effective"))
	b.WriteString("\n")
	for _, t := range resp.MostEffective {
		_, lvl := insights.MatchQuality(t.AvgMatchScore)
		b.WriteString(fmt.Sprintf("  %-22s %s  (%d matched)\n",
			t.Name,
			LevelStyle(lvl).Render(insights.Percent1(t.AvgMatchScore)),
			t.MatchedCandidates,
		))
	}
	return b.String()
}

func (m Model) renderFunnel() string {
	var b strings.Builder
	resp := m.funnel.resp

	b.WriteString(HeaderStyle.Render(fmt.Sprintf("%s resumes in pipeline", insights.FormatCount(resp.TotalResumes))))
	b.WriteString("\n\n")

	for i, sc := range m.funnel.stages {
		style := LevelStyle(insights.ConversionLevel(sc.Conversion))
		line := fmt.Sprintf("%-26s %8s  %7s",
			insights.HumanizeKey(sc.Stage.Name),
			insights.FormatCount(sc.Stage.Count),
			style.Render(insights.RatePercent1(sc.Conversion)),
		)
		b.WriteString(line)
		if i > 0 {
			b.WriteString(InfoStyle.Render(fmt.Sprintf("   -%s drop-off", insights.RatePercent1(sc.DropOff))))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(HighlightStyle.Render(fmt.Sprintf("Overall hire rate: %s", insights.RatePercent1(resp.OverallHireRate))))
	return b.String()
}

func (m Model) renderMetrics() string {
	resp := m.metrics.resp

	tth := resp.TimeToHire
	tthStyle := LevelStyle(insights.TimeToHireLevel(tth.MeanDays))
	timeBox := BoxStyle.Render(fmt.Sprintf(
		"%s\n\nmean   %s\nmedian %s\np25    %s\np75    %s\nrange  %s – %s",
		HeaderStyle.Render("Time to hire"),
		tthStyle.Render(insights.Days1(tth.MeanDays)),
		insights.Days1(tth.MedianDays),
		insights.Days1(tth.P25Days),
		insights.Days1(tth.P75Days),
		insights.Days1(tth.MinDays),
		insights.Days1(tth.MaxDays),
	))

	res := resp.Resumes
	resumeBox := BoxStyle.Render(fmt.Sprintf(
		"%s\n\ntotal      %s\nthis month %s\nthis week  %s\nper day    %.1f",
		HeaderStyle.Render("Resumes"),
		insights.FormatCount(res.Total),
		insights.FormatCount(res.ThisMonth),
		insights.FormatCount(res.ThisWeek),
		res.PerDay,
	))

	mr := resp.MatchRates
	matchBox := BoxStyle.Render(fmt.Sprintf(
		"%s\n\noverall %s\nhigh    %s\nmedium  %s\nlow     %s\navg conf %s",
		HeaderStyle.Render("Match rates"),
		insights.RatePercent1(mr.OverallRate),
		insights.FormatCount(mr.HighConfidence),
		insights.FormatCount(mr.MediumConfidence),
		insights.FormatCount(mr.LowConfidence),
		insights.RatePercent1(mr.AvgConfidence),
	))

	return lipgloss.JoinHorizontal(lipgloss.Top, timeBox, " ", resumeBox, " ", matchBox)
}

func (m Model) renderSynonyms() string {
	var b strings.Builder

	b.WriteString(HeaderStyle.Render(fmt.Sprintf("Skill synonyms — %s", m.params.OrganizationID)))
	b.WriteString("\n\n")

	for _, e := range m.synonyms.entries {
		status := StatusStyle.Render("active")
		if !e.Active {
			status = InfoStyle.Render("inactive")
		}
		context := ""
		if e.Context != "" {
			context = InfoStyle.Render(" [" + insights.HumanizeKey(e.Context) + "]")
		}
		b.WriteString(fmt.Sprintf("%-20s → %s%s  %s\n",
			e.Skill,
			strings.Join(e.Synonyms, ", "),
			context,
			status,
		))
	}
	return b.String()
}

// renderTable renders a static bubbles table with selection styling off.
func renderTable(cols []table.Column, rows []table.Row) string {
	// The table height includes the header row
	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.Bold(true).Foreground(lipgloss.Color(colorPrimary))
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t.View()
}
