package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"hirescope/client"
	"hirescope/tui"
)

var (
	dashResumes  []string
	dashVacancy  string
	dashIndustry string
	dashLimit    int
	dashStart    string
	dashEnd      string
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Open the interactive analytics dashboard",
	Long: `Open the interactive dashboard with tabbed views for comparison,
taxonomy analytics, funnel conversion, key metrics, and synonyms.

Examples:
  hirescope dashboard
  hirescope dashboard --resumes r1,r2,r3 --vacancy v42
  hirescope dashboard --start 2026-01-01 --end 2026-06-30 --org acme`,
	RunE: runDashboard,
}

func init() {
	dashboardCmd.Flags().StringSliceVar(&dashResumes, "resumes", nil, "resume ids to compare (2-5)")
	dashboardCmd.Flags().StringVar(&dashVacancy, "vacancy", "", "vacancy id for the comparison view")
	dashboardCmd.Flags().StringVar(&dashIndustry, "industry", "", "taxonomy industry filter")
	dashboardCmd.Flags().IntVar(&dashLimit, "limit", 0, "max taxonomies per list")
	dashboardCmd.Flags().StringVar(&dashStart, "start", "", "start date (YYYY-MM-DD)")
	dashboardCmd.Flags().StringVar(&dashEnd, "end", "", "end date (YYYY-MM-DD)")
}

func runDashboard(cmd *cobra.Command, args []string) error {
	// Reject a bad selection before the dashboard opens; inside it the
	// validator would only surface on the comparison tab.
	if len(dashResumes) > 0 {
		if err := client.ValidateResumeIDs(dashResumes); err != nil {
			return err
		}
		if dashVacancy == "" {
			return fmt.Errorf("--vacancy is required when --resumes is set")
		}
	}

	m := tui.NewModel(tui.Params{
		Client:         api,
		Logger:         logger,
		ResumeIDs:      dashResumes,
		VacancyID:      dashVacancy,
		Taxonomy:       client.TaxonomyOptions{Industry: dashIndustry, Limit: dashLimit},
		Dates:          client.DateRange{Start: dashStart, End: dashEnd},
		OrganizationID: orgID,
	})

	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}
	return nil
}
