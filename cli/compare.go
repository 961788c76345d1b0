package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"hirescope/client"
	"hirescope/insights"
)

var compareVacancy string

var compareCmd = &cobra.Command{
	Use:   "compare <resume-id>...",
	Short: "Compare resumes against a vacancy",
	Long: `Compare between 2 and 5 resumes against one vacancy and print the
ranking, the match categories, and the combined skill matrix.

Examples:
  hirescope compare r1 r2 r3 --vacancy v42
  hirescope compare r1 r2 --vacancy v42 --api-url http://localhost:9090`,
	Args: cobra.ArbitraryArgs,
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringVar(&compareVacancy, "vacancy", "", "vacancy id to compare against (required)")
	_ = compareCmd.MarkFlagRequired("vacancy")
}

func runCompare(cmd *cobra.Command, args []string) error {
	resp, err := api.CompareResumes(context.Background(), client.ComparisonRequest{
		ResumeIDs: args,
		VacancyID: compareVacancy,
	})
	if err != nil {
		return reportError("comparison", err)
	}

	ranked := insights.RankComparisons(resp.Comparisons)
	matrix := insights.BuildSkillMatrix(ranked)

	fmt.Println(headerStyle.Render(fmt.Sprintf("Vacancy %s — %d candidates", resp.VacancyID, len(ranked))))
	fmt.Println()

	for _, r := range ranked {
		label, lvl := insights.MatchQuality(r.MatchPercentage)
		verified, total := insights.ExperienceSummary(r.ComparisonResult)

		line := fmt.Sprintf("#%d  %-16s %5s  %s",
			r.Rank, r.ResumeID,
			insights.WholePercent(r.MatchPercentage),
			levelStyle(lvl).Render(label),
		)
		if total > 0 {
			line += infoStyle.Render(fmt.Sprintf("  (%d/%d experience checks)", verified, total))
		}
		fmt.Println(line)
	}

	fmt.Println()
	fmt.Println(headerStyle.Render("Skill matrix"))
	header := fmt.Sprintf("%-24s", "")
	for _, r := range ranked {
		header += fmt.Sprintf(" %-10s", truncate(r.ResumeID, 10))
	}
	fmt.Println(infoStyle.Render(header))
	for _, row := range matrix {
		line := fmt.Sprintf("%-24s", truncate(row.Skill, 24))
		for _, matched := range row.Cells {
			if matched {
				line += goodStyle.Render(fmt.Sprintf(" %-10s", "✓"))
			} else {
				line += badStyle.Render(fmt.Sprintf(" %-10s", "✗"))
			}
		}
		fmt.Println(line)
	}

	logger.Info("comparison rendered", "vacancy", resp.VacancyID, "candidates", len(ranked))
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return strings.TrimSpace(string(r[:n-1])) + "…"
}
