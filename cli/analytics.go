package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"hirescope/client"
	"hirescope/insights"
)

var (
	taxIndustry string
	taxLimit    int
	startDate   string
	endDate     string
)

var taxonomiesCmd = &cobra.Command{
	Use:   "taxonomies",
	Short: "Show taxonomy usage and effectiveness",
	RunE:  runTaxonomies,
}

var funnelCmd = &cobra.Command{
	Use:   "funnel",
	Short: "Show hiring funnel conversion",
	RunE:  runFunnel,
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Show the key metrics snapshot",
	RunE:  runMetrics,
}

func init() {
	taxonomiesCmd.Flags().StringVar(&taxIndustry, "industry", "", "filter by industry")
	taxonomiesCmd.Flags().IntVarP(&taxLimit, "limit", "n", 0, "max taxonomies per list")

	for _, cmd := range []*cobra.Command{funnelCmd, metricsCmd} {
		cmd.Flags().StringVar(&startDate, "start", "", "start date (YYYY-MM-DD)")
		cmd.Flags().StringVar(&endDate, "end", "", "end date (YYYY-MM-DD)")
	}
}

func runTaxonomies(cmd *cobra.Command, args []string) error {
	resp, err := api.TaxonomyAnalytics(context.Background(), client.TaxonomyOptions{
		Industry: taxIndustry,
		Limit:    taxLimit,
	})
	if err != nil {
		return reportError("taxonomy analytics", err)
	}

	summary := insights.SummarizeTaxonomies(resp)
	if summary.HasData {
		fmt.Println(headerStyle.Render(fmt.Sprintf(
			"%s taxonomies analyzed — %s uses, avg match %s, avg success %s",
			insights.FormatCount(resp.TotalAnalyzed),
			insights.FormatCount(summary.TotalUsage),
			insights.Percent1(summary.AvgMatchScore),
			insights.RatePercent1(summary.AvgSuccessRate),
		)))
	} else {
		fmt.Println(infoStyle.Render("No effectiveness data yet"))
	}
	fmt.Println()

	fmt.Println(headerStyle.Render("Most used"))
	for _, t := range resp.MostUsed {
		fmt.Printf("  %-24s %8s uses  avg match %s\n",
			t.Name,
			insights.FormatCount(t.UsageCount),
			insights.Percent1(t.AvgMatchScore),
		)
	}
	fmt.Println()

	fmt.Println(headerStyle.Render("Most effective"))
	for _, t := range resp.MostEffective {
		_, lvl := insights.MatchQuality(t.AvgMatchScore)
		fmt.Printf("  %-24s %s  success %s  (%d matched)\n",
			t.Name,
			levelStyle(lvl).Render(insights.Percent1(t.AvgMatchScore)),
			insights.RatePercent1(t.SuccessRate),
			t.MatchedCandidates,
		)
	}

	logger.Info("taxonomy report rendered", "analyzed", resp.TotalAnalyzed)
	return nil
}

func runFunnel(cmd *cobra.Command, args []string) error {
	resp, err := api.HiringFunnel(context.Background(), client.DateRange{Start: startDate, End: endDate})
	if err != nil {
		return reportError("hiring funnel", err)
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("%s resumes in pipeline", insights.FormatCount(resp.TotalResumes))))
	fmt.Println()

	for i, sc := range insights.FunnelConversions(resp.Stages) {
		style := levelStyle(insights.ConversionLevel(sc.Conversion))
		line := fmt.Sprintf("  %-26s %8s  %7s",
			insights.HumanizeKey(sc.Stage.Name),
			insights.FormatCount(sc.Stage.Count),
			style.Render(insights.RatePercent1(sc.Conversion)),
		)
		if i > 0 {
			line += infoStyle.Render(fmt.Sprintf("   -%s drop-off", insights.RatePercent1(sc.DropOff)))
		}
		fmt.Println(line)
	}

	fmt.Println()
	fmt.Println(headerStyle.Render(fmt.Sprintf("Overall hire rate: %s", insights.RatePercent1(resp.OverallHireRate))))

	logger.Info("funnel report rendered", "stages", len(resp.Stages))
	return nil
}

func runMetrics(cmd *cobra.Command, args []string) error {
	resp, err := api.KeyMetrics(context.Background(), client.DateRange{Start: startDate, End: endDate})
	if err != nil {
		return reportError("key metrics", err)
	}

	tth := resp.TimeToHire
	tthStyle := levelStyle(insights.TimeToHireLevel(tth.MeanDays))
	fmt.Println(headerStyle.Render("Time to hire"))
	fmt.Printf("  mean %s  median %s  p25 %s  p75 %s  range %s – %s\n",
		tthStyle.Render(insights.Days1(tth.MeanDays)),
		insights.Days1(tth.MedianDays),
		insights.Days1(tth.P25Days),
		insights.Days1(tth.P75Days),
		insights.Days1(tth.MinDays),
		insights.Days1(tth.MaxDays),
	)
	fmt.Println()

	res := resp.Resumes
	fmt.Println(headerStyle.Render("Resumes"))
	fmt.Printf("  total %s  this month %s  this week %s  per day %.1f\n",
		insights.FormatCount(res.Total),
		insights.FormatCount(res.ThisMonth),
		insights.FormatCount(res.ThisWeek),
		res.PerDay,
	)
	fmt.Println()

	mr := resp.MatchRates
	fmt.Println(headerStyle.Render("Match rates"))
	fmt.Printf("  overall %s  high %s  medium %s  low %s  avg confidence %s\n",
		insights.RatePercent1(mr.OverallRate),
		insights.FormatCount(mr.HighConfidence),
		insights.FormatCount(mr.MediumConfidence),
		insights.FormatCount(mr.LowConfidence),
		insights.RatePercent1(mr.AvgConfidence),
	)

	logger.Info("metrics report rendered", "total_resumes", res.Total)
	return nil
}
