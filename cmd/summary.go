package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"usagemark/internal/cli"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Terminal usage summary for the selected period",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	records, problems, err := loadRecords(cfg)
	if err != nil {
		return err
	}
	reportProblems(problems)

	if len(records) == 0 {
		fmt.Println("\n  No usage report files found.")
		fmt.Println("  Point usagemark at data with --file or --data-dir.")
		return nil
	}

	res := processNow(records, cfg)
	s := res.Summary

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("USAGE  %s", res.Period)))
	fmt.Println()

	rows := [][]string{
		{"Total Tokens", cli.FormatTokens(s.TotalTokens)},
		{"Input Tokens", cli.FormatTokens(s.TotalInputTokens)},
		{"Output Tokens", cli.FormatTokens(s.TotalOutputTokens)},
		{"Cache Creation", cli.FormatTokens(s.TotalCacheCreation)},
		{"Cache Read", cli.FormatTokens(s.TotalCacheRead)},
		{"---"},
		{"Total Cost", cli.FormatCost(s.TotalCost)},
		{"Cost/day", cli.FormatCost(s.DailyAverage.Cost)},
		{"Tokens/day", cli.FormatTokens(s.DailyAverage.Tokens)},
		{"Days", fmt.Sprintf("%d", s.PeriodDays)},
	}

	if top, ok := res.TopModel(); ok {
		rows = append(rows, []string{"---"})
		rows = append(rows, []string{"Top Model", fmt.Sprintf("%s (%s)", top.ShortName, cli.FormatShare(top.Percentage))})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	if len(res.DailyUsage) > 1 {
		values := make([]float64, len(res.DailyUsage))
		for i, d := range res.DailyUsage {
			// newest-first in the result; sparkline reads left to right
			values[len(res.DailyUsage)-1-i] = float64(d.Tokens)
		}
		fmt.Printf("\n  %s %s\n", cli.Muted("daily"), cli.RenderSparkline(values))
	}

	if res.Estimated && len(res.Models) > 0 {
		fmt.Println(cli.Muted("\n  Model figures are estimated from the cost ratio for limited periods."))
	}

	return nil
}
