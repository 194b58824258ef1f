package cmd

import (
	"fmt"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"usagemark/internal/cli"
	"usagemark/internal/config"
	"usagemark/internal/model"
	"usagemark/internal/pipeline"
	"usagemark/internal/render"
)

var (
	flagRenderMarkdown bool
	flagGraph          bool
)

var markdownCmd = &cobra.Command{
	Use:   "markdown",
	Short: "Print the Markdown fragment to stdout",
	RunE:  runMarkdown,
}

func init() {
	markdownCmd.Flags().BoolVar(&flagRenderMarkdown, "render", false, "Render the fragment for the terminal instead of printing raw Markdown")
	markdownCmd.Flags().BoolVar(&flagGraph, "graph", false, "Append an ascii chart of daily tokens")
	rootCmd.AddCommand(markdownCmd)
}

func runMarkdown(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	records, problems, err := loadRecords(cfg)
	if err != nil {
		return err
	}
	reportProblems(problems)

	now := time.Now()
	fragment := buildFragment(cfg, records, now)

	if flagGraph {
		if graph := dailyGraph(processAt(records, cfg, now)); graph != "" {
			fragment += "\n```\n" + graph + "\n```\n"
		}
	}

	if !flagRenderMarkdown {
		fmt.Print(fragment)
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		// No styled output available; raw markdown is still useful.
		fmt.Print(fragment)
		return nil
	}
	out, err := renderer.Render(fragment)
	if err != nil {
		fmt.Print(fragment)
		return nil
	}
	fmt.Print(out)
	return nil
}

// dailyGraph plots daily tokens oldest to newest, or "" when there is not
// enough data to chart.
func dailyGraph(res model.ProcessedResult) string {
	daily := res.DailyUsage
	if len(daily) < 2 {
		return ""
	}
	data := make([]float64, len(daily))
	for i, d := range daily {
		data[len(daily)-1-i] = float64(d.Tokens)
	}
	return asciigraph.Plot(data,
		asciigraph.Height(8),
		asciigraph.Width(72),
		asciigraph.Caption("tokens per day"),
	)
}

// buildFragment derives the processed result and renders the Markdown
// fragment with the configured locale.
func buildFragment(cfg config.Config, records []model.UsageRecord, now time.Time) string {
	period := activePeriod(cfg)
	res := pipeline.Process(records, period, now, cfg.General.MaxDailyRows)

	dateRange := ""
	if start, end, limited := pipeline.PeriodRange(period, now); limited {
		dateRange = cli.FormatDateRange(start, end)
	}

	return render.Markdown(res, render.MarkdownOptions{
		Labels:      render.ForLocale(cfg.General.Locale),
		DateRange:   dateRange,
		GeneratedAt: now,
	})
}
