package render

import (
	"fmt"
	"strings"
	"time"

	"usagemark/internal/cli"
	"usagemark/internal/model"
)

// MarkdownOptions configures fragment rendering.
type MarkdownOptions struct {
	Labels      Labels
	DateRange   string    // preformatted window, e.g. "2026-08-01 to 2026-08-31"
	GeneratedAt time.Time // zero suppresses the updated-at line
}

// Markdown renders a processed result as a GitHub-flavored Markdown fragment:
// a summary table, a per-model breakdown, and a daily usage table. When the
// result carries estimated model figures the fragment says so; the estimate
// is never presented as exact.
func Markdown(res model.ProcessedResult, opts MarkdownOptions) string {
	l := opts.Labels
	var b strings.Builder

	fmt.Fprintf(&b, "### %s\n\n", l.Title)
	fmt.Fprintf(&b, "**%s**", l.PeriodLabel(res.Period))
	if opts.DateRange != "" {
		fmt.Fprintf(&b, " (%s)", opts.DateRange)
	}
	b.WriteString("\n\n")

	s := res.Summary
	fmt.Fprintf(&b, "| %s | %s |\n", l.Metric, l.Value)
	b.WriteString("| --- | ---: |\n")
	fmt.Fprintf(&b, "| %s | %s |\n", l.TotalTokens, cli.FormatTokens(s.TotalTokens))
	fmt.Fprintf(&b, "| %s | %s |\n", l.InputTokens, cli.FormatTokens(s.TotalInputTokens))
	fmt.Fprintf(&b, "| %s | %s |\n", l.OutputTokens, cli.FormatTokens(s.TotalOutputTokens))
	fmt.Fprintf(&b, "| %s | %s |\n", l.CacheCreation, cli.FormatTokens(s.TotalCacheCreation))
	fmt.Fprintf(&b, "| %s | %s |\n", l.CacheRead, cli.FormatTokens(s.TotalCacheRead))
	fmt.Fprintf(&b, "| %s | %s |\n", l.TotalCost, cli.FormatCost(s.TotalCost))
	fmt.Fprintf(&b, "| %s | %s / %s |\n",
		l.DailyAverage,
		cli.FormatTokens(s.DailyAverage.Tokens),
		cli.FormatCost(s.DailyAverage.Cost),
	)

	if len(res.Models) > 0 {
		fmt.Fprintf(&b, "\n#### %s\n\n", l.ByModel)
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n", l.Model, l.Cost, l.Input, l.Output, l.Share)
		b.WriteString("| --- | ---: | ---: | ---: | ---: |\n")
		for _, m := range res.Models {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
				m.ShortName,
				cli.FormatCost(m.Cost),
				cli.FormatTokens(m.InputTokens),
				cli.FormatTokens(m.OutputTokens),
				cli.FormatShare(m.Percentage),
			)
		}
	}

	if len(res.DailyUsage) > 0 {
		fmt.Fprintf(&b, "\n#### %s\n\n", l.DailyUsage)
		fmt.Fprintf(&b, "| %s | %s | %s |\n", l.Date, l.Tokens, l.Cost)
		b.WriteString("| --- | ---: | ---: |\n")
		for _, d := range res.DailyUsage {
			fmt.Fprintf(&b, "| %s | %s | %s |\n",
				d.Date,
				cli.FormatTokens(d.Tokens),
				cli.FormatCost(d.Cost),
			)
		}
	}

	if res.Estimated && len(res.Models) > 0 {
		fmt.Fprintf(&b, "\n> %s\n", l.EstimateNote)
	}

	if !opts.GeneratedAt.IsZero() {
		fmt.Fprintf(&b, "\n_%s: %s_\n",
			l.UpdatedAt,
			opts.GeneratedAt.UTC().Format("2006-01-02 15:04 MST"),
		)
	}

	return b.String()
}
