package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"usagemark/internal/cli"
	"usagemark/internal/config"
	"usagemark/internal/model"
	"usagemark/internal/render"
)

var flagBadgeOut string

var badgeCmd = &cobra.Command{
	Use:   "badge",
	Short: "Render the SVG badge",
	RunE:  runBadge,
}

func init() {
	badgeCmd.Flags().StringVarP(&flagBadgeOut, "out", "o", "", "Write the badge to a file instead of stdout")
	rootCmd.AddCommand(badgeCmd)
}

func runBadge(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	records, problems, err := loadRecords(cfg)
	if err != nil {
		return err
	}
	reportProblems(problems)

	svg := buildBadge(cfg, records, time.Now())

	if flagBadgeOut == "" {
		fmt.Print(svg)
		return nil
	}
	if err := os.WriteFile(flagBadgeOut, []byte(svg), 0o644); err != nil {
		return fmt.Errorf("writing badge: %w", err)
	}
	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Wrote %s\n", flagBadgeOut)
	}
	return nil
}

// buildBadge renders the badge with the configured label, color, and value
// kind (total tokens or total cost).
func buildBadge(cfg config.Config, records []model.UsageRecord, now time.Time) string {
	res := processAt(records, cfg, now)

	value := cli.FormatTokens(res.Summary.TotalTokens)
	if cfg.Badge.Value == "cost" {
		value = cli.FormatCost(res.Summary.TotalCost)
	}

	return render.Badge(cfg.Badge.Label, value, cfg.Badge.Color)
}
