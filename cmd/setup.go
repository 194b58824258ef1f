package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"usagemark/internal/config"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive configuration wizard",
	Long: "setup walks through the usagemark settings and writes " +
		"config.toml. Existing values are pre-filled.",
	RunE: runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	maxRows := strconv.Itoa(cfg.General.MaxDailyRows)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Default period").
				Description("Which window to report when no --period flag is given.").
				Options(
					huh.NewOption("All time", "all"),
					huh.NewOption("Last 30 days", "month"),
					huh.NewOption("Last 7 days", "week"),
					huh.NewOption("Today", "day"),
				).
				Value(&cfg.General.Period),
			huh.NewInput().
				Title("Data directory (optional)").
				Description("Directory scanned for usage report JSON files.").
				Value(&cfg.General.DataDir),
			huh.NewInput().
				Title("Daily rows").
				Description("Maximum rows in the daily usage table.").
				Value(&maxRows).
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil || n <= 0 {
						return fmt.Errorf("must be a positive number")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Locale").
				Options(
					huh.NewOption("English", "en"),
					huh.NewOption("日本語", "ja"),
				).
				Value(&cfg.General.Locale),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Document").
				Description("File the Markdown fragment is spliced into.").
				Value(&cfg.Output.Document).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("document path required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Badge file (optional)").
				Description("Where `update` writes the SVG badge. Leave empty to skip.").
				Value(&cfg.Output.BadgeFile),
			huh.NewInput().
				Title("Badge label").
				Value(&cfg.Badge.Label),
			huh.NewSelect[string]().
				Title("Badge value").
				Options(
					huh.NewOption("Total tokens", "tokens"),
					huh.NewOption("Total cost", "cost"),
				).
				Value(&cfg.Badge.Value),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Fprintln(os.Stderr, "  Setup canceled, nothing written.")
			return nil
		}
		return fmt.Errorf("running setup: %w", err)
	}

	cfg.General.MaxDailyRows, _ = strconv.Atoi(maxRows)

	if err := config.Save(cfg); err != nil {
		return err
	}
	fmt.Printf("  Wrote %s\n", config.ConfigPath())
	return nil
}
