package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"usagemark/internal/config"
	"usagemark/internal/model"
	"usagemark/internal/render"
)

var flagDryRun bool

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Splice the Markdown fragment into the host document",
	Long: "update rebuilds the Markdown fragment, splices it between the " +
		"configured markers in the host document, and writes the badge file " +
		"when one is configured.",
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print the updated document instead of writing it")
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	records, problems, err := loadRecords(cfg)
	if err != nil {
		return err
	}
	reportProblems(problems)

	now := time.Now()
	if err := updateDocument(cfg, records, now); err != nil {
		return err
	}
	if cfg.Output.BadgeFile != "" && !flagDryRun {
		if err := writeBadgeFile(cfg, records, now); err != nil {
			return err
		}
	}
	return nil
}

// updateDocument splices the fragment into the configured document. Content
// outside the markers is never touched; a document without markers is a
// reported error rather than a silent append.
func updateDocument(cfg config.Config, records []model.UsageRecord, now time.Time) error {
	docPath := cfg.Output.Document

	doc, err := os.ReadFile(docPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", docPath, err)
	}

	fragment := buildFragment(cfg, records, now)

	updated, err := render.Splice(string(doc), cfg.Markers.Start, cfg.Markers.End, fragment)
	if err != nil {
		return fmt.Errorf("updating %s: %w", docPath, err)
	}

	if flagDryRun {
		fmt.Print(updated)
		return nil
	}

	if updated == string(doc) {
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  %s already up to date\n", docPath)
		}
		return nil
	}

	info, err := os.Stat(docPath)
	mode := os.FileMode(0o644)
	if err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(docPath, []byte(updated), mode); err != nil {
		return fmt.Errorf("writing %s: %w", docPath, err)
	}
	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Updated %s\n", docPath)
	}
	return nil
}

func writeBadgeFile(cfg config.Config, records []model.UsageRecord, now time.Time) error {
	svg := buildBadge(cfg, records, now)
	if err := os.WriteFile(cfg.Output.BadgeFile, []byte(svg), 0o644); err != nil {
		return fmt.Errorf("writing badge %s: %w", cfg.Output.BadgeFile, err)
	}
	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Wrote %s\n", cfg.Output.BadgeFile)
	}
	return nil
}
