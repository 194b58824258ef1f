// Package cmd implements the usagemark command-line interface.
package cmd

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"usagemark/internal/config"
	"usagemark/internal/model"
	"usagemark/internal/pipeline"
	"usagemark/internal/source"
	"usagemark/internal/store"
)

var (
	flagPeriod  string
	flagFiles   []string
	flagDataDir string
	flagNoCache bool
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "usagemark",
	Short: "Render usage metering data as Markdown and an SVG badge",
	Long: "usagemark merges usage report files, filters them to a period, " +
		"and renders the result as a Markdown fragment and an SVG badge " +
		"spliced into a host document.",
	RunE: runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagPeriod, "period", "p", "", "Period: day, week, month, all (default from config)")
	rootCmd.PersistentFlags().StringArrayVarP(&flagFiles, "file", "f", nil, "Usage report file (repeatable)")
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Directory scanned for usage report JSON files")
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "Skip the SQLite cache, re-decode everything")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// loadConfig reads the config file, warning rather than failing on parse
// errors so a broken config never takes the CLI down.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "  config: %v (using defaults)\n", err)
	}
	return cfg
}

// activePeriod resolves the period from the flag, then the config. The
// value is passed through as-is: unrecognized tags deliberately behave as
// "all" further down the pipeline.
func activePeriod(cfg config.Config) model.Period {
	if flagPeriod != "" {
		return model.Period(flagPeriod)
	}
	if cfg.General.Period != "" {
		return model.Period(cfg.General.Period)
	}
	return model.PeriodAll
}

// resolvePaths collects the source files: explicit --file flags plus a scan
// of the data directory (flag first, config second).
func resolvePaths(cfg config.Config) ([]string, error) {
	seen := make(map[string]struct{})
	var paths []string
	add := func(p string) {
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		paths = append(paths, p)
	}

	for _, f := range flagFiles {
		add(f)
	}

	dataDir := flagDataDir
	if dataDir == "" {
		dataDir = cfg.General.DataDir
	}
	if dataDir != "" {
		found, err := source.ScanDir(dataDir)
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", dataDir, err)
		}
		for _, f := range found {
			add(f)
		}
	}

	sort.Strings(paths)
	return paths, nil
}

// loadRecords is the shared data loading path used by all commands.
// Uses the SQLite cache when available for fast subsequent runs.
func loadRecords(cfg config.Config) ([]model.UsageRecord, []string, error) {
	paths, err := resolvePaths(cfg)
	if err != nil {
		return nil, nil, err
	}
	if len(paths) == 0 {
		return nil, nil, nil
	}

	progressFn := func(current, total int) {
		if flagQuiet {
			return
		}
		if current%50 == 0 || current == total {
			fmt.Fprintf(os.Stderr, "\r  Decoding [%d/%d]", current, total)
		}
	}

	if !flagNoCache {
		cache, err := store.Open(pipeline.CachePath())
		if err != nil {
			if !flagQuiet {
				fmt.Fprintf(os.Stderr, "  Cache unavailable, doing full decode\n")
			}
		} else {
			defer cache.Close()

			cr, err := pipeline.LoadWithCache(paths, cache, progressFn)
			if err != nil {
				if !flagQuiet {
					fmt.Fprintf(os.Stderr, "\n  Cache error, falling back to full decode\n")
				}
			} else {
				if !flagQuiet && cr.TotalFiles > 0 {
					fmt.Fprintf(os.Stderr, "\r  Loaded %d records (%d cached, %d decoded)    \n",
						cr.Loaded, cr.CacheHits, cr.Redecoded)
				}
				return cr.Records, cr.Problems, nil
			}
		}
	}

	result := pipeline.Load(paths, progressFn)
	if !flagQuiet && result.TotalFiles > 0 {
		fmt.Fprintf(os.Stderr, "\r  Decoded %d of %d files    \n", result.Loaded, result.TotalFiles)
	}
	return result.Records, result.Problems, nil
}

// processAt runs the derivation pipeline against a reference time.
func processAt(records []model.UsageRecord, cfg config.Config, now time.Time) model.ProcessedResult {
	return pipeline.Process(records, activePeriod(cfg), now, cfg.General.MaxDailyRows)
}

// processNow runs the derivation pipeline against the current wall clock.
func processNow(records []model.UsageRecord, cfg config.Config) model.ProcessedResult {
	return processAt(records, cfg, time.Now())
}

func reportProblems(problems []string) {
	if flagQuiet {
		return
	}
	for _, p := range problems {
		fmt.Fprintf(os.Stderr, "  skipped: %s\n", p)
	}
}
