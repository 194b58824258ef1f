package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"usagemark/internal/watch"
)

var flagDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Update the document whenever source files change",
	Long: "watch runs an update, then keeps watching the usage report files " +
		"and re-updates the document and badge after each change settles.",
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&flagDebounce, "debounce", 2*time.Second, "Quiet period before reacting to a burst of changes")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	paths, err := resolvePaths(cfg)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("nothing to watch: no usage report files found")
	}

	update := func() {
		records, problems, err := loadRecords(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  update failed: %v\n", err)
			return
		}
		reportProblems(problems)

		now := time.Now()
		if err := updateDocument(cfg, records, now); err != nil {
			fmt.Fprintf(os.Stderr, "  update failed: %v\n", err)
			return
		}
		if cfg.Output.BadgeFile != "" {
			if err := writeBadgeFile(cfg, records, now); err != nil {
				fmt.Fprintf(os.Stderr, "  update failed: %v\n", err)
			}
		}
	}

	update()

	w, err := watch.New(paths, flagDebounce, update)
	if err != nil {
		return err
	}
	defer w.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Watching %d files (ctrl+c to stop)\n", len(paths))
	}

	err = w.Run(ctx)
	if ctx.Err() != nil {
		return nil
	}
	return err
}
