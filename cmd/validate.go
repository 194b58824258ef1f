package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"usagemark/internal/cli"
	"usagemark/internal/source"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file...]",
	Short: "Check usage report files for structural problems",
	Long: "validate decodes each file and reports field-level shape errors " +
		"without aggregating anything. With no arguments it checks the files " +
		"the other commands would load.",
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	cfg := loadConfig()

	paths := args
	if len(paths) == 0 {
		var err error
		paths, err = resolvePaths(cfg)
		if err != nil {
			return err
		}
	}
	if len(paths) == 0 {
		fmt.Println("  No usage report files to validate.")
		return nil
	}

	invalid := 0
	for _, path := range paths {
		errs := validateFile(path)
		if len(errs) == 0 {
			if !flagQuiet {
				fmt.Printf("  ok      %s\n", path)
			}
			continue
		}
		invalid++
		fmt.Printf("  invalid %s\n", path)
		for _, e := range errs {
			fmt.Printf("    %s\n", cli.Muted(e))
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d files invalid", invalid, len(paths))
	}
	if !flagQuiet {
		fmt.Printf("  %d files valid\n", len(paths))
	}
	return nil
}

// validateFile returns the structural problems in one file. Read and JSON
// errors are reported through the same channel as field errors.
func validateFile(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return []string{err.Error()}
	}

	var probe any
	if err := json.Unmarshal(data, &probe); err != nil {
		return []string{fmt.Sprintf("invalid JSON: %v", err)}
	}

	return source.Validate(probe).Errors
}
