package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hyperknf/HydroScript/internal/errors"
	"github.com/hyperknf/HydroScript/internal/parser"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Report syntax errors",
	Long: `Parses every given file and reports the first syntax error of each.

Exits with a non-zero status when any file fails to parse.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	startTime := time.Now()
	opts := parserOptions(cfg)
	failed := 0

	for _, path := range args {
		source, err := os.ReadFile(path)
		if err != nil {
			printError(cmd, fmt.Errorf("failed to read file: %w", err))
			failed++
			continue
		}

		if _, err := parser.ParseSourceWithOptions(path, string(source), opts); err != nil {
			fmt.Fprint(cmd.ErrOrStderr(), errors.NewErrorReporter(path, string(source)).Report(err))
			failed++
			continue
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", color.GreenString("ok"), path)
	}

	duration := formatDuration(time.Since(startTime))
	if failed > 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), color.RedString("%d of %d files failed after %s", failed, len(args), duration))
		return errReported
	}

	fmt.Fprintln(cmd.ErrOrStderr(), color.GreenString("Checked %d files in %s", len(args), duration))
	return nil
}
