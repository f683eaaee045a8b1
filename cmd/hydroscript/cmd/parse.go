package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hyperknf/HydroScript/internal/ast"
	"github.com/hyperknf/HydroScript/internal/errors"
	"github.com/hyperknf/HydroScript/internal/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Print the syntax tree of a file",
	Long: `Parses a HydroScript file and prints its syntax tree.

The text format prints the tree back as source with every operator
grouped explicitly. The json and yaml formats print the full tree.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	startTime := time.Now()
	path := args[0]

	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	program, err := parser.ParseSourceWithOptions(path, string(source), parserOptions(cfg))
	duration := formatDuration(time.Since(startTime))
	if err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), errors.NewErrorReporter(path, string(source)).Report(err))
		fmt.Fprintln(cmd.ErrOrStderr(), color.RedString("Parsing failed after %s", duration))
		return errReported
	}

	if err := writeTree(cmd.OutOrStdout(), cfg.Output.Format, program); err != nil {
		return err
	}

	fmt.Fprintln(cmd.ErrOrStderr(), color.GreenString("Successfully parsed %s in %s", path, duration))
	return nil
}

func writeTree(w io.Writer, format string, program *ast.Program) error {
	if format == "text" {
		_, err := fmt.Fprint(w, program.String())
		return err
	}
	return encode(w, format, ast.Dump(program))
}
