package cmd

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hyperknf/HydroScript/internal/config"
	"github.com/hyperknf/HydroScript/internal/parser"
)

var (
	cfgFile string
	noColor bool
	format  string
)

// errReported marks failures whose diagnostics were already written
var errReported = stderrors.New("reported")

var rootCmd = &cobra.Command{
	Use:   "hydroscript",
	Short: "HydroScript parser toolchain",
	Long: `hydroscript parses HydroScript source files into syntax trees.

Commands:
  parse   - print the syntax tree of a file
  check   - report syntax errors in one or more files
  tokens  - print the token stream of a file
  repl    - parse statements interactively`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !stderrors.Is(err, errReported) {
		printError(rootCmd, err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./"+config.FileName+")")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "", "output format: text, json or yaml")
}

// loadConfig resolves the configuration file and applies the command-line
// overrides on top of it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := config.Resolve(cfgFile, wd)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("format") {
		cfg.Output.Format = format
	}
	if noColor {
		cfg.Output.Color = false
	}
	if !cfg.Output.Color {
		color.NoColor = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parserOptions(cfg *config.Config) parser.Options {
	return parser.Options{MaxDepth: cfg.Parser.MaxDepth}
}

func printError(cmd *cobra.Command, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "%s %v\n", color.RedString("error:"), err)
}
