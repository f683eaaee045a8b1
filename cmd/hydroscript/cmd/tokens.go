package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hyperknf/HydroScript/internal/errors"
	"github.com/hyperknf/HydroScript/internal/lexer"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Print the token stream of a file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

type tokenView struct {
	Type   string `json:"type" yaml:"type"`
	Value  string `json:"value" yaml:"value"`
	Line   int    `json:"line" yaml:"line"`
	Column int    `json:"column" yaml:"column"`
}

func runTokens(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	path := args[0]
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	tokens, err := lexer.Tokenize(path, string(source))
	if err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), errors.NewErrorReporter(path, string(source)).Report(err))
		return errReported
	}

	views := make([]tokenView, 0, len(tokens))
	for _, tok := range tokens {
		views = append(views, tokenView{Type: tok.Type.String(), Value: tok.Value, Line: tok.Line, Column: tok.Column})
	}

	if cfg.Output.Format != "text" {
		return encode(cmd.OutOrStdout(), cfg.Output.Format, views)
	}

	for _, v := range views {
		fmt.Fprintf(cmd.OutOrStdout(), "%d:%d\t%-20s %s\n", v.Line, v.Column, v.Type, v.Value)
	}
	return nil
}
