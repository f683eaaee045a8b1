package cmd

import (
	"fmt"
	"os/user"

	"github.com/spf13/cobra"

	"github.com/hyperknf/HydroScript/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Parse statements interactively",
	Args:  cobra.NoArgs,
	RunE:  runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	name := "there"
	if currentUser, err := user.Current(); err == nil {
		name = currentUser.Username
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Welcome to the HydroScript REPL, %s!\n", name)
	repl.Start(cmd.InOrStdin(), cmd.OutOrStdout(), parserOptions(cfg))
	return nil
}
