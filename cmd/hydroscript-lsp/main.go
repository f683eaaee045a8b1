// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"github.com/hyperknf/HydroScript/internal/config"
	"github.com/hyperknf/HydroScript/internal/lsp"
	"github.com/hyperknf/HydroScript/internal/parser"
)

const lsName = "hydroscript" // Name identifier for the language server

var (
	version = "0.1.0"        // Server version
	cfgFile string           // --config
	handler protocol.Handler // Protocol handler instance (wired up below)
)

var rootCmd = &cobra.Command{
	Use:     "hydroscript-lsp",
	Short:   "HydroScript language server over stdio",
	Version: version,
	Args:    cobra.NoArgs,
	RunE:    run,
}

func init() {
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := config.Resolve(cfgFile, wd)
	if err != nil {
		return err
	}

	// Configure logging verbosity from the config (nil = log to stderr)
	commonlog.Configure(cfg.LSP.LogLevel, nil)

	hydroHandler := lsp.NewHydroHandler(parser.Options{MaxDepth: cfg.Parser.MaxDepth})

	// Wire up the handler with specific LSP method implementations
	handler = protocol.Handler{
		Initialize:                     hydroHandler.Initialize,
		Initialized:                    hydroHandler.Initialized,
		Shutdown:                       hydroHandler.Shutdown,
		SetTrace:                       hydroHandler.SetTrace,
		TextDocumentDidOpen:            hydroHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           hydroHandler.TextDocumentDidClose,
		TextDocumentDidChange:          hydroHandler.TextDocumentDidChange,
		TextDocumentCompletion:         hydroHandler.TextDocumentCompletion,
		TextDocumentSemanticTokensFull: hydroHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Println("Starting HydroScript LSP server...")

	// Editors talk to the server over standard input/output
	if err := s.RunStdio(); err != nil {
		log.Println("Error starting HydroScript LSP server:", err)
		return err
	}
	return nil
}
