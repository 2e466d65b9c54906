// ABOUTME: Root Cobra command for the vish CLI.
// ABOUTME: Loads configuration and provides the shared KV-open helper.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vishlabs/vish/internal/config"
	"github.com/vishlabs/vish/internal/history"
	"github.com/vishlabs/vish/internal/kv"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "vish",
	Short: "Food quality scoring from nutrition labels",
	Long: `Vish rates packaged foods with a composite quality score - the Vish
Score - built from three dimensions: nutrition/health, taste, and consumer
satisfaction. Scores map to letter grades A through F.

QUICK START:

  $ vish scan label.jpg                 # Analyze a nutrition label photo
  $ vish search quinoa bowl             # Search the food catalog
  $ vish history                        # See past analyses
  $ vish stats                          # Aggregate statistics and trend

CATALOG VIEWS:

  $ vish catalog popular                # Top consumer-rated foods
  $ vish catalog healthy                # Vish Score 70 and up
  $ vish catalog barcode 0786936224306  # Exact barcode lookup

DATA STORAGE:

  Analyses are kept most-recent-first, capped at 100 records. The backend
  is configurable in ~/.config/vish/config.json: "badger" (default),
  "sqlite", or "charm" for Charm Cloud sync.

MCP INTEGRATION:

  Run 'vish mcp' to start the Model Context Protocol server for use with
  MCP-compatible AI assistants.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// openKV opens the configured persistence backend. Callers must close it.
func openKV() (kv.Store, error) {
	store, err := cfg.OpenKV()
	if err != nil {
		return nil, fmt.Errorf("failed to open storage backend: %w", err)
	}
	return store, nil
}

// openHistory opens the history store plus a close function for its backend.
func openHistory() (*history.Store, func(), error) {
	store, err := openKV()
	if err != nil {
		return nil, nil, err
	}
	return history.New(store), func() { _ = store.Close() }, nil
}
