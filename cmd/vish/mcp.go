// ABOUTME: CLI command to run the MCP server over stdio.
// ABOUTME: Exposes catalog search, history, and stats to MCP-compatible assistants.
package main

import (
	"github.com/spf13/cobra"
	"github.com/vishlabs/vish/internal/catalog"
	"github.com/vishlabs/vish/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol server",
	Long: `Run the MCP server over stdio.

Add to your assistant's MCP configuration:

  {
    "mcpServers": {
      "vish": { "command": "vish", "args": ["mcp"] }
    }
  }

TOOLS: search_foods, lookup_barcode, list_history, get_stats,
update_note, delete_analysis.
RESOURCES: vish://catalog, vish://recent, vish://stats.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		hist, closeStore, err := openHistory()
		if err != nil {
			return err
		}
		defer closeStore()

		server, err := mcp.NewServer(catalog.Seeded(), hist)
		if err != nil {
			return err
		}
		return server.Serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
