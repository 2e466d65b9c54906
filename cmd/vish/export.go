// ABOUTME: CLI commands for exporting history and trend metrics.
// ABOUTME: Supports CSV, JSON, and YAML for history; CSV for trend metrics.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/vishlabs/vish/internal/stats"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export analysis history",
	Long: `Export the analysis history in various formats.

FORMATS:

  csv    One row per analysis: date, name, four scores, grade, note
  json   Full JSON export (suitable for backup)
  yaml   Compact YAML export (human-readable)
  trend  Computed trend metrics as CSV

EXAMPLES:

  vish export csv                  # Print CSV to stdout
  vish export csv -o history.csv   # Save to file
  vish export trend -o trend.csv   # Computed statistics as CSV`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"csv", "json", "yaml", "trend"},
	RunE: func(cmd *cobra.Command, args []string) error {
		hist, closeStore, err := openHistory()
		if err != nil {
			return err
		}
		defer closeStore()

		var data []byte
		switch args[0] {
		case "csv":
			data, err = hist.ExportCSV()
		case "json":
			data, err = hist.ExportJSON()
		case "yaml":
			data, err = hist.ExportYAML()
		case "trend":
			records, rerr := hist.All()
			if rerr != nil {
				return rerr
			}
			data, err = stats.ExportCSV(stats.Compute(records, time.Now()))
		default:
			return fmt.Errorf("unknown format: %s (use csv, json, yaml, or trend)", args[0])
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
			return nil
		}
		fmt.Print(string(data))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}
