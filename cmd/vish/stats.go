// ABOUTME: CLI command for aggregate analysis statistics.
// ABOUTME: Prints averages, healthy choices, trend, category and monthly breakdowns.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/vishlabs/vish/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Aggregate statistics over past analyses",
	Long: `Compute aggregate statistics over the analysis history.

Shows score averages, the count of healthy choices (Vish Score 70+), an
improvement trend comparing recent analyses against older ones, the
category distribution, and per-month counts for the last six months.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		hist, closeStore, err := openHistory()
		if err != nil {
			return err
		}
		defer closeStore()

		records, err := hist.All()
		if err != nil {
			return err
		}

		s := stats.Compute(records, time.Now())

		bold := color.New(color.Bold)
		bold.Printf("Analyses: %d\n", s.TotalAnalyses)
		if s.TotalAnalyses == 0 {
			return nil
		}

		fmt.Printf("Average Vish Score: %s  (health %d, taste %d, consumer %d)\n",
			scoreColored(s.AvgVishScore), s.AvgHealthScore, s.AvgTasteScore, s.AvgConsumerScore)
		fmt.Printf("Healthy choices: %d\n", s.HealthyChoices)

		switch {
		case s.Trend > 0:
			color.Green("Trend: improving (+%d)", s.Trend)
		case s.Trend < 0:
			color.Red("Trend: declining (%d)", s.Trend)
		default:
			fmt.Println("Trend: steady")
		}

		fmt.Println("\nCategories:")
		for _, c := range s.Categories {
			fmt.Printf("  %-10s %d\n", c.Category, c.Count)
		}

		fmt.Println("\nLast six months:")
		for _, m := range s.Monthly {
			fmt.Printf("  %-9s %s\n", m.Month, strings.Repeat("█", m.Count))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
