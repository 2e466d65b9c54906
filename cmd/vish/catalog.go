// ABOUTME: CLI commands for the read-only catalog views.
// ABOUTME: popular, healthy, eco, category, origin, mood, and barcode lookup.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vishlabs/vish/internal/catalog"
	"github.com/vishlabs/vish/internal/models"
)

var catalogLimit int

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse catalog views",
	Long: `Browse derived views of the food catalog.

All views are projections of the same canonical entry set.

EXAMPLES:

  vish catalog popular              # Sorted by consumer score
  vish catalog healthy              # Vish Score 70+, best first
  vish catalog eco                  # Environmental score 70+, best first
  vish catalog mood                 # Ranked by mood score
  vish catalog category Snacks      # Entries in a category
  vish catalog origin Japan         # Entries from an origin
  vish catalog barcode 0786936224306`,
}

var catalogPopularCmd = &cobra.Command{
	Use:   "popular",
	Short: "Top consumer-rated entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printItems(catalog.Seeded().Popular(catalogLimit))
	},
}

var catalogHealthyCmd = &cobra.Command{
	Use:   "healthy",
	Short: "Entries with Vish Score 70 and up",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printItems(catalog.Seeded().Healthy(catalogLimit))
	},
}

var catalogEcoCmd = &cobra.Command{
	Use:   "eco",
	Short: "Environmentally friendly entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printItems(catalog.Seeded().EcoFriendly(70, catalogLimit))
	},
}

var catalogMoodCmd = &cobra.Command{
	Use:   "mood",
	Short: "Entries ranked by mood score",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printItems(catalog.Seeded().MoodRanking(catalogLimit))
	},
}

var catalogCategoryCmd = &cobra.Command{
	Use:   "category <name>",
	Short: "Entries in a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printItems(catalog.Seeded().ByCategory(args[0]))
	},
}

var catalogOriginCmd = &cobra.Command{
	Use:   "origin <name>",
	Short: "Entries from an origin",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printItems(catalog.Seeded().ByOrigin(args[0]))
	},
}

var catalogTagCmd = &cobra.Command{
	Use:   "tag <dietary-tag>",
	Short: "Entries carrying a dietary tag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printItems(catalog.Seeded().ByDietaryTag(args[0]))
	},
}

var catalogBarcodeCmd = &cobra.Command{
	Use:   "barcode <code>",
	Short: "Exact barcode lookup",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		item, ok := catalog.Seeded().ByBarcode(args[0])
		if !ok {
			fmt.Println("No entry with that barcode.")
			return nil
		}
		printFoodItem(&item)
		fmt.Printf("  Health %d  Taste %d  Consumer %d  Environmental %d\n",
			item.HealthScore, item.TasteScore, item.ConsumerScore, item.EnvironmentalScore)
		if len(item.Allergens) > 0 {
			fmt.Printf("  Allergens: %v\n", item.Allergens)
		}
		return nil
	},
}

func printItems(items []models.FoodItem) error {
	if len(items) == 0 {
		fmt.Println("No entries found.")
		return nil
	}
	for i := range items {
		printFoodItem(&items[i])
	}
	return nil
}

func init() {
	catalogCmd.PersistentFlags().IntVarP(&catalogLimit, "limit", "n", 10, "max number of results")
	catalogCmd.AddCommand(catalogPopularCmd, catalogHealthyCmd, catalogEcoCmd,
		catalogMoodCmd, catalogCategoryCmd, catalogOriginCmd, catalogTagCmd, catalogBarcodeCmd)
	rootCmd.AddCommand(catalogCmd)
}
