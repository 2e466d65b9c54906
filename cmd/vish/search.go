// ABOUTME: CLI command for searching the food catalog.
// ABOUTME: Tokenized text query with filters and pagination flags.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/vishlabs/vish/internal/catalog"
	"github.com/vishlabs/vish/internal/models"
	"github.com/vishlabs/vish/internal/search"
)

var (
	searchPage     int
	searchPageSize int
	searchCategory string
	searchMinScore int
	searchMaxScore int
	searchTags     []string
	searchNoAllerg []string
	searchMinEco   int
)

var searchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Search the food catalog",
	Long: `Search the food catalog with a tokenized text query.

Every word of the query must match somewhere in an entry's name, brand,
category, ingredients, or dietary tags. An empty query lists everything.

FILTERS:

  --category          Exact category match
  --min-score         Minimum Vish Score (inclusive)
  --max-score         Maximum Vish Score (inclusive)
  --tag               Keep entries with at least one of these dietary tags
  --exclude-allergen  Drop entries containing any of these allergens
  --min-eco           Minimum environmental score

EXAMPLES:

  vish search quinoa bowl               # Text search
  vish search --category Snacks         # All snacks
  vish search chips --min-score 60      # Decent-scoring chips
  vish search --tag vegan --exclude-allergen "tree nuts"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		filters := &search.Filters{
			Category:         searchCategory,
			DietaryTags:      searchTags,
			ExcludeAllergens: searchNoAllerg,
		}
		if cmd.Flags().Changed("min-score") {
			filters.MinScore = &searchMinScore
		}
		if cmd.Flags().Changed("max-score") {
			filters.MaxScore = &searchMaxScore
		}
		if cmd.Flags().Changed("min-eco") {
			filters.MinEnvironmental = &searchMinEco
		}

		engine := search.New(catalog.Seeded())
		result := engine.Search(strings.Join(args, " "), searchPage, searchPageSize, filters)

		if result.Total == 0 {
			fmt.Println("No matching foods found.")
			return nil
		}

		for _, item := range result.Items {
			printFoodItem(&item)
		}

		faint := color.New(color.Faint)
		faint.Printf("%d results, page %d", result.Total, result.Page)
		if result.HasMore {
			faint.Printf(" (more available, use --page %d)", result.Page+1)
		}
		fmt.Println()
		return nil
	},
}

func printFoodItem(item *models.FoodItem) {
	faint := color.New(color.Faint)
	fmt.Printf("%s %s %s %s  %s\n",
		scoreColored(item.VishScore),
		gradeColored(item.Grade()),
		padRight(item.Name, 32),
		faint.Sprint(item.Brand),
		faint.Sprint(item.Category))
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	searchCmd.Flags().IntVar(&searchPage, "page", 1, "page number")
	searchCmd.Flags().IntVar(&searchPageSize, "page-size", 10, "results per page")
	searchCmd.Flags().StringVar(&searchCategory, "category", "", "filter by category")
	searchCmd.Flags().IntVar(&searchMinScore, "min-score", 0, "minimum Vish Score")
	searchCmd.Flags().IntVar(&searchMaxScore, "max-score", 100, "maximum Vish Score")
	searchCmd.Flags().StringSliceVar(&searchTags, "tag", nil, "dietary tag filter (any of)")
	searchCmd.Flags().StringSliceVar(&searchNoAllerg, "exclude-allergen", nil, "exclude entries with these allergens")
	searchCmd.Flags().IntVar(&searchMinEco, "min-eco", 0, "minimum environmental score")
	rootCmd.AddCommand(searchCmd)
}
