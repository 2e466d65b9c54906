// ABOUTME: CLI command for scoring a home recipe without the AI provider.
// ABOUTME: Reads a YAML or JSON recipe file and runs the local analysis path.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/vishlabs/vish/internal/recipe"
	"gopkg.in/yaml.v3"
)

var recipeNoSave bool

var recipeCmd = &cobra.Command{
	Use:   "recipe <file>",
	Short: "Score a home recipe",
	Long: `Score a home recipe from a YAML or JSON file, without the AI provider.

The per-serving nutrition is summed from the ingredients and the result is
validated exactly like a scanned label, so recipe records are comparable
with AI-derived ones in history and statistics.

FILE FORMAT (YAML shown):

  name: Veggie Chili
  servings: 4
  ingredients:
    - name: kidney beans
      calories: 420
      protein: 28
      fiber: 22
    - name: crushed tomatoes
      calories: 160
      sugars: 18
      sodium_mg: 520

EXAMPLES:

  vish recipe chili.yaml           # Score and save
  vish recipe chili.yaml --no-save # Print without saving`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read recipe: %w", err)
		}

		var r recipe.Recipe
		if strings.HasSuffix(args[0], ".json") {
			err = json.Unmarshal(data, &r)
		} else {
			err = yaml.Unmarshal(data, &r)
		}
		if err != nil {
			return fmt.Errorf("failed to parse recipe: %w", err)
		}
		if r.Name == "" {
			return fmt.Errorf("recipe has no name")
		}

		result := recipe.Analyze(r)
		printResult(result)

		if recipeNoSave {
			return nil
		}

		hist, closeStore, err := openHistory()
		if err != nil {
			return err
		}
		defer closeStore()

		rec, err := hist.Save(r.Name, *result, "")
		if err != nil {
			return fmt.Errorf("failed to save analysis: %w", err)
		}
		color.Green("✓ Saved analysis %s", rec.ID)
		return nil
	},
}

func init() {
	recipeCmd.Flags().BoolVar(&recipeNoSave, "no-save", false, "print the analysis without saving it")
	rootCmd.AddCommand(recipeCmd)
}
