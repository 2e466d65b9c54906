// ABOUTME: CLI command for analyzing a nutrition label photo.
// ABOUTME: Sends the image to the Vertex AI provider, validates, prints, and saves.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/vishlabs/vish/internal/analyzer"
	"github.com/vishlabs/vish/internal/models"
	"github.com/vishlabs/vish/internal/score"
)

var (
	scanContext string
	scanName    string
	scanNote    string
	scanNoSave  bool
)

var scanCmd = &cobra.Command{
	Use:   "scan <image>",
	Short: "Analyze a nutrition label photo",
	Long: `Analyze a photo of a packaged food's nutrition label.

The image is sent to the configured Vertex AI model, which reads the label
and scores the product. Partial model output is filled with neutral
defaults; only a response with no structured payload at all fails.

SETUP:

  Set google.project_id in ~/.config/vish/config.json, or export
  GOOGLE_PROJECT_ID. Credentials follow the usual Google Cloud rules.

EXAMPLES:

  vish scan label.jpg                         # Analyze and save
  vish scan label.jpg --context "low sodium"  # Add personal health context
  vish scan label.jpg --name "Trail Mix"      # Override the product name
  vish scan label.jpg --no-save               # Print without saving`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		image, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read image: %w", err)
		}

		provider, err := analyzer.NewGoogleProvider(cmd.Context(), cfg.GetGoogle())
		if err != nil {
			return err
		}
		defer func() { _ = provider.Close() }()

		result, err := analyzer.AnalyzeImage(cmd.Context(), provider, image, scanContext)
		var malformed *score.MalformedAnalysisError
		if errors.As(err, &malformed) {
			return fmt.Errorf("the model could not read this label - please retry with a clearer image")
		}
		if err != nil {
			return err
		}

		printResult(result)

		if scanNoSave {
			return nil
		}

		name := scanName
		if name == "" {
			name = result.ProductName
		}

		hist, closeStore, err := openHistory()
		if err != nil {
			return err
		}
		defer closeStore()

		rec, err := hist.Save(name, *result, args[0])
		if err != nil {
			return fmt.Errorf("failed to save analysis: %w", err)
		}
		if scanNote != "" {
			if _, err := hist.UpdateNote(rec.ID, scanNote); err != nil {
				return fmt.Errorf("failed to set note: %w", err)
			}
		}
		color.Green("✓ Saved analysis %s", rec.ID)
		return nil
	},
}

func printResult(r *models.AnalysisResult) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	bold.Printf("%s\n", r.ProductName)
	fmt.Printf("Vish Score: %s  Grade: %s\n", scoreColored(r.Overall.VishScore), gradeColored(r.Overall.Grade))
	fmt.Printf("  Health %d  Taste %d  Consumer %d\n",
		r.Health.Score, r.Taste.Score, r.Consumer.Score)
	faint.Printf("  %s\n", r.Overall.Summary)

	if len(r.Health.Warnings) > 0 {
		color.Yellow("Warnings:")
		for _, w := range r.Health.Warnings {
			fmt.Printf("  - %s\n", w)
		}
	}
	if len(r.Health.Allergens) > 0 {
		color.Red("Allergens: %v", r.Health.Allergens)
	}
}

func scoreColored(s int) string {
	switch {
	case s >= 70:
		return color.GreenString("%d", s)
	case s >= 50:
		return color.YellowString("%d", s)
	default:
		return color.RedString("%d", s)
	}
}

func gradeColored(g string) string {
	switch g {
	case "A", "B":
		return color.GreenString(g)
	case "C", "D":
		return color.YellowString(g)
	default:
		return color.RedString(g)
	}
}

func init() {
	scanCmd.Flags().StringVar(&scanContext, "context", "", "personal health context for the analysis")
	scanCmd.Flags().StringVar(&scanName, "name", "", "override the detected product name")
	scanCmd.Flags().StringVar(&scanNote, "note", "", "attach a note to the saved record")
	scanCmd.Flags().BoolVar(&scanNoSave, "no-save", false, "print the analysis without saving it")
	rootCmd.AddCommand(scanCmd)
}
