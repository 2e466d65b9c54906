// ABOUTME: Tests for local recipe scoring.
// ABOUTME: Results must come out in the same defaulted shape as provider output.
package recipe

import (
	"strings"
	"testing"

	"github.com/vishlabs/vish/internal/score"
)

func TestAnalyzeLentilSoup(t *testing.T) {
	r := Recipe{
		Name:     "Lentil Soup",
		Servings: 2,
		Ingredients: []Ingredient{
			{Name: "Lentils", Calories: 340, Protein: 24, Carbs: 60, Fat: 1, Fiber: 16, Sugars: 2, SodiumMg: 10},
			{Name: "Broth", Calories: 20, Protein: 2, Carbs: 2, SodiumMg: 800},
		},
	}

	res := Analyze(r)

	if res.ProductName != "Lentil Soup" {
		t.Errorf("ProductName = %s, want Lentil Soup", res.ProductName)
	}

	// Per serving: 180 cal, 13g protein, 8g fiber, 1.5g sugars, 405mg sodium.
	// 50 + 6 (protein) + 16 (fiber) - 0 (sugars) - 4 (sodium) = 68.
	if res.Health.Score != 68 {
		t.Errorf("Health.Score = %d, want 68", res.Health.Score)
	}
	if len(res.Health.Warnings) != 0 {
		t.Errorf("Warnings = %v, want none", res.Health.Warnings)
	}

	// Taste and consumer fall back to the neutral default.
	if res.Taste.Score != score.DefaultScore || res.Consumer.Score != score.DefaultScore {
		t.Errorf("Taste = %d, Consumer = %d, want %d", res.Taste.Score, res.Consumer.Score, score.DefaultScore)
	}

	// round((68+50+50)/3) = 56.
	if res.Overall.VishScore != 56 {
		t.Errorf("VishScore = %d, want 56", res.Overall.VishScore)
	}
	if res.Overall.Grade != "F" {
		t.Errorf("Grade = %s, want F", res.Overall.Grade)
	}

	if res.Nutrition.Calories != 180 {
		t.Errorf("Calories = %v, want 180", res.Nutrition.Calories)
	}
	if res.Nutrition.Protein.Amount != 13 || res.Nutrition.Protein.Unit != "g" {
		t.Errorf("Protein = %+v, want 13 g", res.Nutrition.Protein)
	}
	if res.Nutrition.Sodium.Amount != 405 || res.Nutrition.Sodium.Unit != "mg" {
		t.Errorf("Sodium = %+v, want 405 mg", res.Nutrition.Sodium)
	}

	if !strings.Contains(res.Overall.Summary, "Lentils") {
		t.Errorf("Summary = %q, want ingredient names mentioned", res.Overall.Summary)
	}
}

func TestAnalyzeWarnings(t *testing.T) {
	r := Recipe{
		Name:     "Dessert Pizza",
		Servings: 1,
		Ingredients: []Ingredient{
			{Name: "Dough", Calories: 600, SodiumMg: 900},
			{Name: "Sugar Glaze", Calories: 400, Sugars: 45},
		},
	}

	res := Analyze(r)

	if len(res.Health.Warnings) != 2 {
		t.Fatalf("Warnings = %v, want sugar and sodium warnings", res.Health.Warnings)
	}
	// 50 - 22 (sugars) - 9 (sodium) - 6 (calorie overage) = 13.
	if res.Health.Score != 13 {
		t.Errorf("Health.Score = %d, want 13", res.Health.Score)
	}
}

func TestAnalyzeServingsDefault(t *testing.T) {
	r := Recipe{
		Name:        "Single Toast",
		Servings:    0,
		Ingredients: []Ingredient{{Name: "Bread", Calories: 80, Protein: 3, Fiber: 1}},
	}

	res := Analyze(r)

	// servings < 1 is treated as 1, nothing divided away.
	if res.Nutrition.Calories != 80 {
		t.Errorf("Calories = %v, want 80", res.Nutrition.Calories)
	}
	// 50 + 1 + 2 = 53.
	if res.Health.Score != 53 {
		t.Errorf("Health.Score = %d, want 53", res.Health.Score)
	}
}

func TestAnalyzeEmptyRecipe(t *testing.T) {
	res := Analyze(Recipe{Name: "Nothing", Servings: 1})

	if res.Health.Score != score.DefaultScore {
		t.Errorf("Health.Score = %d, want %d", res.Health.Score, score.DefaultScore)
	}
	if res.Overall.VishScore != score.DefaultScore {
		t.Errorf("VishScore = %d, want %d", res.Overall.VishScore, score.DefaultScore)
	}
}
