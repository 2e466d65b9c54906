// ABOUTME: Local recipe analysis: builds an analysis payload without the AI provider.
// ABOUTME: Feeds the same Score Aggregator as provider output, so records stay comparable.
package recipe

import (
	"fmt"
	"strings"

	"github.com/vishlabs/vish/internal/models"
	"github.com/vishlabs/vish/internal/score"
)

// Ingredient is one recipe component with its nutrition contribution.
type Ingredient struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sugars   float64 `json:"sugars"`
	SodiumMg float64 `json:"sodium_mg"`
}

// Recipe is a user-entered dish to score locally.
type Recipe struct {
	Name        string       `json:"name"`
	Servings    int          `json:"servings"`
	Ingredients []Ingredient `json:"ingredients"`
}

// Analyze sums the per-serving nutrition, derives a heuristic health score,
// and runs the result through the Score Aggregator so a recipe record has
// the same defaulted, clamped shape as an AI-derived one.
func Analyze(r Recipe) *models.AnalysisResult {
	servings := r.Servings
	if servings < 1 {
		servings = 1
	}

	var cal, protein, carbs, fat, fiber, sugars, sodium float64
	names := make([]string, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		cal += ing.Calories
		protein += ing.Protein
		carbs += ing.Carbs
		fat += ing.Fat
		fiber += ing.Fiber
		sugars += ing.Sugars
		sodium += ing.SodiumMg
		names = append(names, ing.Name)
	}

	div := float64(servings)
	cal, protein, carbs, fat = cal/div, protein/div, carbs/div, fat/div
	fiber, sugars, sodium = fiber/div, sugars/div, sodium/div

	payload := map[string]any{
		"productName": r.Name,
		"nutrition": map[string]any{
			"calories":      cal,
			"protein":       map[string]any{"amount": protein, "unit": "g"},
			"carbohydrates": map[string]any{"amount": carbs, "unit": "g"},
			"fat":           map[string]any{"amount": fat, "unit": "g"},
			"fiber":         map[string]any{"amount": fiber, "unit": "g"},
			"sugars":        map[string]any{"amount": sugars, "unit": "g"},
			"sodium":        map[string]any{"amount": sodium, "unit": "mg"},
		},
		"health": map[string]any{
			"score":    float64(healthScore(cal, protein, fiber, sugars, sodium)),
			"warnings": warnings(sugars, sodium),
		},
		"overall": map[string]any{
			"summary": fmt.Sprintf("Home recipe with %s, scored per serving.", strings.Join(names, ", ")),
		},
	}

	return score.Validate(payload)
}

// healthScore starts from the neutral default and moves with the
// per-serving nutrition: protein and fiber up, sugar, sodium, and calorie
// load down.
func healthScore(cal, protein, fiber, sugars, sodium float64) int {
	s := score.DefaultScore

	s += int(protein / 2)
	s += int(fiber * 2)
	s -= int(sugars / 2)
	s -= int(sodium / 100)
	if cal > 700 {
		s -= int((cal - 700) / 50)
	}

	return models.ClampScore(s)
}

func warnings(sugars, sodium float64) []any {
	var out []any
	if sugars > 20 {
		out = append(out, "High in added sugars per serving")
	}
	if sodium > 600 {
		out = append(out, "High sodium per serving")
	}
	return out
}
