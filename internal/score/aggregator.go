// ABOUTME: Score Aggregator: validates and defaults loosely-typed analysis payloads.
// ABOUTME: The only point of contact between external provider output and the rest of the system.
package score

import (
	"github.com/vishlabs/vish/internal/models"
)

// Documented defaults for missing or mis-shaped payload fields. Partial
// payloads never fail validation; they are filled in so that an imperfect
// provider response still yields a usable, fully-populated record.
const (
	DefaultScore       = 50
	DefaultProductName = "Unknown Product"
	DefaultText        = "Not available"
	DefaultSummary     = "No summary provided"
	DefaultProfileTag  = "Neutral"
	DefaultSentiment   = "Neutral"
)

// Validate converts an arbitrarily incomplete payload into a complete
// AnalysisResult. Every missing or wrongly-shaped field is replaced by its
// documented default, every score is clamped to [0,100], and the overall
// block is recomputed so that vishScore always equals the rounded mean of
// the three component scores. Pure function of its input.
func Validate(raw map[string]any) *models.AnalysisResult {
	res := &models.AnalysisResult{
		ProductName: strField(raw, "productName", DefaultProductName),
		Nutrition:   nutritionField(raw, "nutrition"),
		Health:      healthField(raw),
		Taste:       tasteField(raw),
		Consumer:    consumerField(raw),
	}

	vish := models.CompositeScore(res.Health.Score, res.Taste.Score, res.Consumer.Score)
	overall := objField(raw, "overall")
	res.Overall = models.Overall{
		VishScore:     vish,
		Grade:         models.GradeFor(vish),
		Summary:       strField(overall, "summary", DefaultSummary),
		HealthScore:   res.Health.Score,
		TasteScore:    res.Taste.Score,
		ConsumerScore: res.Consumer.Score,
	}
	return res
}

func healthField(raw map[string]any) models.HealthAssessment {
	h := objField(raw, "health")
	return models.HealthAssessment{
		Score:           scoreField(h, "score"),
		Warnings:        listField(h, "warnings"),
		Recommendations: listField(h, "recommendations"),
		Allergens:       listField(h, "allergens"),
	}
}

func tasteField(raw map[string]any) models.TasteAssessment {
	t := objField(raw, "taste")
	profile := listField(t, "profile")
	if len(profile) == 0 {
		profile = []string{DefaultProfileTag}
	}
	return models.TasteAssessment{
		Score:       scoreField(t, "score"),
		Profile:     profile,
		Description: strField(t, "description", DefaultText),
	}
}

func consumerField(raw map[string]any) models.ConsumerAssessment {
	c := objField(raw, "consumer")
	return models.ConsumerAssessment{
		Score:        scoreField(c, "score"),
		Feedback:     strField(c, "feedback", DefaultText),
		Satisfaction: strField(c, "satisfaction", DefaultSentiment),
		Complaints:   listField(c, "complaints"),
		Positives:    listField(c, "positives"),
	}
}

func nutritionField(raw map[string]any, key string) models.NutritionFacts {
	n := objField(raw, key)
	return models.NutritionFacts{
		Calories:      floatField(n, "calories"),
		Fat:           nutrientField(n, "fat", "g"),
		Sodium:        nutrientField(n, "sodium", "mg"),
		Carbohydrates: nutrientField(n, "carbohydrates", "g"),
		Fiber:         nutrientField(n, "fiber", "g"),
		Sugars:        nutrientField(n, "sugars", "g"),
		Protein:       nutrientField(n, "protein", "g"),
		Cholesterol:   nutrientField(n, "cholesterol", "mg"),
		Vitamins:      listField(n, "vitamins"),
	}
}

// objField returns the named sub-object, or an empty map when absent or not
// an object, so downstream lookups fall through to their defaults.
func objField(m map[string]any, key string) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	if obj, ok := m[key].(map[string]any); ok {
		return obj
	}
	return map[string]any{}
}

func strField(m map[string]any, key, def string) string {
	if s, ok := m[key].(string); ok && s != "" {
		return s
	}
	return def
}

// scoreField reads a numeric score, defaulting to DefaultScore and clamping
// to [0,100]. JSON numbers arrive as float64; integer values are accepted
// too for locally built payloads.
func scoreField(m map[string]any, key string) int {
	switch v := m[key].(type) {
	case float64:
		return models.ClampScore(int(v))
	case int:
		return models.ClampScore(v)
	default:
		return DefaultScore
	}
}

func floatField(m map[string]any, key string) float64 {
	switch v := m[key].(type) {
	case float64:
		if v < 0 {
			return 0
		}
		return v
	case int:
		if v < 0 {
			return 0
		}
		return float64(v)
	default:
		return 0
	}
}

// nutrientField accepts either an {amount, unit} object or a bare number.
func nutrientField(m map[string]any, key, defaultUnit string) models.Nutrient {
	switch v := m[key].(type) {
	case map[string]any:
		return models.Nutrient{
			Amount: floatField(v, "amount"),
			Unit:   strField(v, "unit", defaultUnit),
		}
	case float64:
		if v < 0 {
			v = 0
		}
		return models.Nutrient{Amount: v, Unit: defaultUnit}
	default:
		return models.Nutrient{Unit: defaultUnit}
	}
}

// listField reads a list of strings, dropping non-string elements.
// Missing or mis-shaped lists default to empty.
func listField(m map[string]any, key string) []string {
	items, ok := m[key].([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
