// ABOUTME: FoodItem and NutritionFacts models for the Vish catalog.
// ABOUTME: Defines component scores, the composite Vish Score, and letter grades.
package models

import "math"

// Nutrient is a single named nutrient quantity from a label.
type Nutrient struct {
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// NutritionFacts holds the fixed set of label nutrients for one item.
// Immutable once produced for a given analysis.
type NutritionFacts struct {
	Calories      float64  `json:"calories"`
	Fat           Nutrient `json:"fat"`
	Sodium        Nutrient `json:"sodium"`
	Carbohydrates Nutrient `json:"carbohydrates"`
	Fiber         Nutrient `json:"fiber"`
	Sugars        Nutrient `json:"sugars"`
	Protein       Nutrient `json:"protein"`
	Cholesterol   Nutrient `json:"cholesterol"`
	Vitamins      []string `json:"vitamins"`
}

// FoodItem is one catalog entry. Entries are never mutated after creation;
// an update is a new entry with a new ID.
type FoodItem struct {
	ID                 string         `json:"id"`
	Name               string         `json:"name"`
	Brand              string         `json:"brand"`
	Category           string         `json:"category"`
	Barcode            string         `json:"barcode,omitempty"`
	HealthScore        int            `json:"healthScore"`
	TasteScore         int            `json:"tasteScore"`
	ConsumerScore      int            `json:"consumerScore"`
	EnvironmentalScore int            `json:"environmentalScore"`
	VishScore          int            `json:"vishScore"`
	Nutrition          NutritionFacts `json:"nutrition"`
	Ingredients        []string       `json:"ingredients"`
	Allergens          []string       `json:"allergens"`
	Certifications     []string       `json:"certifications"`
	PriceRange         string         `json:"priceRange"`
	DietaryTags        []string       `json:"dietaryTags"`
	Origin             string         `json:"origin"`
	MoodScore          int            `json:"moodScore"`
}

// CompositeScore returns the Vish Score for a component triple: the rounded
// mean of health, taste, and consumer. The environmental score never
// participates in the composite.
func CompositeScore(health, taste, consumer int) int {
	return int(math.Round(float64(health+taste+consumer) / 3.0))
}

// ClampScore forces a score into the [0,100] range.
func ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// GradeFor maps a Vish Score to its letter grade.
// Thresholds are inclusive lower bounds: 90 A, 80 B, 70 C, 60 D, else F.
func GradeFor(vishScore int) string {
	switch {
	case vishScore >= 90:
		return "A"
	case vishScore >= 80:
		return "B"
	case vishScore >= 70:
		return "C"
	case vishScore >= 60:
		return "D"
	default:
		return "F"
	}
}

// Grade returns the letter grade for this item's Vish Score.
func (f *FoodItem) Grade() string {
	return GradeFor(f.VishScore)
}

// HasDietaryTag reports whether the item carries the given dietary tag.
func (f *FoodItem) HasDietaryTag(tag string) bool {
	for _, t := range f.DietaryTags {
		if t == tag {
			return true
		}
	}
	return false
}

// HasAllergen reports whether the item lists the given allergen.
func (f *FoodItem) HasAllergen(allergen string) bool {
	for _, a := range f.Allergens {
		if a == allergen {
			return true
		}
	}
	return false
}
