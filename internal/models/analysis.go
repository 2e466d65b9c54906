// ABOUTME: AnalysisResult and AnalysisRecord models for completed food analyses.
// ABOUTME: Records carry time-based IDs with a uuid suffix and an editable note.
package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// HealthAssessment scores the nutritional quality of an analyzed product.
type HealthAssessment struct {
	Score           int      `json:"score"`
	Warnings        []string `json:"warnings"`
	Recommendations []string `json:"recommendations"`
	Allergens       []string `json:"allergens"`
}

// TasteAssessment scores expected taste with a flavor profile.
type TasteAssessment struct {
	Score       int      `json:"score"`
	Profile     []string `json:"profile"`
	Description string   `json:"description"`
}

// ConsumerAssessment scores general consumer satisfaction.
type ConsumerAssessment struct {
	Score        int      `json:"score"`
	Feedback     string   `json:"feedback"`
	Satisfaction string   `json:"satisfaction"`
	Complaints   []string `json:"complaints"`
	Positives    []string `json:"positives"`
}

// Overall is the composite block of an analysis. VishScore is always the
// rounded mean of the three component scores; Grade follows GradeFor.
type Overall struct {
	VishScore     int    `json:"vishScore"`
	Grade         string `json:"grade"`
	Summary       string `json:"summary"`
	HealthScore   int    `json:"healthScore"`
	TasteScore    int    `json:"tasteScore"`
	ConsumerScore int    `json:"consumerScore"`
}

// AnalysisResult is the validated output of analyzing one submission.
type AnalysisResult struct {
	ProductName string             `json:"productName"`
	Nutrition   NutritionFacts     `json:"nutrition"`
	Health      HealthAssessment   `json:"health"`
	Taste       TasteAssessment    `json:"taste"`
	Consumer    ConsumerAssessment `json:"consumer"`
	Overall     Overall            `json:"overall"`
}

// AnalysisRecord is one persisted analysis. Only Note may change after
// creation; everything else is immutable.
type AnalysisRecord struct {
	ID        string         `json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	FoodName  string         `json:"foodName"`
	Result    AnalysisResult `json:"result"`
	ImageRef  string         `json:"imageRef,omitempty"`
	Note      string         `json:"note,omitempty"`
}

// NewRecordID generates a record identifier: creation time in unix
// milliseconds plus a random uuid-derived suffix, unique within a store.
func NewRecordID(t time.Time) string {
	return fmt.Sprintf("%d-%s", t.UnixMilli(), uuid.NewString()[:8])
}

// NewAnalysisRecord creates a record for a validated result, stamping the
// creation time and generating the identifier.
func NewAnalysisRecord(foodName string, result AnalysisResult, imageRef string) *AnalysisRecord {
	now := time.Now()
	return &AnalysisRecord{
		ID:        NewRecordID(now),
		CreatedAt: now,
		FoodName:  foodName,
		Result:    result,
		ImageRef:  imageRef,
	}
}
