// ABOUTME: Tests for the statistics engine over synthetic record lists.
// ABOUTME: Fixed clock throughout; no test depends on wall time.
package stats

import (
	"testing"
	"time"

	"github.com/vishlabs/vish/internal/models"
)

var testNow = time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)

func recordAt(vishScore int, createdAt time.Time) *models.AnalysisRecord {
	return &models.AnalysisRecord{
		ID:        "test",
		CreatedAt: createdAt,
		Result: models.AnalysisResult{
			Overall: models.Overall{
				VishScore:     vishScore,
				Grade:         models.GradeFor(vishScore),
				HealthScore:   vishScore,
				TasteScore:    vishScore,
				ConsumerScore: vishScore,
			},
		},
	}
}

// recordList builds records most-recent-first, matching store ordering.
func recordList(scores ...int) []*models.AnalysisRecord {
	records := make([]*models.AnalysisRecord, len(scores))
	for i, score := range scores {
		records[i] = recordAt(score, testNow.Add(-time.Duration(i)*time.Hour))
	}
	return records
}

func TestComputeEmpty(t *testing.T) {
	s := Compute(nil, testNow)

	if s.TotalAnalyses != 0 || s.AvgVishScore != 0 || s.HealthyChoices != 0 || s.Trend != 0 {
		t.Errorf("empty stats not zeroed: %+v", s)
	}
	if len(s.Categories) != 0 {
		t.Errorf("Categories = %v, want empty", s.Categories)
	}
	if len(s.Monthly) != 6 {
		t.Fatalf("Monthly has %d buckets, want 6", len(s.Monthly))
	}
	for _, m := range s.Monthly {
		if m.Count != 0 {
			t.Errorf("%s: Count = %d, want 0", m.Month, m.Count)
		}
	}
}

func TestComputeAggregates(t *testing.T) {
	// Most recent first: 90, 85, 40, 40, 40, 95, 92.
	records := recordList(90, 85, 40, 40, 40, 95, 92)
	s := Compute(records, testNow)

	if s.TotalAnalyses != 7 {
		t.Errorf("TotalAnalyses = %d, want 7", s.TotalAnalyses)
	}
	// Sum 482, 482/7 = 68.857 -> 69.
	if s.AvgVishScore != 69 {
		t.Errorf("AvgVishScore = %d, want 69", s.AvgVishScore)
	}
	if s.HealthyChoices != 4 {
		t.Errorf("HealthyChoices = %d, want 4", s.HealthyChoices)
	}
}

func TestComputeTrend(t *testing.T) {
	tests := []struct {
		name   string
		scores []int
		want   int
	}{
		// recent [90 85 40 40 40] = 59, older [40 40 40 95 92] = 61.4 -> -2.
		{"seven records", []int{90, 85, 40, 40, 40, 95, 92}, -2},
		// Fewer than five records: windows fully overlap, trend is zero.
		{"three records", []int{90, 50, 20}, 0},
		{"single record", []int{75}, 0},
		// recent [90 90 90 90 90] = 90, older [40 40 40 40 40] = 40.
		{"clear improvement", []int{90, 90, 90, 90, 90, 40, 40, 40, 40, 40}, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Compute(recordList(tt.scores...), testNow)
			if s.Trend != tt.want {
				t.Errorf("Trend = %d, want %d", s.Trend, tt.want)
			}
		})
	}
}

func TestComputeCategories(t *testing.T) {
	// 4 healthy (>=70), 3 unhealthy (<50), 0 moderate.
	records := recordList(90, 85, 40, 40, 40, 95, 92)
	s := Compute(records, testNow)

	want := []models.CategoryCount{
		{Category: CategoryHealthy, Count: 4},
		{Category: CategoryUnhealthy, Count: 3},
		{Category: CategoryModerate, Count: 0},
	}
	if len(s.Categories) != len(want) {
		t.Fatalf("Categories = %v, want %v", s.Categories, want)
	}
	for i := range want {
		if s.Categories[i] != want[i] {
			t.Errorf("Categories[%d] = %v, want %v", i, s.Categories[i], want[i])
		}
	}
}

func TestComputeCategoryTieOrder(t *testing.T) {
	// One of each: counts tie, canonical order must hold.
	records := recordList(80, 55, 30)
	s := Compute(records, testNow)

	wantOrder := []string{CategoryHealthy, CategoryModerate, CategoryUnhealthy}
	for i, cat := range wantOrder {
		if s.Categories[i].Category != cat || s.Categories[i].Count != 1 {
			t.Errorf("Categories[%d] = %v, want {%s 1}", i, s.Categories[i], cat)
		}
	}
}

func TestCategoryBoundaries(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, CategoryHealthy},
		{70, CategoryHealthy},
		{69, CategoryModerate},
		{50, CategoryModerate},
		{49, CategoryUnhealthy},
		{0, CategoryUnhealthy},
	}
	for _, tt := range tests {
		if got := categoryFor(tt.score); got != tt.want {
			t.Errorf("categoryFor(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestMonthlyBuckets(t *testing.T) {
	records := []*models.AnalysisRecord{
		// Two in March 2026, one in January, one in October 2025, and one
		// just outside the six-month window.
		recordAt(80, testNow),
		recordAt(70, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)),
		recordAt(60, time.Date(2026, time.January, 20, 12, 0, 0, 0, time.UTC)),
		recordAt(50, time.Date(2025, time.October, 5, 8, 0, 0, 0, time.UTC)),
		recordAt(40, time.Date(2025, time.September, 30, 23, 59, 0, 0, time.UTC)),
	}
	s := Compute(records, testNow)

	wantLabels := []string{"Oct 2025", "Nov 2025", "Dec 2025", "Jan 2026", "Feb 2026", "Mar 2026"}
	wantCounts := []int{1, 0, 0, 1, 0, 2}

	if len(s.Monthly) != 6 {
		t.Fatalf("Monthly has %d buckets, want 6", len(s.Monthly))
	}
	for i := range wantLabels {
		if s.Monthly[i].Month != wantLabels[i] {
			t.Errorf("Monthly[%d].Month = %s, want %s", i, s.Monthly[i].Month, wantLabels[i])
		}
		if s.Monthly[i].Count != wantCounts[i] {
			t.Errorf("Monthly[%d].Count = %d, want %d", i, s.Monthly[i].Count, wantCounts[i])
		}
	}
}

func TestMonthlyBucketsYearBoundary(t *testing.T) {
	jan := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)
	s := Compute(nil, jan)

	wantLabels := []string{"Aug 2025", "Sep 2025", "Oct 2025", "Nov 2025", "Dec 2025", "Jan 2026"}
	for i, label := range wantLabels {
		if s.Monthly[i].Month != label {
			t.Errorf("Monthly[%d].Month = %s, want %s", i, s.Monthly[i].Month, label)
		}
	}
}
