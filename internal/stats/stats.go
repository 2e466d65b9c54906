// ABOUTME: Statistics Engine: derived aggregates over stored analysis records.
// ABOUTME: Pure computation; empty input yields zeroed stats, never an error.
package stats

import (
	"math"
	"sort"
	"time"

	"github.com/vishlabs/vish/internal/models"
)

// Vish-score buckets for the category distribution.
const (
	CategoryHealthy   = "Healthy"   // >= 70
	CategoryModerate  = "Moderate"  // 50-69
	CategoryUnhealthy = "Unhealthy" // < 50
)

const trendWindow = 5

// Compute derives an AnalysisStats snapshot from the given records, which
// must be ordered most-recent-first as the History Store keeps them. The
// six monthly buckets cover the calendar month of now and the five before
// it, oldest first; records outside that window are ignored.
func Compute(records []*models.AnalysisRecord, now time.Time) models.AnalysisStats {
	stats := models.AnalysisStats{
		TotalAnalyses: len(records),
		Categories:    []models.CategoryCount{},
		Monthly:       monthlyBuckets(records, now),
	}
	if len(records) == 0 {
		return stats
	}

	var sumVish, sumHealth, sumTaste, sumConsumer int
	counts := map[string]int{
		CategoryHealthy:   0,
		CategoryModerate:  0,
		CategoryUnhealthy: 0,
	}

	for _, rec := range records {
		o := rec.Result.Overall
		sumVish += o.VishScore
		sumHealth += o.HealthScore
		sumTaste += o.TasteScore
		sumConsumer += o.ConsumerScore

		if o.VishScore >= 70 {
			stats.HealthyChoices++
		}
		counts[categoryFor(o.VishScore)]++
	}

	n := len(records)
	stats.AvgVishScore = roundDiv(sumVish, n)
	stats.AvgHealthScore = roundDiv(sumHealth, n)
	stats.AvgTasteScore = roundDiv(sumTaste, n)
	stats.AvgConsumerScore = roundDiv(sumConsumer, n)
	stats.Trend = trend(records)
	stats.Categories = sortedCategories(counts)

	return stats
}

func categoryFor(vishScore int) string {
	switch {
	case vishScore >= 70:
		return CategoryHealthy
	case vishScore >= 50:
		return CategoryModerate
	default:
		return CategoryUnhealthy
	}
}

// trend compares the k most recent records against the k oldest,
// k = min(5, n). The windows may overlap for small histories; the skew
// toward zero that causes is accepted rather than silently corrected.
func trend(records []*models.AnalysisRecord) int {
	k := trendWindow
	if len(records) < k {
		k = len(records)
	}
	if k == 0 {
		return 0
	}

	recent := meanVish(records[:k])
	older := meanVish(records[len(records)-k:])
	return int(math.Round(recent - older))
}

func meanVish(records []*models.AnalysisRecord) float64 {
	sum := 0
	for _, rec := range records {
		sum += rec.Result.Overall.VishScore
	}
	return float64(sum) / float64(len(records))
}

// sortedCategories reports all three buckets, zero counts included, sorted
// descending by count. Ties keep Healthy, Moderate, Unhealthy order.
func sortedCategories(counts map[string]int) []models.CategoryCount {
	order := []string{CategoryHealthy, CategoryModerate, CategoryUnhealthy}
	out := make([]models.CategoryCount, 0, len(order))
	for _, cat := range order {
		out = append(out, models.CategoryCount{Category: cat, Count: counts[cat]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// monthlyBuckets always returns six buckets, oldest first, zero-filled.
func monthlyBuckets(records []*models.AnalysisRecord, now time.Time) []models.MonthCount {
	base := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	buckets := make([]models.MonthCount, 6)
	index := make(map[string]int, 6)
	for i := 0; i < 6; i++ {
		month := base.AddDate(0, i-5, 0)
		label := month.Format("Jan 2006")
		buckets[i] = models.MonthCount{Month: label}
		index[label] = i
	}

	for _, rec := range records {
		label := rec.CreatedAt.Format("Jan 2006")
		if i, ok := index[label]; ok {
			buckets[i].Count++
		}
	}
	return buckets
}

func roundDiv(sum, n int) int {
	return int(math.Round(float64(sum) / float64(n)))
}
