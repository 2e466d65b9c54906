// ABOUTME: CSV export of computed trend metrics.
// ABOUTME: One metric per row; encoding/csv quotes delimiter-bearing fields.
package stats

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/vishlabs/vish/internal/models"
)

// ExportCSV flattens a computed snapshot into metric,value rows followed by
// the category and monthly breakdowns.
func ExportCSV(s models.AnalysisStats) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{
		{"metric", "value"},
		{"total_analyses", strconv.Itoa(s.TotalAnalyses)},
		{"avg_vish_score", strconv.Itoa(s.AvgVishScore)},
		{"avg_health_score", strconv.Itoa(s.AvgHealthScore)},
		{"avg_taste_score", strconv.Itoa(s.AvgTasteScore)},
		{"avg_consumer_score", strconv.Itoa(s.AvgConsumerScore)},
		{"healthy_choices", strconv.Itoa(s.HealthyChoices)},
		{"trend", strconv.Itoa(s.Trend)},
	}
	for _, c := range s.Categories {
		rows = append(rows, []string{"category:" + c.Category, strconv.Itoa(c.Count)})
	}
	for _, m := range s.Monthly {
		rows = append(rows, []string{"month:" + m.Month, strconv.Itoa(m.Count)})
	}

	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
