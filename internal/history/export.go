// ABOUTME: Export of history records as CSV, JSON, and YAML.
// ABOUTME: CSV is one row per record in store order; encoding/csv handles quoting.
package history

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

var csvHeader = []string{
	"date", "food", "vish_score", "health_score", "taste_score", "consumer_score", "grade", "note",
}

// ExportCSV flattens all records into comma-separated rows (date, name,
// four scores, grade, note) in the store's current ordering. Fields
// containing the delimiter are quoted.
func (s *Store) ExportCSV() ([]byte, error) {
	records, err := s.load()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, rec := range records {
		o := rec.Result.Overall
		row := []string{
			rec.CreatedAt.Format("2006-01-02 15:04"),
			rec.FoodName,
			strconv.Itoa(o.VishScore),
			strconv.Itoa(o.HealthScore),
			strconv.Itoa(o.TasteScore),
			strconv.Itoa(o.ConsumerScore),
			o.Grade,
			rec.Note,
		}
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

// ExportJSON exports all records as indented JSON, suitable for backup.
func (s *Store) ExportJSON() ([]byte, error) {
	records, err := s.load()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(records, "", "  ")
}

// ExportYAML exports a compact human-readable YAML view of all records.
func (s *Store) ExportYAML() ([]byte, error) {
	records, err := s.load()
	if err != nil {
		return nil, err
	}

	type yamlRecord struct {
		ID    string `yaml:"id"`
		Date  string `yaml:"date"`
		Food  string `yaml:"food"`
		Vish  int    `yaml:"vish_score"`
		Grade string `yaml:"grade"`
		Note  string `yaml:"note,omitempty"`
	}

	out := struct {
		ExportedAt string       `yaml:"exported_at"`
		Tool       string       `yaml:"tool"`
		Analyses   []yamlRecord `yaml:"analyses"`
	}{
		ExportedAt: time.Now().Format(time.RFC3339),
		Tool:       "vish",
		Analyses:   make([]yamlRecord, 0, len(records)),
	}

	for _, rec := range records {
		out.Analyses = append(out.Analyses, yamlRecord{
			ID:    rec.ID,
			Date:  rec.CreatedAt.Format(time.RFC3339),
			Food:  rec.FoodName,
			Vish:  rec.Result.Overall.VishScore,
			Grade: rec.Result.Overall.Grade,
			Note:  rec.Note,
		})
	}

	return yaml.Marshal(out)
}
