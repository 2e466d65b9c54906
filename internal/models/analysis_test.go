// ABOUTME: Tests for AnalysisRecord construction and identifier format.
// ABOUTME: Identifiers are time-based with a random suffix, unique per call.
package models

import (
	"strings"
	"testing"
	"time"
)

func TestNewRecordID(t *testing.T) {
	at := time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)
	id := NewRecordID(at)

	parts := strings.SplitN(id, "-", 2)
	if len(parts) != 2 {
		t.Fatalf("ID %q not of the form <millis>-<suffix>", id)
	}
	if parts[0] != "1773480600000" {
		t.Errorf("time part = %s, want 1773480600000", parts[0])
	}
	if len(parts[1]) != 8 {
		t.Errorf("suffix length = %d, want 8", len(parts[1]))
	}

	if NewRecordID(at) == NewRecordID(at) {
		t.Error("expected distinct IDs for same timestamp")
	}
}

func TestNewAnalysisRecord(t *testing.T) {
	result := AnalysisResult{ProductName: "Trail Mix"}
	rec := NewAnalysisRecord("Trail Mix", result, "mix.jpg")

	if rec.ID == "" {
		t.Error("expected ID to be set")
	}
	if rec.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
	if rec.FoodName != "Trail Mix" {
		t.Errorf("FoodName = %s, want Trail Mix", rec.FoodName)
	}
	if rec.ImageRef != "mix.jpg" {
		t.Errorf("ImageRef = %s, want mix.jpg", rec.ImageRef)
	}
	if rec.Note != "" {
		t.Error("expected empty note on creation")
	}
}
