// ABOUTME: Tests for JSON extraction from unstructured provider text.
// ABOUTME: Only a response with no structured payload at all is malformed.
package score

import (
	"errors"
	"testing"
)

func TestParseFencedJSON(t *testing.T) {
	text := "```json\n{\"productName\": \"Granola\", \"health\": {\"score\": 72}}\n```"

	res, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if res.ProductName != "Granola" {
		t.Errorf("ProductName = %q, want Granola", res.ProductName)
	}
	if res.Health.Score != 72 {
		t.Errorf("Health.Score = %d, want 72", res.Health.Score)
	}
}

func TestParseJSONWithSurroundingProse(t *testing.T) {
	text := `Here is my analysis of the product:

{"productName": "Rice Cakes", "taste": {"score": 61}}

Let me know if you need more detail.`

	res, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if res.ProductName != "Rice Cakes" {
		t.Errorf("ProductName = %q, want Rice Cakes", res.ProductName)
	}
	if res.Taste.Score != 61 {
		t.Errorf("Taste.Score = %d, want 61", res.Taste.Score)
	}
}

func TestParseBracesInsideStrings(t *testing.T) {
	text := `{"productName": "Weird {Brand} Chips", "overall": {"summary": "contains } brace"}}`

	res, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if res.ProductName != "Weird {Brand} Chips" {
		t.Errorf("ProductName = %q", res.ProductName)
	}
	if res.Overall.Summary != "contains } brace" {
		t.Errorf("Summary = %q", res.Overall.Summary)
	}
}

func TestParseNoObject(t *testing.T) {
	_, err := Parse("I could not read the label, the image is too blurry.")
	var malformed *MalformedAnalysisError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedAnalysisError, got %v", err)
	}
}

func TestParseUnbalancedObject(t *testing.T) {
	_, err := Parse(`{"productName": "Chips", "health": {"score": 50}`)
	var malformed *MalformedAnalysisError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedAnalysisError, got %v", err)
	}
}

func TestParseInvalidJSON(t *testing.T) {
	_, err := Parse(`{not valid json}`)
	var malformed *MalformedAnalysisError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedAnalysisError, got %v", err)
	}
}
