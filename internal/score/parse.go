// ABOUTME: Extraction of the embedded JSON object from raw provider text.
// ABOUTME: Raises MalformedAnalysisError only when no structured payload exists at all.
package score

import (
	"encoding/json"
	"strings"

	"github.com/vishlabs/vish/internal/models"
)

// MalformedAnalysisError reports that a provider response contained no
// parseable structured payload. Callers surface it as a retry prompt; it is
// never raised for partial payloads, which are defaulted instead.
type MalformedAnalysisError struct {
	Reason string
}

func (e *MalformedAnalysisError) Error() string {
	return "malformed analysis response: " + e.Reason
}

// Parse locates the first JSON object embedded in unstructured provider
// output, parses it, and validates it into a complete AnalysisResult.
func Parse(text string) (*models.AnalysisResult, error) {
	payload, ok := extractObject(text)
	if !ok {
		return nil, &MalformedAnalysisError{Reason: "no JSON object found in response"}
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return nil, &MalformedAnalysisError{Reason: err.Error()}
	}

	return Validate(raw), nil
}

// extractObject returns the first balanced {...} substring of text.
// Models often wrap payloads in markdown fences or prose; both are skipped.
// Braces inside JSON strings are accounted for.
func extractObject(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}
	return "", false
}
