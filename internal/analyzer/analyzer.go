// ABOUTME: External analysis provider boundary: image in, raw model text out.
// ABOUTME: Extraction and validation of the embedded payload happen in internal/score.
package analyzer

import (
	"context"
	"fmt"

	"github.com/vishlabs/vish/internal/models"
	"github.com/vishlabs/vish/internal/score"
)

// Provider is the external vision/language model that analyzes a label
// photo. Implementations return the model's unstructured text response;
// timeout and retry policy belong to the caller, not this boundary.
type Provider interface {
	Analyze(ctx context.Context, image []byte, healthContext string) (string, error)
}

// AnalyzeImage sends the image to the provider and validates the embedded
// payload into a complete AnalysisResult. A response with no extractable
// structured payload surfaces as *score.MalformedAnalysisError.
func AnalyzeImage(ctx context.Context, p Provider, image []byte, healthContext string) (*models.AnalysisResult, error) {
	text, err := p.Analyze(ctx, image, healthContext)
	if err != nil {
		return nil, fmt.Errorf("analysis provider: %w", err)
	}
	return score.Parse(text)
}
