// ABOUTME: Vertex AI (Gemini vision) implementation of the analysis Provider.
// ABOUTME: Sends the label photo plus optional health context, returns raw model text.
package analyzer

import (
	"context"
	"fmt"

	"cloud.google.com/go/vertexai/genai"
	"google.golang.org/api/option"
)

const defaultModel = "gemini-1.5-flash"

const analysisPrompt = `You are a food quality analyst. Analyze this photo of a packaged food's
nutrition label and respond with exactly one JSON object of this shape:

{
  "productName": "string",
  "nutrition": {
    "calories": number,
    "fat": {"amount": number, "unit": "g"},
    "sodium": {"amount": number, "unit": "mg"},
    "carbohydrates": {"amount": number, "unit": "g"},
    "fiber": {"amount": number, "unit": "g"},
    "sugars": {"amount": number, "unit": "g"},
    "protein": {"amount": number, "unit": "g"},
    "cholesterol": {"amount": number, "unit": "mg"},
    "vitamins": ["string"]
  },
  "health": {"score": 0-100, "warnings": ["string"], "recommendations": ["string"], "allergens": ["string"]},
  "taste": {"score": 0-100, "profile": ["string"], "description": "string"},
  "consumer": {"score": 0-100, "feedback": "string", "satisfaction": "string", "complaints": ["string"], "positives": ["string"]},
  "overall": {"summary": "string"}
}

Scores are integers. Base the health score on the label values, the taste
and consumer scores on what is typical for this kind of product.`

// GoogleConfig configures the Vertex AI provider.
type GoogleConfig struct {
	ProjectID       string `json:"project_id"`
	Location        string `json:"location"`
	CredentialsFile string `json:"credentials_file,omitempty"`
	Model           string `json:"model,omitempty"`
}

// GoogleProvider calls Gemini vision through Vertex AI.
type GoogleProvider struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGoogleProvider creates and connects a Vertex AI provider.
func NewGoogleProvider(ctx context.Context, cfg GoogleConfig) (*GoogleProvider, error) {
	if cfg.ProjectID == "" {
		return nil, fmt.Errorf("google provider: project_id is required")
	}

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := genai.NewClient(ctx, cfg.ProjectID, cfg.Location, opts...)
	if err != nil {
		return nil, fmt.Errorf("create vertex client: %w", err)
	}

	name := cfg.Model
	if name == "" {
		name = defaultModel
	}

	return &GoogleProvider{
		client: client,
		model:  client.GenerativeModel(name),
	}, nil
}

// Analyze sends the image and optional user health context to the model
// and returns the raw text of the first candidate.
func (p *GoogleProvider) Analyze(ctx context.Context, image []byte, healthContext string) (string, error) {
	prompt := analysisPrompt
	if healthContext != "" {
		prompt += "\n\nThe user shared this health context; reflect it in the warnings and recommendations: " + healthContext
	}

	img := genai.ImageData("image/jpeg", image)
	resp, err := p.model.GenerateContent(ctx, genai.Text(prompt), img)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty model response")
	}
	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

// Close releases the underlying client connection.
func (p *GoogleProvider) Close() error {
	return p.client.Close()
}
