// ABOUTME: Tests for the provider boundary using a canned fake provider.
// ABOUTME: No network; provider text goes straight through payload validation.
package analyzer

import (
	"context"
	"errors"
	"testing"

	"github.com/vishlabs/vish/internal/score"
)

type fakeProvider struct {
	response string
	err      error

	gotImage   []byte
	gotContext string
}

func (f *fakeProvider) Analyze(_ context.Context, image []byte, healthContext string) (string, error) {
	f.gotImage = image
	f.gotContext = healthContext
	return f.response, f.err
}

func TestAnalyzeImage(t *testing.T) {
	p := &fakeProvider{
		response: "Here is the analysis:\n```json\n" +
			`{"productName": "Trail Mix", "health": {"score": 72}, "taste": {"score": 80}, "consumer": {"score": 76}}` +
			"\n```",
	}

	res, err := AnalyzeImage(context.Background(), p, []byte("jpeg-bytes"), "low sodium diet")
	if err != nil {
		t.Fatalf("AnalyzeImage: %v", err)
	}

	if res.ProductName != "Trail Mix" {
		t.Errorf("ProductName = %s, want Trail Mix", res.ProductName)
	}
	// round((72+80+76)/3) = 76.
	if res.Overall.VishScore != 76 {
		t.Errorf("VishScore = %d, want 76", res.Overall.VishScore)
	}
	if string(p.gotImage) != "jpeg-bytes" {
		t.Errorf("provider got image %q", p.gotImage)
	}
	if p.gotContext != "low sodium diet" {
		t.Errorf("provider got context %q", p.gotContext)
	}
}

func TestAnalyzeImageProviderError(t *testing.T) {
	wantErr := errors.New("quota exceeded")
	p := &fakeProvider{err: wantErr}

	_, err := AnalyzeImage(context.Background(), p, nil, "")
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want wrapped %v", err, wantErr)
	}
}

func TestAnalyzeImageMalformedResponse(t *testing.T) {
	p := &fakeProvider{response: "I could not read the label, sorry."}

	_, err := AnalyzeImage(context.Background(), p, nil, "")
	var malformed *score.MalformedAnalysisError
	if !errors.As(err, &malformed) {
		t.Fatalf("err = %v, want MalformedAnalysisError", err)
	}
}
