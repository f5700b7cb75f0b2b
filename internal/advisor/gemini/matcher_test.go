package gemini

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/sednabcn/job-search-automation/internal/keywords"
	"github.com/sednabcn/job-search-automation/internal/posting"
	"github.com/sednabcn/job-search-automation/internal/scoring"
)

type stubGenerator struct {
	response   string
	err        error
	lastPrompt string
}

func (s *stubGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func (s *stubGenerator) Model() string { return "stub-model" }

func scoredItem() *scoring.ScoredPosting {
	return &scoring.ScoredPosting{
		Posting: posting.FromMap(map[string]any{
			"id":      "j1",
			"title":   "Go Developer",
			"company": "Acme",
		}),
		Result: &scoring.Result{
			JobID:          "j1",
			JobTitle:       "Go Developer",
			Company:        "Acme",
			TotalScore:     72.0,
			Breakdown:      map[string]float64{scoring.DimKeywords: 100},
			Recommendation: scoring.RecommendationGoodMatch,
		},
	}
}

func TestMatcherAssess(t *testing.T) {
	stub := &stubGenerator{response: `{"fit": true, "score": 85, "reason": "Strong skill overlap"}`}
	matcher := NewMatcher(stub, zap.NewNop(), 0)
	profile := keywords.ProfileFromKeywords([]string{"go", "kubernetes"})

	assessment, err := matcher.Assess(context.Background(), profile, scoredItem())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !assessment.Fit {
		t.Error("expected fit to be true")
	}
	if assessment.Score != 85 {
		t.Errorf("score = %v, want 85", assessment.Score)
	}
	if assessment.Reason == "" {
		t.Error("expected reason to be populated")
	}
	if assessment.Raw != stub.response {
		t.Error("expected raw response to be kept")
	}

	if !strings.Contains(stub.lastPrompt, "Go Developer") {
		t.Error("prompt should carry the posting payload")
	}
	if !strings.Contains(stub.lastPrompt, "kubernetes") {
		t.Error("prompt should carry the profile keywords")
	}
}

func TestMatcherAssessFencedResponse(t *testing.T) {
	stub := &stubGenerator{response: "```json\n{\"fit\": true, \"score\": 90, \"reason\": \"ok\"}\n```"}
	matcher := NewMatcher(stub, zap.NewNop(), 0)

	assessment, err := matcher.Assess(context.Background(), nil, scoredItem())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !assessment.Fit || assessment.Score != 90 {
		t.Errorf("assessment = %+v, want fit with score 90", assessment)
	}
}

func TestMatcherScoreThresholdFlipsFit(t *testing.T) {
	stub := &stubGenerator{response: `{"fit": true, "score": 55, "reason": "weak"}`}
	matcher := NewMatcher(stub, zap.NewNop(), 70)

	assessment, err := matcher.Assess(context.Background(), nil, scoredItem())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if assessment.Fit {
		t.Error("expected fit forced to false below the threshold")
	}
	if assessment.Score != 55 {
		t.Errorf("score = %v, threshold must not rewrite the score", assessment.Score)
	}
}

func TestMatcherCoercesLooseFields(t *testing.T) {
	tests := []struct {
		name      string
		response  string
		wantFit   bool
		wantScore float64
	}{
		{"string score and yes", `{"fit": "yes", "score": "88", "reason": "r"}`, true, 88},
		{"numeric fit", `{"fit": 1, "score": 70, "reason": "r"}`, true, 70},
		{"missing fields", `{}`, false, 0},
		{"unparseable score", `{"fit": true, "score": "high", "reason": "r"}`, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matcher := NewMatcher(&stubGenerator{response: tt.response}, zap.NewNop(), 0)
			assessment, err := matcher.Assess(context.Background(), nil, scoredItem())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if assessment.Fit != tt.wantFit || assessment.Score != tt.wantScore {
				t.Errorf("got fit=%v score=%v, want fit=%v score=%v", assessment.Fit, assessment.Score, tt.wantFit, tt.wantScore)
			}
		})
	}
}

func TestMatcherGeneratorError(t *testing.T) {
	stub := &stubGenerator{err: errors.New("api down")}
	matcher := NewMatcher(stub, zap.NewNop(), 0)

	if _, err := matcher.Assess(context.Background(), nil, scoredItem()); err == nil {
		t.Fatal("expected the generator error to propagate")
	}
}

func TestMatcherInvalidJSON(t *testing.T) {
	stub := &stubGenerator{response: "sorry, I cannot help with that"}
	matcher := NewMatcher(stub, zap.NewNop(), 0)

	if _, err := matcher.Assess(context.Background(), nil, scoredItem()); err == nil {
		t.Fatal("expected a parse error for non-JSON output")
	}
}

func TestMatcherNilItem(t *testing.T) {
	matcher := NewMatcher(&stubGenerator{}, zap.NewNop(), 0)

	if _, err := matcher.Assess(context.Background(), nil, nil); err == nil {
		t.Fatal("expected an error for a missing item")
	}
}
