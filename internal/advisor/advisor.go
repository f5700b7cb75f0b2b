// Package advisor defines the optional second-opinion layer that reviews
// rule-scored postings with a language model. Advisors never alter rule
// scores; their assessments ride alongside.
package advisor

import (
	"context"

	"github.com/sednabcn/job-search-automation/internal/keywords"
	"github.com/sednabcn/job-search-automation/internal/scoring"
)

// FitAssessment is a model's verdict on one scored posting.
type FitAssessment struct {
	Fit    bool
	Score  float64
	Reason string
	Raw    string
}

// Advisor assesses how well a posting fits the candidate profile.
type Advisor interface {
	Assess(ctx context.Context, profile *keywords.Profile, item *scoring.ScoredPosting) (*FitAssessment, error)
}
