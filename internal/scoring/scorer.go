package scoring

import (
	"math"
	"strings"
	"time"

	"github.com/sednabcn/job-search-automation/internal/keywords"
	"github.com/sednabcn/job-search-automation/internal/posting"
)

// Scorer evaluates postings against a frozen candidate profile and
// preference profile. The clock is injectable so recency scoring stays
// testable.
type Scorer struct {
	profile *keywords.Profile
	prefs   *Preferences
	now     func() time.Time
}

// Result is the immutable outcome of scoring one posting.
type Result struct {
	JobID           string             `json:"job_id"`
	JobTitle        string             `json:"job_title"`
	Company         string             `json:"company"`
	TotalScore      float64            `json:"total_score"`
	Breakdown       map[string]float64 `json:"breakdown"`
	Recommendation  string             `json:"recommendation"`
	MatchedKeywords []string           `json:"matched_keywords,omitempty"`
	ScoredAt        time.Time          `json:"scored_at"`
}

// New builds a scorer over the real clock.
func New(profile *keywords.Profile, prefs *Preferences) *Scorer {
	return NewWithClock(profile, prefs, time.Now)
}

// NewWithClock builds a scorer with an explicit clock for recency scoring
// and result timestamps.
func NewWithClock(profile *keywords.Profile, prefs *Preferences, now func() time.Time) *Scorer {
	if prefs == nil {
		prefs = DefaultPreferences()
	}
	if now == nil {
		now = time.Now
	}
	return &Scorer{profile: profile, prefs: prefs, now: now}
}

// Preferences returns the frozen preference profile the scorer was built
// with.
func (s *Scorer) Preferences() *Preferences { return s.prefs }

// Score evaluates one posting. Missing or malformed fields never fail the
// call; each dimension falls back to its neutral value (50, salary 60).
// Every sub-score lands in [0, 100]; the weighted total is rounded to one
// decimal and the recommendation tier is derived from the rounded value.
func (s *Scorer) Score(p *posting.Posting) *Result {
	matched := s.profile.Match(p.SearchText())

	breakdown := map[string]float64{
		DimKeywords:   clamp(s.keywordScore(len(matched))),
		DimSalary:     clamp(s.salaryScore(p.SalaryRange())),
		DimLocation:   clamp(s.locationScore(p.Location)),
		DimCompany:    clamp(s.companyScore(p.Company)),
		DimExperience: clamp(s.experienceScore(p.Title + " " + p.Description)),
		DimRecency:    clamp(s.recencyScore(p.PostedDate)),
	}

	var total float64
	for _, dim := range Dimensions {
		total += breakdown[dim] * float64(s.prefs.weights[dim]) / 100
	}
	total = roundScore(total)

	return &Result{
		JobID:           p.ID,
		JobTitle:        p.Title,
		Company:         p.Company,
		TotalScore:      total,
		Breakdown:       breakdown,
		Recommendation:  Recommend(total),
		MatchedKeywords: matched,
		ScoredAt:        s.now(),
	}
}

// keywordScore is recall against the candidate's own vocabulary: the share
// of profile keywords the posting mentions. An empty profile scores
// neutral.
func (s *Scorer) keywordScore(matches int) float64 {
	total := s.profile.Len()
	if total == 0 {
		return 50
	}
	return math.Min(100, 100*float64(matches)/float64(total))
}

// salaryScore applies the range rules in priority order. A posting without
// salary data scores 60, deliberately above the other dimensions' neutral
// 50.
func (s *Scorer) salaryScore(sal *posting.Salary) float64 {
	if sal == nil {
		return 60
	}

	prefMin, prefMax := s.prefs.salaryMin, s.prefs.salaryMax

	if sal.Max < prefMin {
		return 0
	}
	if sal.Min >= prefMin && (prefMax == 0 || sal.Max <= prefMax) {
		return 100
	}
	if prefMax == 0 || sal.Min <= prefMax {
		return 75
	}
	return 50
}

var remoteTerms = []string{"remote", "hybrid", "work from home"}

func (s *Scorer) locationScore(location string) float64 {
	location = strings.ToLower(strings.TrimSpace(location))
	if location == "" {
		return 50
	}
	for _, want := range s.prefs.locations {
		if strings.Contains(location, want) {
			return 100
		}
	}
	for _, term := range remoteTerms {
		if strings.Contains(location, term) {
			return 80
		}
	}
	return 30
}

func (s *Scorer) companyScore(company string) float64 {
	company = strings.ToLower(strings.TrimSpace(company))
	if company == "" || len(s.prefs.companies) == 0 {
		return 50
	}
	for _, want := range s.prefs.companies {
		if strings.Contains(company, want) {
			return 100
		}
	}
	return 40
}

// recencyScore buckets the posting's age. Comparison is timezone-naive on
// both sides; unknown dates score neutral.
func (s *Scorer) recencyScore(postedDate string) float64 {
	posted, ok := posting.ParsePostedDate(postedDate)
	if !ok {
		return 50
	}

	n := s.now()
	naiveNow := time.Date(n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second(), 0, time.UTC)
	days := int(naiveNow.Sub(posted).Hours() / 24)

	switch {
	case days <= 7:
		return 100
	case days <= 14:
		return 80
	case days <= s.prefs.recencyDays:
		return 60
	default:
		return 30
	}
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	}
	return v
}

// roundScore rounds a total to one decimal place.
func roundScore(v float64) float64 {
	return math.Round(v*10) / 10
}
