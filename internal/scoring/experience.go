package scoring

import "strings"

// experienceRule is one row of the seniority matching table. A rule applies
// when the preference level matches, none of the exclude terms appear and at
// least one term does. Rules are evaluated in order; the first match wins.
type experienceRule struct {
	level   string
	terms   []string
	exclude []string
	score   float64
}

var experienceRules = []experienceRule{
	{level: "junior", terms: []string{"junior", "entry", "graduate"}, score: 100},
	{level: "junior", terms: []string{"senior", "lead", "principal"}, score: 20},
	{level: "mid", terms: []string{"mid", "intermediate"}, score: 100},
	{level: "mid", terms: []string{"senior"}, exclude: []string{"lead"}, score: 80},
	{level: "mid", terms: []string{"junior"}, score: 60},
	{level: "senior", terms: []string{"senior", "lead", "principal", "staff"}, score: 100},
	{level: "senior", terms: []string{"mid"}, score: 60},
}

func (r experienceRule) matches(text string) bool {
	for _, term := range r.exclude {
		if strings.Contains(text, term) {
			return false
		}
	}
	for _, term := range r.terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

// experienceScore matches the posting's title and description against the
// rule table for the preferred level. Ambiguous text and unset levels fall
// to neutral.
func (s *Scorer) experienceScore(text string) float64 {
	level := s.prefs.experienceLevel
	if level == "" {
		return 50
	}

	text = strings.ToLower(text)
	for _, rule := range experienceRules {
		if rule.level != level {
			continue
		}
		if rule.matches(text) {
			return rule.score
		}
	}
	return 50
}
