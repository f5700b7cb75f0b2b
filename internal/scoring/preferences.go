// Package scoring turns a candidate profile plus a preference profile into
// per-posting scores. Scoring is pure: given the same profile, preferences
// and clock, a posting always scores identically.
package scoring

import "strings"

// Names of the six scoring dimensions as they appear in weight maps and
// score breakdowns.
const (
	DimKeywords   = "keywords"
	DimSalary     = "salary"
	DimLocation   = "location"
	DimCompany    = "company"
	DimExperience = "experience"
	DimRecency    = "recency"
)

// Dimensions lists every scoring dimension in breakdown order.
var Dimensions = []string{DimKeywords, DimSalary, DimLocation, DimCompany, DimExperience, DimRecency}

func defaultWeights() map[string]int {
	return map[string]int{
		DimKeywords:   40,
		DimSalary:     20,
		DimLocation:   15,
		DimExperience: 10,
		DimRecency:    10,
		DimCompany:    5,
	}
}

// PreferenceInput is the decodable shape of a preference profile, as it
// appears under the config file's preferences key. Zero values inherit the
// documented defaults.
type PreferenceInput struct {
	RequiredSkills  []string       `json:"required_skills" mapstructure:"required_skills"`
	PreferredSkills []string       `json:"preferred_skills" mapstructure:"preferred_skills"`
	SalaryMin       float64        `json:"salary_min" mapstructure:"salary_min"`
	SalaryMax       float64        `json:"salary_max" mapstructure:"salary_max"`
	Locations       []string       `json:"locations" mapstructure:"locations"`
	ExperienceLevel string         `json:"experience_level" mapstructure:"experience_level"`
	Companies       []string       `json:"company_preferences" mapstructure:"company_preferences"`
	RecencyDays     int            `json:"recency_days" mapstructure:"recency_days"`
	Weights         map[string]int `json:"weights" mapstructure:"weights"`
}

// Preferences is the frozen preference profile a Scorer is built with. It is
// assembled once from defaults plus overrides and never mutated afterwards.
type Preferences struct {
	requiredSkills  []string
	preferredSkills []string
	salaryMin       float64
	salaryMax       float64
	locations       []string
	experienceLevel string
	companies       []string
	recencyDays     int
	weights         map[string]int
}

// NewPreferences builds an immutable profile from in, filling defaults:
// locations remote/london/uk, recency window 30 days, weights
// keywords 40 / salary 20 / location 15 / experience 10 / recency 10 /
// company 5. A weight key present in in.Weights overrides that dimension
// only; other dimensions keep their defaults. Weights are not validated to
// sum to 100.
func NewPreferences(in PreferenceInput) *Preferences {
	p := &Preferences{
		requiredSkills:  append([]string(nil), in.RequiredSkills...),
		preferredSkills: append([]string(nil), in.PreferredSkills...),
		salaryMin:       in.SalaryMin,
		salaryMax:       in.SalaryMax,
		locations:       lowerAll(in.Locations),
		experienceLevel: strings.ToLower(strings.TrimSpace(in.ExperienceLevel)),
		companies:       lowerAll(in.Companies),
		recencyDays:     in.RecencyDays,
		weights:         defaultWeights(),
	}

	if len(p.locations) == 0 {
		p.locations = []string{"remote", "london", "uk"}
	}
	if p.recencyDays <= 0 {
		p.recencyDays = 30
	}
	for dim, w := range in.Weights {
		p.weights[strings.ToLower(strings.TrimSpace(dim))] = w
	}

	return p
}

// DefaultPreferences returns the profile used when no configuration is
// supplied at all.
func DefaultPreferences() *Preferences {
	return NewPreferences(PreferenceInput{})
}

// SalaryMin is the lower bound of the target salary range, 0 when unset.
func (p *Preferences) SalaryMin() float64 { return p.salaryMin }

// SalaryMax is the upper bound of the target salary range. 0 means
// unbounded.
func (p *Preferences) SalaryMax() float64 { return p.salaryMax }

// Locations returns the acceptable location substrings, lowercased.
func (p *Preferences) Locations() []string { return append([]string(nil), p.locations...) }

// Companies returns the preferred employer substrings, lowercased. Empty
// means no company preference.
func (p *Preferences) Companies() []string { return append([]string(nil), p.companies...) }

// ExperienceLevel is one of junior, mid or senior; empty means no level
// preference and scores experience neutral.
func (p *Preferences) ExperienceLevel() string { return p.experienceLevel }

// RecencyDays is the staleness threshold in days.
func (p *Preferences) RecencyDays() int { return p.recencyDays }

// RequiredSkills returns the informational required-skills list. It does not
// influence scoring.
func (p *Preferences) RequiredSkills() []string { return append([]string(nil), p.requiredSkills...) }

// PreferredSkills returns the informational preferred-skills list. It does
// not influence scoring.
func (p *Preferences) PreferredSkills() []string { return append([]string(nil), p.preferredSkills...) }

// Weight returns the integer percentage weight of a dimension, 0 for
// unknown dimensions.
func (p *Preferences) Weight(dim string) int { return p.weights[dim] }

// Weights returns a copy of the full weight map.
func (p *Preferences) Weights() map[string]int {
	out := make(map[string]int, len(p.weights))
	for dim, w := range p.weights {
		out[dim] = w
	}
	return out
}

func lowerAll(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.ToLower(strings.TrimSpace(item))
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
