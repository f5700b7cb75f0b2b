// Package posting holds the job posting model and the lenient decoding
// layer in front of it. Postings arrive as JSON-shaped maps from scraper
// collaborators; every field is optional and reads fall back to documented
// defaults instead of failing.
package posting

import (
	"strings"

	"github.com/spf13/cast"
)

// Posting is one job advertisement record. The Raw map keeps the original
// fields so batch output can merge them with score fields untouched.
type Posting struct {
	ID           string   `json:"id,omitempty"`
	Title        string   `json:"title,omitempty"`
	Company      string   `json:"company,omitempty"`
	Location     string   `json:"location,omitempty"`
	Salary       string   `json:"salary,omitempty"`
	SalaryMin    float64  `json:"salary_min,omitempty"`
	SalaryMax    float64  `json:"salary_max,omitempty"`
	Description  string   `json:"description,omitempty"`
	Requirements any      `json:"requirements,omitempty"`
	PostedDate   string   `json:"posted_date,omitempty"`
	Attributes   []string `json:"attributes,omitempty"`

	Raw map[string]any `json:"-"`
}

// Postings is a decoded collection preserving input order.
type Postings struct {
	Items []*Posting `json:"items"`
}

func (p *Postings) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Items)
}

func (p *Postings) FindByID(id string) *Posting {
	for _, item := range p.Items {
		if item.ID == id {
			return item
		}
	}
	return nil
}

// RequirementsText flattens the requirements field, which scrapers deliver
// either as free text or as a list of bullet strings.
func (p *Posting) RequirementsText() string {
	if p.Requirements == nil {
		return ""
	}
	if s, err := cast.ToStringE(p.Requirements); err == nil {
		return s
	}
	if items, err := cast.ToStringSliceE(p.Requirements); err == nil {
		return strings.Join(items, "\n")
	}
	return ""
}

// SearchText concatenates the free-text fields scanned for keyword and
// experience matching.
func (p *Posting) SearchText() string {
	parts := make([]string, 0, 3)
	for _, s := range []string{p.Title, p.Description, p.RequirementsText()} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// SalaryRange resolves the posting's salary information: explicit numeric
// bounds win over the free-text salary field. Nil means the posting supplies
// no usable salary data, which scores neutral rather than failing.
func (p *Posting) SalaryRange() *Salary {
	if p.SalaryMin > 0 || p.SalaryMax > 0 {
		lo, hi := p.SalaryMin, p.SalaryMax
		if lo == 0 {
			lo = hi
		}
		if hi == 0 {
			hi = lo
		}
		if lo > hi {
			lo, hi = hi, lo
		}
		cur := CurrencyUSD
		if strings.Contains(p.Salary, "£") {
			cur = CurrencyGBP
		}
		return &Salary{Min: lo, Max: hi, Currency: cur}
	}

	if strings.TrimSpace(p.Salary) != "" {
		return ParseSalary(p.Salary)
	}

	return nil
}
