// Package report rolls a scored batch up into human-readable views for the
// interactive menu and file output.
package report

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sednabcn/job-search-automation/internal/scoring"
)

const unknownCompany = "unknown"

var titleCaser = cases.Title(language.English)

// CompanySummary aggregates one employer's postings within a batch.
type CompanySummary struct {
	Company  string              `json:"company"`
	Best     float64             `json:"best_score"`
	Tiers    map[string]int      `json:"tiers"`
	Postings []map[string]string `json:"postings"`
}

// ByCompany groups scored postings by employer, tracking the best total and
// a count per recommendation tier. Groups come back sorted by best score
// descending, name ascending on ties.
func ByCompany(items []*scoring.ScoredPosting) []*CompanySummary {
	groups := make(map[string]*CompanySummary)

	for _, item := range items {
		key := strings.ToLower(strings.TrimSpace(item.Result.Company))
		if key == "" {
			key = unknownCompany
		}

		group, ok := groups[key]
		if !ok {
			group = &CompanySummary{
				Company: titleCaser.String(key),
				Tiers:   make(map[string]int),
			}
			groups[key] = group
		}

		r := item.Result
		if r.TotalScore > group.Best || len(group.Postings) == 0 {
			group.Best = r.TotalScore
		}
		group.Tiers[r.Recommendation]++
		group.Postings = append(group.Postings, map[string]string{
			"title":          r.JobTitle,
			"score":          fmt.Sprintf("%.1f", r.TotalScore),
			"recommendation": r.Recommendation,
			"location":       item.Posting.Location,
			"salary":         item.Posting.Salary,
		})
	}

	out := make([]*CompanySummary, 0, len(groups))
	for _, group := range groups {
		out = append(out, group)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Best != out[j].Best {
			return out[i].Best > out[j].Best
		}
		return out[i].Company < out[j].Company
	})

	return out
}

// TopLines formats the first n scored postings, one line each, in batch
// order.
func TopLines(items []*scoring.ScoredPosting, n int) []string {
	if n < 0 {
		n = 0
	}
	if n > len(items) {
		n = len(items)
	}

	lines := make([]string, 0, n)
	for _, item := range items[:n] {
		r := item.Result
		company := r.Company
		if company == "" {
			company = unknownCompany
		}
		lines = append(lines, fmt.Sprintf("%5.1f  %-16s %s (%s)", r.TotalScore, r.Recommendation, r.JobTitle, company))
	}
	return lines
}
