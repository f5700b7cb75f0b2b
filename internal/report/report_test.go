package report

import (
	"strings"
	"testing"

	"github.com/sednabcn/job-search-automation/internal/posting"
	"github.com/sednabcn/job-search-automation/internal/scoring"
)

func scored(id, title, company string, total float64) *scoring.ScoredPosting {
	return &scoring.ScoredPosting{
		Posting: &posting.Posting{ID: id, Title: title, Company: company},
		Result: &scoring.Result{
			JobID:          id,
			JobTitle:       title,
			Company:        company,
			TotalScore:     total,
			Recommendation: scoring.Recommend(total),
		},
	}
}

func TestByCompanyGroupsAndSorts(t *testing.T) {
	items := []*scoring.ScoredPosting{
		scored("1", "Backend Engineer", "acme ltd", 62.0),
		scored("2", "Platform Engineer", "Globex", 81.5),
		scored("3", "Data Engineer", "ACME LTD", 74.0),
		scored("4", "SRE", "", 55.0),
	}

	groups := ByCompany(items)

	if len(groups) != 3 {
		t.Fatalf("got %d groups, want 3", len(groups))
	}
	if groups[0].Company != "Globex" || groups[0].Best != 81.5 {
		t.Errorf("first group = %s (%v), want Globex with 81.5", groups[0].Company, groups[0].Best)
	}

	acme := groups[1]
	if acme.Company != "Acme Ltd" {
		t.Fatalf("second group = %s, want the title-cased merged Acme Ltd", acme.Company)
	}
	if acme.Best != 74.0 {
		t.Errorf("acme best = %v, want 74.0", acme.Best)
	}
	if len(acme.Postings) != 2 {
		t.Errorf("acme postings = %d, want case-insensitive grouping to merge both", len(acme.Postings))
	}
	if acme.Tiers[scoring.RecommendationGoodMatch] != 1 || acme.Tiers[scoring.RecommendationModerateMatch] != 1 {
		t.Errorf("acme tiers = %v, want one good and one moderate", acme.Tiers)
	}

	if groups[2].Company != "Unknown" {
		t.Errorf("last group = %s, want Unknown for a missing company", groups[2].Company)
	}
}

func TestByCompanyEmpty(t *testing.T) {
	if groups := ByCompany(nil); len(groups) != 0 {
		t.Errorf("ByCompany(nil) = %d groups, want 0", len(groups))
	}
}

func TestTopLines(t *testing.T) {
	items := []*scoring.ScoredPosting{
		scored("1", "Platform Engineer", "Globex", 81.5),
		scored("2", "Backend Engineer", "Acme", 62.0),
	}

	lines := TopLines(items, 1)
	if len(lines) != 1 {
		t.Fatalf("TopLines(1) = %d lines, want 1", len(lines))
	}
	if !strings.Contains(lines[0], "Platform Engineer") || !strings.Contains(lines[0], "81.5") {
		t.Errorf("line = %q, want title and score", lines[0])
	}

	if got := TopLines(items, 10); len(got) != 2 {
		t.Errorf("TopLines(10) = %d lines, want all 2", len(got))
	}
	if got := TopLines(items, -1); len(got) != 0 {
		t.Errorf("TopLines(-1) = %d lines, want 0", len(got))
	}
}
