package scoring

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/google/uuid"

	"github.com/sednabcn/job-search-automation/internal/posting"
)

// ScoredPosting pairs a posting with its score result.
type ScoredPosting struct {
	Posting *posting.Posting
	Result  *Result
}

// Merged builds the output record: every original posting field plus the
// score fields, score fields winning key collisions. The posting's raw map
// is not mutated.
func (sp *ScoredPosting) Merged() map[string]any {
	m := make(map[string]any, len(sp.Posting.Raw)+8)
	for k, v := range sp.Posting.Raw {
		m[k] = v
	}

	r := sp.Result
	m["job_id"] = r.JobID
	m["job_title"] = r.JobTitle
	m["company"] = r.Company
	m["total_score"] = r.TotalScore
	m["breakdown"] = r.Breakdown
	m["recommendation"] = r.Recommendation
	m["scored_at"] = r.ScoredAt
	if len(r.MatchedKeywords) > 0 {
		m["matched_keywords"] = r.MatchedKeywords
	}

	return m
}

// BatchResult is one scoring run over a postings collection. Items are
// sorted by total score descending; equal totals keep their input order.
type BatchResult struct {
	RunID   string
	Items   []*ScoredPosting
	Skipped int
}

// ScoreAll scores every posting in the collection and sorts the results.
// skipped counts input items dropped before scoring (records that were not
// mappings) and is carried into the batch output.
func (s *Scorer) ScoreAll(postings *posting.Postings, skipped int) *BatchResult {
	batch := &BatchResult{
		RunID:   uuid.NewString(),
		Items:   make([]*ScoredPosting, 0, postings.Len()),
		Skipped: skipped,
	}

	if postings != nil {
		for _, p := range postings.Items {
			batch.Items = append(batch.Items, &ScoredPosting{Posting: p, Result: s.Score(p)})
		}
	}

	sort.SliceStable(batch.Items, func(i, j int) bool {
		return batch.Items[i].Result.TotalScore > batch.Items[j].Result.TotalScore
	})

	return batch
}

// ScoreItems decodes a loose JSON array and scores whatever decodes into a
// posting. Non-mapping items end up in the batch's Skipped count.
func (s *Scorer) ScoreItems(items []any) *BatchResult {
	postings, skipped := posting.Decode(items)
	return s.ScoreAll(postings, skipped)
}

func (b *BatchResult) Len() int {
	if b == nil {
		return 0
	}
	return len(b.Items)
}

// MinScore returns the items with a total at or above threshold, keeping
// sort order.
func (b *BatchResult) MinScore(threshold float64) []*ScoredPosting {
	out := make([]*ScoredPosting, 0, b.Len())
	for _, item := range b.Items {
		if item.Result.TotalScore >= threshold {
			out = append(out, item)
		}
	}
	return out
}

// Top returns the first n items, fewer when the batch is smaller.
func (b *BatchResult) Top(n int) []*ScoredPosting {
	if n < 0 {
		n = 0
	}
	if n > b.Len() {
		n = b.Len()
	}
	return b.Items[:n]
}

// Merged returns the ordered merged records for persistence collaborators.
func (b *BatchResult) Merged() []map[string]any {
	out := make([]map[string]any, 0, b.Len())
	for _, item := range b.Items {
		out = append(out, item.Merged())
	}
	return out
}

type batchFile struct {
	RunID   string           `json:"run_id"`
	Count   int              `json:"count"`
	Skipped int              `json:"skipped"`
	Results []map[string]any `json:"results"`
}

// DumpToFile writes the merged records as indented JSON. With an empty path
// a temp file is created; the written path is returned either way.
func (b *BatchResult) DumpToFile(path string) (string, error) {
	var file *os.File
	var err error

	if path == "" {
		file, err = os.CreateTemp("", "scored_jobs_*.json")
	} else {
		file, err = os.Create(path)
	}
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(batchFile{
		RunID:   b.RunID,
		Count:   b.Len(),
		Skipped: b.Skipped,
		Results: b.Merged(),
	}); err != nil {
		return "", err
	}

	return file.Name(), nil
}
