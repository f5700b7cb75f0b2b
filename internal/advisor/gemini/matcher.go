package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/sednabcn/job-search-automation/internal/advisor"
	"github.com/sednabcn/job-search-automation/internal/keywords"
	"github.com/sednabcn/job-search-automation/internal/logger"
	"github.com/sednabcn/job-search-automation/internal/scoring"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
	Model() string
}

//go:embed prompt.md
var promptTemplate string

const defaultMaxLogLength = 200

// Matcher asks Gemini for a second opinion on a rule-scored posting.
type Matcher struct {
	generator contentGenerator
	minScore  float64
	logger    *zap.Logger
	maxLogLen int
}

// NewMatcher builds a Matcher. minScore > 0 forces Fit to false for
// assessments scored below it.
func NewMatcher(generator contentGenerator, log *zap.Logger, minScore float64) *Matcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Matcher{
		generator: generator,
		minScore:  minScore,
		logger:    log,
		maxLogLen: defaultMaxLogLength,
	}
}

// Assess sends the candidate profile and the merged posting record to the
// model and parses its JSON verdict.
func (m *Matcher) Assess(ctx context.Context, profile *keywords.Profile, item *scoring.ScoredPosting) (*advisor.FitAssessment, error) {
	if item == nil || item.Posting == nil || item.Result == nil {
		return nil, fmt.Errorf("scored posting is required")
	}

	profileJSON, err := json.MarshalIndent(map[string]any{
		"keyword_count": profile.Len(),
		"keywords":      profile.Keywords(),
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal profile payload: %w", err)
	}

	postingJSON, err := json.MarshalIndent(item.Merged(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal posting payload: %w", err)
	}

	prompt := buildPrompt(string(profileJSON), string(postingJSON))

	m.logger.Debug("gemini assess request",
		zap.String("job_id", item.Result.JobID),
		zap.String("model", m.generator.Model()),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", logger.TruncateForLog(prompt, m.maxLogLen)),
	)

	raw, err := m.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	m.logger.Debug("gemini assess response",
		zap.String("job_id", item.Result.JobID),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", logger.TruncateForLog(raw, m.maxLogLen)),
	)

	assessment, err := parseResponse(raw)
	if err != nil {
		return nil, err
	}

	if m.minScore > 0 && assessment.Score < m.minScore {
		m.logger.Debug("set fit to false by score threshold",
			zap.String("job_id", item.Result.JobID),
			zap.Float64("score", assessment.Score),
			zap.Float64("threshold", m.minScore),
		)
		assessment.Fit = false
	}

	assessment.Raw = raw
	return assessment, nil
}

func buildPrompt(profileJSON, postingJSON string) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Candidate profile:\n{{PROFILE_JSON}}\n\nPosting:\n{{POSTING_JSON}}\n\nJSON Response:"
	}
	prompt := strings.ReplaceAll(template, "{{PROFILE_JSON}}", profileJSON)
	prompt = strings.ReplaceAll(prompt, "{{POSTING_JSON}}", postingJSON)
	return prompt
}

// parseResponse turns model output into an assessment. Markdown fences are
// stripped and the payload is narrowed to the outermost object, so verdicts
// wrapped in prose still parse. Fields arrive loosely typed and each one is
// decoded on its own.
func parseResponse(raw string) (*advisor.FitAssessment, error) {
	payload := stripFences(raw)
	if start, end := strings.Index(payload, "{"), strings.LastIndex(payload, "}"); start >= 0 && end > start {
		payload = payload[start : end+1]
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(payload), &fields); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}

	return &advisor.FitAssessment{
		Fit:    boolField(fields["fit"]),
		Score:  scoreField(fields["score"]),
		Reason: textField(fields["reason"]),
	}, nil
}

func stripFences(raw string) string {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "```") {
		return strings.Trim(raw, "`")
	}
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	if idx := strings.LastIndex(raw, "```"); idx >= 0 {
		raw = raw[:idx]
	}
	return strings.TrimSpace(raw)
}

// boolField accepts true/false, "true"/"yes" strings and nonzero numbers.
func boolField(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}
	var b bool
	if json.Unmarshal(raw, &b) == nil {
		return b
	}
	var s string
	if json.Unmarshal(raw, &s) == nil {
		s = strings.ToLower(strings.TrimSpace(s))
		return s == "true" || s == "yes"
	}
	var n float64
	if json.Unmarshal(raw, &n) == nil {
		return n != 0
	}
	return false
}

// scoreField accepts numbers and numeric strings. Anything else counts as 0.
func scoreField(raw json.RawMessage) float64 {
	if len(raw) == 0 {
		return 0
	}
	var n float64
	if json.Unmarshal(raw, &n) == nil {
		return n
	}
	var s string
	if json.Unmarshal(raw, &s) == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return f
		}
	}
	return 0
}

// textField returns strings trimmed; other JSON values come back verbatim.
func textField(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if json.Unmarshal(raw, &s) == nil {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(string(raw))
}
