package posting

import (
	"regexp"
	"strings"
	"time"
)

// Scrapers emit dates in whatever shape the source site used. Comparisons
// are timezone-naive, so an explicit offset is stripped before parsing.
// Only an offset following a time component counts: a bare -hhmm tail is
// indistinguishable from the 4-digit year of a dashed day-first date.
var zoneSuffix = regexp.MustCompile(`(\d{2}:\d{2}(?::\d{2})?)\s*(?:Z|[+-]\d{2}:?\d{2})\s*$`)

var postedDateLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"02/01/2006",
	"02-01-2006",
	"January 2, 2006",
	"2 January 2006",
}

// ParsePostedDate parses a posting date string. The second return is false
// when the value is missing or matches no known layout; callers treat that
// as unknown rather than an error.
func ParsePostedDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	naive := strings.TrimSpace(zoneSuffix.ReplaceAllString(raw, "$1"))

	for _, layout := range postedDateLayouts {
		if t, err := time.Parse(layout, naive); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// PostedAt resolves the posting's date field.
func (p *Posting) PostedAt() (time.Time, bool) {
	return ParsePostedDate(p.PostedDate)
}
