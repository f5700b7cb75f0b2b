// Package keywords extracts a normalized technical vocabulary from free text:
// CV content on the candidate side, title/description/requirements on the
// posting side. Matching runs against fixed category dictionaries plus an
// allow-list pass over plain words, so the result is a bounded, deduplicated
// set of lowercase terms.
package keywords

import (
	"sort"
	"strings"
	"unicode"

	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer strips diacritics so "résumé" and "resume" normalize to the
// same token before dictionary matching.
var foldTransformer = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Extract returns every dictionary term and allow-listed word found in text.
// An empty set is a valid result for empty or unrecognized input, not an
// error.
func Extract(text string) mapset.Set[string] {
	found := mapset.NewThreadUnsafeSet[string]()
	if strings.TrimSpace(text) == "" {
		return found
	}

	lower := normalize(text)

	for _, c := range categories {
		for _, match := range c.pattern.FindAllString(lower, -1) {
			found.Add(canonical(match))
		}
	}

	for _, word := range wordPattern.FindAllString(lower, -1) {
		if genericTerms.Contains(word) {
			found.Add(word)
		}
	}

	return found
}

func normalize(text string) string {
	folded, _, err := transform.String(foldTransformer, text)
	if err != nil {
		folded = text
	}
	return strings.ToLower(folded)
}

// canonical collapses internal whitespace so multi-word matches line up with
// their dictionary spelling ("machine   learning" -> "machine learning").
func canonical(match string) string {
	return strings.Join(strings.Fields(match), " ")
}

// Profile is the candidate side of scoring: the keyword set extracted once
// from background material, frozen afterwards.
type Profile struct {
	keywords mapset.Set[string]
}

// NewProfile extracts a candidate profile from raw CV text.
func NewProfile(text string) *Profile {
	return &Profile{keywords: Extract(text)}
}

// ProfileFromKeywords builds a profile from an already extracted keyword
// list. Entries are lowercased and blank entries dropped.
func ProfileFromKeywords(kws []string) *Profile {
	set := mapset.NewThreadUnsafeSet[string]()
	for _, kw := range kws {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			set.Add(kw)
		}
	}
	return &Profile{keywords: set}
}

// Len reports the number of keywords in the profile.
func (p *Profile) Len() int {
	if p == nil || p.keywords == nil {
		return 0
	}
	return p.keywords.Cardinality()
}

// Keywords returns the profile vocabulary as a sorted slice.
func (p *Profile) Keywords() []string {
	if p == nil || p.keywords == nil {
		return nil
	}
	kws := p.keywords.ToSlice()
	sort.Strings(kws)
	return kws
}

// Sample returns up to n keywords for diagnostics output.
func (p *Profile) Sample(n int) []string {
	if n < 0 {
		n = 0
	}
	kws := p.Keywords()
	if len(kws) > n {
		kws = kws[:n]
	}
	return kws
}

// Match returns the profile keywords found as substrings of text, sorted.
// The text is lowercased here; keywords are stored lowercase already.
func (p *Profile) Match(text string) []string {
	if p.Len() == 0 || text == "" {
		return nil
	}

	lower := strings.ToLower(text)
	var matched []string
	for _, kw := range p.Keywords() {
		if strings.Contains(lower, kw) {
			matched = append(matched, kw)
		}
	}
	return matched
}
