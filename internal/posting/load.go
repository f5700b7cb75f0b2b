package posting

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
)

// Decode converts a loosely typed JSON array into a Postings collection.
// Items that are not JSON objects cannot carry posting fields and are
// skipped; the count of skipped items is returned for reporting. Field-level
// junk inside an object degrades to zero values instead of rejecting the
// item.
func Decode(items []any) (*Postings, int) {
	postings := &Postings{Items: make([]*Posting, 0, len(items))}
	skipped := 0

	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			skipped++
			continue
		}
		postings.Items = append(postings.Items, FromMap(m))
	}

	return postings, skipped
}

// FromMap decodes a single posting object. Mismatched fields are coerced
// where possible (numeric salaries into the text field and back) and
// dropped otherwise, so the result is always usable.
func FromMap(m map[string]any) *Posting {
	p := &Posting{Raw: m}

	cfg := &mapstructure.DecoderConfig{
		Metadata:         nil,
		Result:           p,
		TagName:          "json",
		WeaklyTypedInput: true,
	}

	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return p
	}

	// A decode error still leaves the convertible fields populated.
	_ = decoder.Decode(m)

	return p
}

// LoadFromFile reads a postings file written by the scraper side: either a
// bare JSON array or an object wrapping the array under "items", "jobs" or
// "postings".
func LoadFromFile(path string) (*Postings, int, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("unable to read postings file: %w", err)
	}

	var arr []any
	if err := json.Unmarshal(content, &arr); err == nil {
		p, skipped := Decode(arr)
		return p, skipped, nil
	}

	var wrapper map[string]any
	if err := json.Unmarshal(content, &wrapper); err != nil {
		return nil, 0, fmt.Errorf("unable to parse postings file %s: %w", path, err)
	}

	for _, key := range []string{"items", "jobs", "postings"} {
		if arr, ok := wrapper[key].([]any); ok {
			p, skipped := Decode(arr)
			return p, skipped, nil
		}
	}

	return nil, 0, fmt.Errorf("postings file %s holds no recognizable items array", path)
}

// DumpToFile writes the collection as indented JSON wrapped under "items",
// the same shape LoadFromFile accepts. An empty path dumps to a temp file.
// The written filename is returned.
func (p *Postings) DumpToFile(path string) (string, error) {
	var file *os.File
	var err error
	if path == "" {
		file, err = os.CreateTemp("", "postings_*.json")
	} else {
		file, err = os.Create(path)
	}
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return "", err
	}
	return file.Name(), nil
}
