package posting

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	CurrencyGBP = "GBP"
	CurrencyUSD = "USD"
)

// Salary is a normalized annual salary range. A single figure is represented
// with Min == Max.
type Salary struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency"`
}

var salaryToken = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)(k?)`)

// ParseSalary extracts a salary range from free text such as
// "£80,000 - £100,000 per annum" or "80k". Currency symbols and thousands
// separators are stripped before tokenizing; a trailing k multiplies values
// below 1000. Returns nil when the text carries no numbers at all.
// Currency is GBP when a pound sign appears, USD otherwise; other symbols
// are not recognized.
func ParseSalary(text string) *Salary {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	currency := CurrencyUSD
	if strings.Contains(text, "£") {
		currency = CurrencyGBP
	}

	cleaned := strings.NewReplacer("£", "", "$", "", "€", "", ",", "").Replace(text)

	matches := salaryToken.FindAllStringSubmatch(cleaned, -1)
	if len(matches) == 0 {
		return nil
	}

	values := make([]float64, 0, len(matches))
	for _, m := range matches {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		if m[2] != "" && v < 1000 {
			v *= 1000
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return nil
	}

	s := &Salary{Min: values[0], Max: values[0], Currency: currency}
	for _, v := range values[1:] {
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}

	return s
}
