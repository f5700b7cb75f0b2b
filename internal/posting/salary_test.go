package posting

import "testing"

func TestParseSalary(t *testing.T) {
	tests := []struct {
		name string
		text string
		want *Salary
	}{
		{
			name: "uk range with symbols and separators",
			text: "£80,000 - £100,000 per annum",
			want: &Salary{Min: 80000, Max: 100000, Currency: CurrencyGBP},
		},
		{
			name: "single figure with k suffix",
			text: "80k",
			want: &Salary{Min: 80000, Max: 80000, Currency: CurrencyUSD},
		},
		{
			name: "k suffix range",
			text: "£70k-£90k",
			want: &Salary{Min: 70000, Max: 90000, Currency: CurrencyGBP},
		},
		{
			name: "k suffix ignored above threshold",
			text: "1500k",
			want: &Salary{Min: 1500, Max: 1500, Currency: CurrencyUSD},
		},
		{
			name: "decimal with k suffix",
			text: "up to 87.5k",
			want: &Salary{Min: 87500, Max: 87500, Currency: CurrencyUSD},
		},
		{
			name: "dollar range",
			text: "$90,000 to $120,000",
			want: &Salary{Min: 90000, Max: 120000, Currency: CurrencyUSD},
		},
		{
			name: "unordered figures normalize",
			text: "100000 or 80000 depending on level",
			want: &Salary{Min: 80000, Max: 100000, Currency: CurrencyUSD},
		},
		{
			name: "no numbers",
			text: "competitive",
			want: nil,
		},
		{
			name: "empty",
			text: "  ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseSalary(tt.text)
			if tt.want == nil {
				if got != nil {
					t.Fatalf("ParseSalary(%q) = %+v, want nil", tt.text, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("ParseSalary(%q) = nil, want %+v", tt.text, tt.want)
			}
			if got.Min != tt.want.Min || got.Max != tt.want.Max || got.Currency != tt.want.Currency {
				t.Errorf("ParseSalary(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestSalaryRangePrefersNumericFields(t *testing.T) {
	p := &Posting{Salary: "£50,000", SalaryMin: 70000, SalaryMax: 90000}

	got := p.SalaryRange()
	if got == nil {
		t.Fatal("expected a salary range")
	}
	if got.Min != 70000 || got.Max != 90000 {
		t.Errorf("range = [%v, %v], want [70000, 90000]", got.Min, got.Max)
	}
	if got.Currency != CurrencyGBP {
		t.Errorf("currency = %q, want %q from the salary text", got.Currency, CurrencyGBP)
	}
}

func TestSalaryRangeSingleBound(t *testing.T) {
	p := &Posting{SalaryMax: 90000}

	got := p.SalaryRange()
	if got == nil {
		t.Fatal("expected a salary range")
	}
	if got.Min != 90000 || got.Max != 90000 {
		t.Errorf("range = [%v, %v], want the single bound on both ends", got.Min, got.Max)
	}
}

func TestSalaryRangeMissing(t *testing.T) {
	p := &Posting{Title: "Engineer"}
	if got := p.SalaryRange(); got != nil {
		t.Errorf("SalaryRange() = %+v, want nil for a posting without salary data", got)
	}
}
