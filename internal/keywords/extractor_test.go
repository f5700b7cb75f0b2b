package keywords

import (
	"reflect"
	"testing"
)

func TestExtractCategories(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect []string
		absent []string
	}{
		{
			name:   "case insensitive language match",
			input:  "Strong PYTHON and Java experience",
			expect: []string{"java", "python"},
		},
		{
			name:   "javascript does not leak java",
			input:  "We use JavaScript on the frontend",
			expect: []string{"frontend", "javascript"},
			absent: []string{"java"},
		},
		{
			name:   "symbol bearing terms",
			input:  "Experienced in C++ and C#, some ASP.NET too",
			expect: []string{".net", "c#", "c++"},
		},
		{
			name:   "multi word terms collapse whitespace",
			input:  "machine  learning pipelines in google\tcloud",
			expect: []string{"google cloud", "machine learning", "pipelines"},
		},
		{
			name:   "word boundaries hold",
			input:  "resting on restful laurels",
			expect: []string{"restful"},
			absent: []string{"rest"},
		},
		{
			name:   "generic words filtered by allow list",
			input:  "highly motivated engineer focused on scalability",
			expect: []string{"scalability"},
			absent: []string{"motivated", "engineer", "highly"},
		},
		{
			name:   "pdf ligature folds before matching",
			input:  "conﬁguration management",
			expect: []string{"configuration"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Extract(tt.input)
			for _, kw := range tt.expect {
				if !got.Contains(kw) {
					t.Fatalf("expected %q in %v", kw, got.ToSlice())
				}
			}
			for _, kw := range tt.absent {
				if got.Contains(kw) {
					t.Fatalf("did not expect %q in %v", kw, got.ToSlice())
				}
			}
		})
	}
}

func TestExtractEmptyInput(t *testing.T) {
	t.Parallel()

	if got := Extract("   "); !got.IsEmpty() {
		t.Fatalf("expected empty set, got %v", got.ToSlice())
	}
}

func TestNewProfileDeduplicates(t *testing.T) {
	t.Parallel()

	profile := NewProfile("Python python PYTHON docker")
	want := []string{"docker", "python"}
	if got := profile.Keywords(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestProfileFromKeywordsNormalizes(t *testing.T) {
	t.Parallel()

	profile := ProfileFromKeywords([]string{" Python ", "AWS", "", "aws"})
	want := []string{"aws", "python"}
	if got := profile.Keywords(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if profile.Len() != 2 {
		t.Fatalf("expected 2 keywords, got %d", profile.Len())
	}
}

func TestProfileMatch(t *testing.T) {
	t.Parallel()

	profile := ProfileFromKeywords([]string{"python", "aws", "docker", "kafka"})
	matched := profile.Match("Senior Python Engineer. Must know AWS and Docker.")

	want := []string{"aws", "docker", "python"}
	if !reflect.DeepEqual(matched, want) {
		t.Fatalf("expected %v, got %v", want, matched)
	}
}

func TestProfileMatchEmptyProfile(t *testing.T) {
	t.Parallel()

	var empty *Profile
	if got := empty.Match("anything"); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
	if empty.Len() != 0 {
		t.Fatalf("expected 0 length for nil profile")
	}
}

func TestProfileSample(t *testing.T) {
	t.Parallel()

	profile := ProfileFromKeywords([]string{"python", "aws", "docker"})
	sample := profile.Sample(2)
	if len(sample) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(sample))
	}
	if sample[0] != "aws" || sample[1] != "docker" {
		t.Fatalf("expected sorted sample, got %v", sample)
	}
}
