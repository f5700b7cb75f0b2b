package keywords

import (
	"regexp"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// category couples a named dictionary of known terms with the compiled
// pattern that finds them. Categories are matched in declaration order so
// diagnostics stay stable between runs.
type category struct {
	name    string
	terms   []string
	pattern *regexp.Regexp
}

var categories = []category{
	{name: "languages", terms: []string{
		"python", "java", "javascript", "typescript", "golang", "c++", "c#",
		"ruby", "php", "rust", "scala", "kotlin", "swift", "sql", "bash",
	}},
	{name: "frameworks", terms: []string{
		"django", "flask", "fastapi", "react", "angular", "vue", "node.js",
		"nodejs", "express", "spring", "rails", "laravel", ".net", "next.js",
	}},
	{name: "cloud", terms: []string{
		"aws", "azure", "gcp", "google cloud", "docker", "kubernetes",
		"terraform", "ansible", "cloudformation", "serverless", "lambda",
	}},
	{name: "databases", terms: []string{
		"postgresql", "postgres", "mysql", "mongodb", "redis", "elasticsearch",
		"sqlite", "oracle", "cassandra", "dynamodb", "snowflake",
	}},
	{name: "ml", terms: []string{
		"machine learning", "deep learning", "tensorflow", "pytorch", "keras",
		"scikit-learn", "pandas", "numpy", "nlp", "computer vision",
		"data science", "mlops",
	}},
	{name: "tooling", terms: []string{
		"git", "github actions", "gitlab", "jenkins", "circleci", "ci/cd",
		"maven", "gradle", "webpack",
	}},
	{name: "methodology", terms: []string{
		"agile", "scrum", "kanban", "tdd", "bdd", "devops", "microservices",
	}},
	{name: "api", terms: []string{
		"rest", "restful", "graphql", "grpc", "soap", "websocket", "openapi",
	}},
	{name: "os", terms: []string{
		"linux", "unix", "ubuntu", "debian", "windows", "macos",
	}},
}

// genericTerms is the allow-list for the loose word pass: plain 3+ letter
// words kept only when they appear here.
var genericTerms = mapset.NewThreadUnsafeSet(
	"frontend", "backend", "fullstack", "database", "databases", "testing",
	"debugging", "deployment", "architecture", "scalability", "performance",
	"security", "automation", "integration", "monitoring", "optimization",
	"analytics", "infrastructure", "pipeline", "pipelines", "caching",
	"containers", "algorithms", "distributed", "concurrency", "observability",
	"etl", "saas", "orchestration", "virtualization", "configuration",
)

var wordPattern = regexp.MustCompile(`\b[a-z]{3,}\b`)

func init() {
	for i := range categories {
		categories[i].pattern = compileTerms(categories[i].terms)
	}
}

// compileTerms builds a single case-insensitive alternation for the given
// terms. Word boundaries are applied only next to word characters: terms such
// as "c++" or ".net" carry their own edges, and boundary assertions there
// would never match.
func compileTerms(terms []string) *regexp.Regexp {
	parts := make([]string, 0, len(terms))
	for _, term := range terms {
		p := regexp.QuoteMeta(term)
		p = strings.ReplaceAll(p, ` `, `\s+`)
		if isWordChar(rune(term[0])) {
			p = `\b` + p
		}
		if isWordChar(rune(term[len(term)-1])) {
			p += `\b`
		}
		parts = append(parts, p)
	}
	return regexp.MustCompile(`(?i)(?:` + strings.Join(parts, "|") + `)`)
}

func isWordChar(r rune) bool {
	return r == '_' ||
		('a' <= r && r <= 'z') ||
		('A' <= r && r <= 'Z') ||
		('0' <= r && r <= '9')
}
