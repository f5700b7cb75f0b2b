// Package secrets resolves credentials from files, environment variables,
// and inline configuration values.
package secrets

import (
	"fmt"
	"os"
	"strings"
)

// Source describes where a secret value comes from. Resolution order is
// File, then Env, then the inline Value.
type Source struct {
	// Name gives error messages context about which secret failed.
	Name string
	// Value is an inline secret from configuration or flags.
	Value string
	// File points to a file holding the secret.
	File string
	// Env names an environment variable holding the secret.
	Env string
}

func (s Source) label() string {
	if l := strings.TrimSpace(s.Name); l != "" {
		return l
	}
	return "secret"
}

// Load resolves a secret from its source. The result is always trimmed; an
// error means no configured source produced a usable value.
func Load(s Source) (string, error) {
	if path := strings.TrimSpace(s.File); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read %s from file %q: %w", s.label(), path, err)
		}
		val := strings.TrimSpace(string(raw))
		if val == "" {
			return "", fmt.Errorf("%s file %q is empty", s.label(), path)
		}
		return val, nil
	}

	if env := strings.TrimSpace(s.Env); env != "" {
		if val := strings.TrimSpace(os.Getenv(env)); val != "" {
			return val, nil
		}
	}

	if val := strings.TrimSpace(s.Value); val != "" {
		return val, nil
	}

	return "", fmt.Errorf("%s is not configured", s.label())
}
