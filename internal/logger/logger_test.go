package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestTruncateForLog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		limit int
		want  string
	}{
		{"non-positive limit yields nothing", "payload", 0, ""},
		{"fits within limit", "short", 32, "short"},
		{"cut marks the ellipsis", "a longer prompt preview", 8, "a longer..."},
		{"whitespace trimmed before cutting", "   padded value   ", 6, "padded..."},
		{"multibyte runes cut cleanly", "héllo wörld", 7, "héllo w..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := TruncateForLog(tt.input, tt.limit); got != tt.want {
				t.Errorf("TruncateForLog(%q, %d) = %q, want %q", tt.input, tt.limit, got, tt.want)
			}
		})
	}
}

func TestStringFieldsSkipsEmptyEntries(t *testing.T) {
	t.Parallel()

	fields := StringFields(
		StringField{Key: "provider", Value: "gemini"},
		StringField{Key: "  ", Value: "ignored"},
		StringField{Key: "model", Value: "   "},
	)

	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(fields))
	}
	if fields[0].Key != "provider" {
		t.Fatalf("unexpected field key: %q", fields[0].Key)
	}
}

func TestWithFieldsNilLogger(t *testing.T) {
	t.Parallel()

	logger := WithFields(nil, zap.String("key", "value"))
	if logger == nil {
		t.Fatal("expected a usable logger")
	}
}

func TestWithProviderAttachesFields(t *testing.T) {
	t.Parallel()

	core, observed := observer.New(zapcore.InfoLevel)
	log := WithProvider(zap.New(core), "gemini", "model-x")
	log.Info("advisor ready")

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	ctx := entries[0].ContextMap()
	if ctx[FieldProvider] != "gemini" || ctx[FieldModel] != "model-x" {
		t.Fatalf("unexpected entry context: %v", ctx)
	}
}

func TestWithProviderEmptyValues(t *testing.T) {
	t.Parallel()

	base := zap.NewNop()
	if got := WithProvider(base, "", ""); got != base {
		t.Fatal("expected logger to be returned unchanged when no fields apply")
	}
}
