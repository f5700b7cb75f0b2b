package logger

import (
	"strings"

	"go.uber.org/zap"
)

// Structured field keys shared by advisor log entries.
const (
	FieldProvider = "advisor_provider"
	FieldModel    = "advisor_model"
)

// StringField is one key/value pair destined for a structured log entry.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts pairs into zap fields. Pairs whose key or value trims
// to nothing are dropped so sparse metadata never produces empty fields.
func StringFields(pairs ...StringField) []zap.Field {
	out := make([]zap.Field, 0, len(pairs))
	for _, p := range pairs {
		key, value := strings.TrimSpace(p.Key), strings.TrimSpace(p.Value)
		if key == "" || value == "" {
			continue
		}
		out = append(out, zap.String(key, value))
	}
	return out
}

// WithFields attaches fields to the logger. A nil logger becomes a no-op
// logger; with no fields the logger comes back as is.
func WithFields(log *zap.Logger, fields ...zap.Field) *zap.Logger {
	if log == nil {
		log = zap.NewNop()
	}
	if len(fields) == 0 {
		return log
	}
	return log.With(fields...)
}

// WithProvider tags the logger with the advisor provider and model. Empty
// values are skipped to keep entries compact.
func WithProvider(log *zap.Logger, provider, model string) *zap.Logger {
	return WithFields(log, StringFields(
		StringField{Key: FieldProvider, Value: provider},
		StringField{Key: FieldModel, Value: model},
	)...)
}
