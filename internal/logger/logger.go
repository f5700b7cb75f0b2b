// Package logger builds the zap logger shared by all commands and carries
// small helpers for attaching structured fields to it.
package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New constructs the process logger. Console encoding by default, JSON when
// requested, debug level behind the --debug flag.
func New(jsonFormat, debug bool) (*zap.Logger, error) {
	cfg := zap.Config{
		Encoding:         "console",
		Level:            zap.NewAtomicLevelAt(zapcore.InfoLevel),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig:    encoderConfig(),
	}
	if jsonFormat {
		cfg.Encoding = "json"
	}
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	log, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	defer log.Sync()
	return log, nil
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:      "ts",
		LevelKey:     "level",
		MessageKey:   "msg",
		CallerKey:    "caller",
		EncodeTime:   zapcore.ISO8601TimeEncoder,
		EncodeLevel:  zapcore.LowercaseLevelEncoder,
		EncodeCaller: zapcore.ShortCallerEncoder,
	}
}

// TruncateForLog caps a string for debug output, marking the cut with an
// ellipsis. Non-positive limits yield an empty string.
func TruncateForLog(s string, n int) string {
	if n <= 0 {
		return ""
	}
	trimmed := []rune(strings.TrimSpace(s))
	if len(trimmed) <= n {
		return string(trimmed)
	}
	return string(trimmed[:n]) + "..."
}
