package logging

import (
	"strings"

	"go.uber.org/zap/zapcore"
)

// ParseLevel parses a level name case-insensitively. Empty or unknown names
// yield fallback.
//
// Valid levels: debug, info, warn, warning, error
func ParseLevel(name string, fallback zapcore.Level) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return fallback
	}
}

// ValidLevel reports whether name is a level ParseLevel understands. The
// empty string is valid and means "use the default".
func ValidLevel(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "debug", "info", "warn", "warning", "error":
		return true
	default:
		return false
	}
}
