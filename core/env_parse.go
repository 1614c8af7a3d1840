package core

import (
	"os"
	"strconv"
	"strings"
	"unicode"
)

// GetEnvOrDefault returns the value of an environment variable or a default value.
func GetEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

// ParseIntEnv parses an environment variable as an integer. An unset or empty
// variable yields defaultValue; a malformed one yields a *ConfigError.
func ParseIntEnv(key string, defaultValue int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue, ErrInvalidValue(key, value, err)
	}
	return n, nil
}

// ParseOptionalInt64Env parses an environment variable as an int64. It
// returns nil when the variable is unset, so callers can tell "not set" from 0.
func ParseOptionalInt64Env(key string) (*int64, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil, ErrInvalidValue(key, value, err)
	}
	return &n, nil
}

// ParseBoolEnv parses an environment variable as a boolean.
// Accepts case-insensitive: "true", "1", "yes", "on" as true values.
// Accepts case-insensitive: "false", "0", "no", "off" as false values.
func ParseBoolEnv(key string, defaultValue bool) (bool, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue, nil
	}

	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true, nil
	case "false", "0", "no", "off":
		return false, nil
	default:
		return defaultValue, ErrInvalidValue(key, value, nil)
	}
}

// ParseListEnv splits an environment variable on commas and whitespace.
// Empty items are dropped; an unset variable yields nil.
func ParseListEnv(key string) []string {
	return strings.FieldsFunc(os.Getenv(key), func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}
