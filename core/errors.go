package core

import (
	"errors"
	"fmt"
)

// ConfigError represents a configuration problem together with an
// instruction for fixing it.
type ConfigError struct {
	Code    string // Error code for programmatic handling
	Message string // Human-readable error message
	Action  string // Actionable instruction for resolution
	Err     error  // Underlying cause, if any
}

func (e *ConfigError) Error() string {
	if e.Action != "" {
		return fmt.Sprintf("%s. %s", e.Message, e.Action)
	}
	return e.Message
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Error codes for configuration errors
const (
	ErrCodeEnvFile      = "ENV_FILE"
	ErrCodeConfigFile   = "CONFIG_FILE"
	ErrCodeInvalidValue = "INVALID_VALUE"
	ErrCodeOutOfRange   = "OUT_OF_RANGE"
)

// ErrEnvFile returns an error for a .env file that exists but cannot be read.
func ErrEnvFile(path string, cause error) *ConfigError {
	return &ConfigError{
		Code:    ErrCodeEnvFile,
		Message: fmt.Sprintf("Cannot load environment file %s: %v", path, cause),
		Action:  "Fix the file syntax or remove it",
		Err:     cause,
	}
}

// ErrConfigFile returns an error for an unreadable or malformed YAML file.
func ErrConfigFile(path string, cause error) *ConfigError {
	return &ConfigError{
		Code:    ErrCodeConfigFile,
		Message: fmt.Sprintf("Cannot load configuration file %s: %v", path, cause),
		Action:  fmt.Sprintf("Check %s or point %s at a valid YAML file", path, EnvConfigFile),
		Err:     cause,
	}
}

// ErrInvalidValue returns an error for a value that cannot be parsed.
func ErrInvalidValue(name, value string, cause error) *ConfigError {
	return &ConfigError{
		Code:    ErrCodeInvalidValue,
		Message: fmt.Sprintf("Invalid value %q for %s", value, name),
		Action:  fmt.Sprintf("Set %s to a valid value", name),
		Err:     cause,
	}
}

// ErrOutOfRange returns an error for a well-formed value outside its bounds.
func ErrOutOfRange(name string, value interface{}, bounds string) *ConfigError {
	return &ConfigError{
		Code:    ErrCodeOutOfRange,
		Message: fmt.Sprintf("%s = %v is out of range", name, value),
		Action:  fmt.Sprintf("%s must be %s", name, bounds),
	}
}

// IsConfigError reports whether err wraps a ConfigError and returns it.
func IsConfigError(err error) (*ConfigError, bool) {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr, true
	}
	return nil, false
}

// GetErrorCode extracts the error code from an error if it's a ConfigError
func GetErrorCode(err error) string {
	if configErr, ok := IsConfigError(err); ok {
		return configErr.Code
	}
	return ""
}
