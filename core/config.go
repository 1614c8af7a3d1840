package core

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"primelab/logging"
)

// Environment variables read by LoadConfig.
const (
	EnvConfigFile = "PRIMELAB_CONFIG"
	EnvRounds     = "PRIMELAB_ROUNDS"
	EnvLimit      = "PRIMELAB_LIMIT"
	EnvSeed       = "PRIMELAB_SEED"
	EnvNumbers    = "PRIMELAB_NUMBERS"
	EnvOutput     = "PRIMELAB_OUTPUT"
	EnvLogLevel   = "PRIMELAB_LOG_LEVEL"
	EnvLogFile    = "PRIMELAB_LOG_FILE"
	EnvDevMode    = "DEV_MODE"
)

// Defaults match the original lab demo.
const (
	DefaultRounds = 10
	DefaultLimit  = 50
	DefaultOutput = OutputText

	// MaxLimit bounds the sieve buffer to a few hundred megabytes.
	MaxLimit = 1 << 28
)

// Report output formats.
const (
	OutputText = "text"
	OutputYAML = "yaml"
	OutputJSON = "json"
)

// DefaultNumbers are tested when none are configured: a prime, two Carmichael
// numbers and the Mersenne prime 2^61-1.
var DefaultNumbers = []string{"17", "561", "1105", "2305843009213693951"}

// Config holds all configuration values
type Config struct {
	// Primality demo
	Rounds  int      `yaml:"rounds"`
	Limit   int      `yaml:"limit"`
	Seed    *int64   `yaml:"seed"`
	Numbers []string `yaml:"numbers"`

	// Output
	Output string `yaml:"output"`

	// Logging
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
	DevMode  bool   `yaml:"dev_mode"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Rounds:  DefaultRounds,
		Limit:   DefaultLimit,
		Numbers: append([]string(nil), DefaultNumbers...),
		Output:  DefaultOutput,
	}
}

// LoadDotEnv loads KEY=VALUE pairs from the given files (".env" when none are
// given) into the process environment. Missing files are skipped; existing
// variables are never overwritten.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return ErrEnvFile(path, err)
		}
	}
	return nil
}

// LoadConfig builds the configuration in increasing order of precedence:
// built-in defaults, the YAML file at path (or $PRIMELAB_CONFIG when path is
// empty), then PRIMELAB_* environment variables. The result is validated.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return ErrConfigFile(path, err)
	}
	// Fields absent from the file keep their current values.
	if err := yaml.Unmarshal(data, c); err != nil {
		return ErrConfigFile(path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	var err error
	if c.Rounds, err = ParseIntEnv(EnvRounds, c.Rounds); err != nil {
		return err
	}
	if c.Limit, err = ParseIntEnv(EnvLimit, c.Limit); err != nil {
		return err
	}
	seed, err := ParseOptionalInt64Env(EnvSeed)
	if err != nil {
		return err
	}
	if seed != nil {
		c.Seed = seed
	}
	if numbers := ParseListEnv(EnvNumbers); len(numbers) > 0 {
		c.Numbers = numbers
	}
	c.Output = strings.ToLower(GetEnvOrDefault(EnvOutput, c.Output))
	c.LogLevel = GetEnvOrDefault(EnvLogLevel, c.LogLevel)
	c.LogFile = GetEnvOrDefault(EnvLogFile, c.LogFile)
	if c.DevMode, err = ParseBoolEnv(EnvDevMode, c.DevMode); err != nil {
		return err
	}
	return nil
}

// Validate checks value ranges. It returns the first violation as a
// *ConfigError.
func (c *Config) Validate() error {
	if c.Rounds < 1 {
		return ErrOutOfRange("rounds", c.Rounds, "at least 1")
	}
	if c.Limit < 0 || c.Limit > MaxLimit {
		return ErrOutOfRange("limit", c.Limit, "between 0 and 268435456")
	}
	switch c.Output {
	case OutputText, OutputYAML, OutputJSON:
	default:
		return ErrInvalidValue("output", c.Output, nil)
	}
	if !logging.ValidLevel(c.LogLevel) {
		return ErrInvalidValue("log_level", c.LogLevel, nil)
	}
	return nil
}
