// Package config provides configuration loading and validation for the
// validator server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents the server configuration. Values can come from a JSON
// file, from environment variables, or from CLI flags; missing values fall
// back to defaults.
type Config struct {
	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// External validator
	JavaBin        string `json:"java_bin,omitempty"`        // Java executable, default "java"
	Classpath      string `json:"classpath,omitempty"`       // Classpath holding the validator classes
	ValidatorClass string `json:"validator_class,omitempty"` // Entry class, default JsonValidator

	// Visitor counter
	CountFile   string `json:"count_file,omitempty"`   // Path of the JSON count record
	DatabaseURL string `json:"database_url,omitempty"` // When set, the counter lives in Postgres instead
}

// Default returns the built-in configuration defaults.
func Default() Config {
	return Config{
		Port:           5000,
		JavaBin:        "java",
		Classpath:      "libs",
		ValidatorClass: "JsonValidator",
		CountFile:      "visitor_count.json",
	}
}

// FromEnv reads configuration from environment variables. Unset variables
// leave the corresponding field empty so file and default values apply.
func FromEnv() Config {
	cfg := Config{
		JavaBin:        os.Getenv("JAVA_BIN"),
		Classpath:      os.Getenv("VALIDATOR_CLASSPATH"),
		ValidatorClass: os.Getenv("VALIDATOR_CLASS"),
		CountFile:      os.Getenv("COUNT_FILE"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
	}
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Port = p
		}
	}
	return cfg
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. Used to layer flag > env > file > built-in values.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.JavaBin == "" {
		result.JavaBin = defaults.JavaBin
	}
	if result.Classpath == "" {
		result.Classpath = defaults.Classpath
	}
	if result.ValidatorClass == "" {
		result.ValidatorClass = defaults.ValidatorClass
	}
	if result.CountFile == "" {
		result.CountFile = defaults.CountFile
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	return result
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 1 and 65535, got %d", c.Port)
	}
	if c.Classpath == "" {
		return fmt.Errorf("config error: 'classpath' must not be empty")
	}
	if c.ValidatorClass == "" {
		return fmt.Errorf("config error: 'validator_class' must not be empty")
	}
	if c.DatabaseURL == "" && c.CountFile == "" {
		return fmt.Errorf("config error: either 'count_file' or 'database_url' is required")
	}
	return nil
}
