// Package config provides configuration management for the docuscan application.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/platinummonkey/docuscan/internal/doctype"
)

// Config holds all configuration settings for the docuscan application.
// Configuration precedence: CLI flags > Environment variables > Config file > Defaults
type Config struct {
	// ConfidenceThreshold is the minimum overall extraction confidence
	// for a scan to be reported as a success (0.0-1.0)
	ConfidenceThreshold float64

	// OCRLanguages specifies the languages to use for OCR (e.g., "eng", "eng+hin")
	OCRLanguages string

	// AllowedTypes restricts classification to the listed document type
	// ids (empty means all types)
	AllowedTypes []string

	// OutputFormat is the CLI result encoding (json or yaml)
	OutputFormat string

	// LogLevel controls logging verbosity (debug, info, warn, error)
	LogLevel string

	// LogFormat selects the log encoding (json or console)
	LogFormat string

	// ListenAddr is the HTTP server bind address for serve mode
	ListenAddr string
}

// Load reads configuration from multiple sources and returns a Config instance.
// Sources are checked in this order: CLI flags > env vars > config file > defaults
func Load(configFile string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	// Set up config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		// Look for config in home directory
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(home)
			v.SetConfigName(".docuscan")
			v.SetConfigType("yaml")
		}
	}

	// Read config file if it exists (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK - we'll use env vars and defaults
	}

	// Enable environment variable support
	v.SetEnvPrefix("DOCUSCAN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	// Build config struct
	config := &Config{
		ConfidenceThreshold: v.GetFloat64("confidence-threshold"),
		OCRLanguages:        v.GetString("ocr-languages"),
		AllowedTypes:        v.GetStringSlice("allowed-types"),
		OutputFormat:        v.GetString("output-format"),
		LogLevel:            v.GetString("log-level"),
		LogFormat:           v.GetString("log-format"),
		ListenAddr:          v.GetString("listen-addr"),
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("confidence-threshold", 0.8)
	v.SetDefault("ocr-languages", "eng")
	v.SetDefault("allowed-types", []string{})
	v.SetDefault("output-format", "json")
	v.SetDefault("log-level", "info")
	v.SetDefault("log-format", "json")
	v.SetDefault("listen-addr", ":8080")
}

// Validate checks that the configuration is valid and internally consistent
func (c *Config) Validate() error {
	// Validate confidence threshold range
	if c.ConfidenceThreshold <= 0.0 || c.ConfidenceThreshold > 1.0 {
		return fmt.Errorf("confidence-threshold must be in (0.0, 1.0], got %f", c.ConfidenceThreshold)
	}

	// Validate OCR languages
	if c.OCRLanguages == "" {
		return fmt.Errorf("ocr-languages cannot be empty")
	}

	// Validate allowed document types against the known set
	for i, id := range c.AllowedTypes {
		id = strings.ToLower(strings.TrimSpace(id))
		if _, ok := doctype.FromID(id); !ok {
			return fmt.Errorf("unknown document type %q in allowed-types", c.AllowedTypes[i])
		}
		c.AllowedTypes[i] = id
	}

	// Validate output format
	validFormats := map[string]bool{
		"json": true,
		"yaml": true,
	}
	if !validFormats[strings.ToLower(c.OutputFormat)] {
		return fmt.Errorf("invalid output-format %q, must be one of: json, yaml", c.OutputFormat)
	}
	c.OutputFormat = strings.ToLower(c.OutputFormat)

	// Validate log level
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log-level %q, must be one of: debug, info, warn, error", c.LogLevel)
	}
	c.LogLevel = strings.ToLower(c.LogLevel)

	// Validate log format
	validLogFormats := map[string]bool{
		"json":    true,
		"console": true,
	}
	if !validLogFormats[strings.ToLower(c.LogFormat)] {
		return fmt.Errorf("invalid log-format %q, must be one of: json, console", c.LogFormat)
	}
	c.LogFormat = strings.ToLower(c.LogFormat)

	// Validate listen address
	if c.ListenAddr == "" {
		return fmt.Errorf("listen-addr cannot be empty")
	}

	return nil
}

// AllowedDocTypes resolves the configured type ids into document types.
// An empty configuration means no restriction and returns nil.
func (c *Config) AllowedDocTypes() []doctype.Type {
	if len(c.AllowedTypes) == 0 {
		return nil
	}
	types := make([]doctype.Type, 0, len(c.AllowedTypes))
	for _, id := range c.AllowedTypes {
		if dt, ok := doctype.FromID(id); ok {
			types = append(types, dt)
		}
	}
	return types
}

// String returns a string representation of the configuration
func (c *Config) String() string {
	return fmt.Sprintf(`Configuration:
  ConfidenceThreshold: %.2f
  OCRLanguages: %s
  AllowedTypes: %v
  OutputFormat: %s
  LogLevel: %s
  LogFormat: %s
  ListenAddr: %s`,
		c.ConfidenceThreshold,
		c.OCRLanguages,
		c.AllowedTypes,
		c.OutputFormat,
		c.LogLevel,
		c.LogFormat,
		c.ListenAddr,
	)
}
