// Package config loads oramactl configuration from YAML files with
// ${VAR} environment expansion and environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables recognized by Load. The connection variables
// override their file counterparts; ORAMACTL_CONFIG names the file itself.
const (
	EnvConfigPath   = "ORAMACTL_CONFIG"
	EnvURL          = "ORAMACORE_URL"
	EnvMasterAPIKey = "ORAMACORE_MASTER_API_KEY"
	EnvWriteAPIKey  = "ORAMACORE_WRITE_API_KEY"
	EnvReadAPIKey   = "ORAMACORE_READ_API_KEY"
	EnvCollection   = "ORAMACORE_COLLECTION"
)

// DefaultURL is where a locally running service listens.
const DefaultURL = "http://localhost:8080"

// Config holds the oramactl configuration.
type Config struct {
	URL          string        `yaml:"url"`
	MasterAPIKey string        `yaml:"master_api_key"`
	WriteAPIKey  string        `yaml:"write_api_key"`
	ReadAPIKey   string        `yaml:"read_api_key"`
	Collection   string        `yaml:"collection"`
	Logging      LoggingConfig `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error (default: info)
	Format string `yaml:"format"` // console, json (default: console)
}

// Load reads configuration from a YAML file. With an empty path the
// default locations are searched and a missing file is not an error;
// an explicitly named file (argument or $ORAMACTL_CONFIG) must exist.
// Environment variables override file values in either case.
func Load(path string) (Config, error) {
	var cfg Config

	path, required := resolveConfigPath(path)
	if path != "" {
		data, err := os.ReadFile(filepath.Clean(path))
		switch {
		case err == nil:
			data = expandEnvVars(data)
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		case required || !os.IsNotExist(err):
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.URL == "" {
		c.URL = DefaultURL
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}

func (c *Config) applyEnv() {
	overlay(&c.URL, EnvURL)
	overlay(&c.MasterAPIKey, EnvMasterAPIKey)
	overlay(&c.WriteAPIKey, EnvWriteAPIKey)
	overlay(&c.ReadAPIKey, EnvReadAPIKey)
	overlay(&c.Collection, EnvCollection)
}

func overlay(dst *string, envVar string) {
	if v := os.Getenv(envVar); v != "" {
		*dst = v
	}
}

// resolveConfigPath picks the config file to read. Explicitly named files
// must exist; discovered ones are optional.
func resolveConfigPath(path string) (string, bool) {
	if path != "" {
		return path, true
	}
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path, true
	}
	if fileExists("oramactl.yaml") {
		return "oramactl.yaml", false
	}
	if dir, err := os.UserConfigDir(); err == nil {
		if path := filepath.Join(dir, "oramactl", "config.yaml"); fileExists(path) {
			return path, false
		}
	}
	return "", false
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
