package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/chronoarc/marvel-go/internal/errors"
	"github.com/chronoarc/marvel-go/internal/logger"
)

// DefaultBaseURL is the public endpoint of the catalog API.
const DefaultBaseURL = "https://gateway.marvel.com/v1/public"

// Config represents the complete configuration for the client and CLI
type Config struct {
	BaseURL      string            `yaml:"base_url"`
	Timeout      time.Duration     `yaml:"timeout"`
	DefaultQuery map[string]string `yaml:"default_query"`
	Schemas      []string          `yaml:"schemas"`
	Log          logger.Config     `yaml:"log"`
	Output       OutputConfig      `yaml:"output"`
}

// OutputConfig controls how the CLI prints JSON
type OutputConfig struct {
	Compact bool `yaml:"compact"`
}

// Overrides carries values given on the command line. Empty values leave
// the file configuration untouched.
type Overrides struct {
	BaseURL  string
	Timeout  time.Duration
	LogLevel string
	Schemas  []string
	Compact  bool
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	cfg := &Config{
		BaseURL:      DefaultBaseURL,
		Timeout:      30 * time.Second,
		DefaultQuery: make(map[string]string),
		Schemas:      []string{},
	}
	cfg.Log.ApplyDefaults()
	return cfg
}

// LoadConfig loads configuration from a YAML file. Relative schema paths
// are resolved against the file's directory.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewConfigError("failed to read config file", err)
	}

	// Start with defaults
	cfg := NewConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.NewConfigError("failed to parse config file", err)
	}
	cfg.Log.ApplyDefaults()

	dir := filepath.Dir(path)
	for i, schema := range cfg.Schemas {
		if !filepath.IsAbs(schema) {
			cfg.Schemas[i] = filepath.Join(dir, schema)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".marvel.yml", ".marvel.yaml", "marvel.yml", "marvel.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return ""
}

// Validate checks the configuration for values the client cannot use
func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.NewConfigError(fmt.Sprintf("base_url must be an absolute URL (got: %q)", c.BaseURL), err)
	}
	if c.Timeout < 0 {
		return errors.NewConfigError(fmt.Sprintf("timeout must not be negative (got: %s)", c.Timeout), nil)
	}
	if err := c.Log.Validate(); err != nil {
		return errors.NewConfigError("invalid log settings", err)
	}
	return nil
}

// Query returns the default query parameters as url.Values
func (c *Config) Query() url.Values {
	q := make(url.Values, len(c.DefaultQuery))
	for k, v := range c.DefaultQuery {
		q.Set(k, v)
	}
	return q
}

// Apply merges command line overrides into the config
func (c *Config) Apply(o Overrides) {
	if o.BaseURL != "" {
		c.BaseURL = o.BaseURL
	}
	if o.Timeout > 0 {
		c.Timeout = o.Timeout
	}
	if o.LogLevel != "" {
		c.Log.Level = o.LogLevel
	}
	c.Schemas = append(c.Schemas, o.Schemas...)
	if o.Compact {
		c.Output.Compact = true
	}
}

// LoadConfigWithCLI loads the config file, if any, and applies CLI overrides.
// An empty configPath falls back to FindConfigFile.
func LoadConfigWithCLI(configPath string, o Overrides) (*Config, error) {
	if configPath == "" {
		configPath = FindConfigFile()
	}

	cfg := NewConfig()
	if configPath != "" {
		fileConfig, err := LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = fileConfig
	}

	cfg.Apply(o)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
