// Package config provides configuration management for the headlines scraper.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingPrimaryURL   = errors.New("primary.url is required")
	ErrMissingSecondaryURL = errors.New("secondary.url is required")
	ErrNoSelectors         = errors.New("at least one selector is required")
	ErrInvalidTimeout      = errors.New("fetch.timeout_sec must be at least 1")
	ErrInvalidBufferSize   = errors.New("fetch.buffer_size_kb must be at least 1")
	ErrInvalidMinLength    = errors.New("normalize.min_length must be at least 1")
	ErrMissingOutputPath   = errors.New("output.path is required")
	ErrInvalidTopN         = errors.New("output.top_n must be at least 1")
	ErrInvalidLogLevel     = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config represents the complete scraper configuration.
type Config struct {
	Scraper ScraperConfig `yaml:"scraper"`
}

// ScraperConfig contains the pipeline settings.
type ScraperConfig struct {
	Primary   SourceConfig    `yaml:"primary"`
	Secondary SourceConfig    `yaml:"secondary"`
	Fetch     FetchConfig     `yaml:"fetch"`
	Normalize NormalizeConfig `yaml:"normalize"`
	Output    OutputConfig    `yaml:"output"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// SourceConfig describes one news source and its selector strategy.
type SourceConfig struct {
	Name      string   `yaml:"name"`
	URL       string   `yaml:"url"`
	Selectors []string `yaml:"selectors"`
}

// FetchConfig defines per-request behavior.
type FetchConfig struct {
	TimeoutSec   int    `yaml:"timeout_sec"`
	UserAgent    string `yaml:"user_agent"`
	BufferSizeKb int    `yaml:"buffer_size_kb"`
}

// GetTimeout returns the per-fetch timeout duration.
func (f FetchConfig) GetTimeout() time.Duration {
	return time.Duration(f.TimeoutSec) * time.Second
}

// NormalizeConfig defines headline filtering rules.
type NormalizeConfig struct {
	MinLength int `yaml:"min_length"`
}

// OutputConfig defines report output behavior.
type OutputConfig struct {
	Path string `yaml:"path"`
	TopN int    `yaml:"top_n"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the built-in configuration: BBC News front page as
// the primary source with Reuters as the fallback.
func Default() *Config {
	return &Config{
		Scraper: ScraperConfig{
			Primary: SourceConfig{
				Name: "BBC News",
				URL:  "https://www.bbc.com/news",
				Selectors: []string{
					`h2[data-testid="card-headline"]`,
					`h3[data-testid="card-headline"]`,
					`h2.sc-4fedabc7-3`,
					`h3.sc-4fedabc7-3`,
					`.media__title a`,
					`.gs-c-promo-heading__title`,
				},
			},
			Secondary: SourceConfig{
				Name: "Reuters",
				URL:  "https://www.reuters.com",
				Selectors: []string{
					`h3[data-testid="Heading"]`,
					`.story-title`,
					`h3.text__text__1FZLe`,
					`a[data-testid="Heading"]`,
				},
			},
			Fetch: FetchConfig{
				TimeoutSec:   10,
				UserAgent:    "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
				BufferSizeKb: 2048,
			},
			Normalize: NormalizeConfig{
				MinLength: 10,
			},
			Output: OutputConfig{
				Path: "news_headlines.txt",
				TopN: 15,
			},
			Logging: LoggingConfig{
				Level: "info",
			},
		},
	}
}

// LoadConfig loads configuration from a YAML file. Fields absent from
// the file keep their built-in defaults.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// ApplyEnvOverrides applies NEWS_* environment variables on top of the
// loaded configuration. Invalid numeric values are ignored.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("NEWS_OUTPUT_PATH"); v != "" {
		c.Scraper.Output.Path = v
	}

	if v := os.Getenv("NEWS_USER_AGENT"); v != "" {
		c.Scraper.Fetch.UserAgent = v
	}

	if v := os.Getenv("NEWS_TIMEOUT_SEC"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Scraper.Fetch.TimeoutSec = n
		}
	}

	if v := os.Getenv("NEWS_TOP_N"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Scraper.Output.TopN = n
		}
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Scraper.Primary.URL == "" {
		return ErrMissingPrimaryURL
	}

	if len(c.Scraper.Primary.Selectors) == 0 {
		return fmt.Errorf("%w: primary", ErrNoSelectors)
	}

	if c.Scraper.Secondary.URL == "" {
		return ErrMissingSecondaryURL
	}

	if len(c.Scraper.Secondary.Selectors) == 0 {
		return fmt.Errorf("%w: secondary", ErrNoSelectors)
	}

	if c.Scraper.Fetch.TimeoutSec < 1 {
		return ErrInvalidTimeout
	}

	if c.Scraper.Fetch.BufferSizeKb < 1 {
		return ErrInvalidBufferSize
	}

	if c.Scraper.Normalize.MinLength < 1 {
		return ErrInvalidMinLength
	}

	if c.Scraper.Output.Path == "" {
		return ErrMissingOutputPath
	}

	if c.Scraper.Output.TopN < 1 {
		return ErrInvalidTopN
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Scraper.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Primary: %s, Secondary: %s, Output: %s, TopN: %d}",
		c.Scraper.Primary.Name,
		c.Scraper.Secondary.Name,
		c.Scraper.Output.Path,
		c.Scraper.Output.TopN,
	)
}
