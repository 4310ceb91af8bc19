package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/localsite/internal/foundation/errors"
)

// DefaultPath is the configuration file used when none is given.
const DefaultPath = "localsite.yaml"

// Config represents the application configuration.
type Config struct {
	Version string        `yaml:"version"`
	Site    SiteConfig    `yaml:"site"`
	Theme   ThemeConfig   `yaml:"theme"`
	Output  OutputConfig  `yaml:"output"`
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// SiteConfig controls which pages and sections are generated and which
// business fields are mandatory.
type SiteConfig struct {
	// BaseURL is used when a profile does not carry its own base_url.
	BaseURL        string         `yaml:"base_url,omitempty"`
	RequiredFields []string       `yaml:"required_fields"`
	Pages          PagesConfig    `yaml:"pages"`
	Sections       SectionsConfig `yaml:"sections"`
	LegalFormat    LegalFormat    `yaml:"legal_format"`
	ServiceBlurb   string         `yaml:"service_blurb,omitempty"`
	HeroText       string         `yaml:"hero_text,omitempty"`
	Attribution    string         `yaml:"attribution,omitempty"`
	CopyrightYear  int            `yaml:"copyright_year,omitempty"`
}

// PagesConfig toggles optional pages.
type PagesConfig struct {
	NotFound bool `yaml:"not_found"`
}

// SectionsConfig toggles optional home page sections.
type SectionsConfig struct {
	Testimonials bool `yaml:"testimonials"`
	FAQ          bool `yaml:"faq"`
}

// ThemeConfig holds default theming, overridden per profile.
type ThemeConfig struct {
	PrimaryColor string `yaml:"primary_color"`
	AccentColor  string `yaml:"accent_color"`
	FontFamily   string `yaml:"font_family"`
}

// OutputConfig controls where the CLI writes generated sites.
type OutputConfig struct {
	Directory string       `yaml:"directory"`
	Format    OutputFormat `yaml:"format"`
}

// ServerConfig configures the HTTP download service.
type ServerConfig struct {
	Addr         string `yaml:"addr"`
	MaxBodyBytes int64  `yaml:"max_body_bytes"`
	ReadTimeout  string `yaml:"read_timeout"`
}

// LoggingConfig selects level and handler format.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level"`
	Format LogFormat `yaml:"format"`
}

// MetricsConfig toggles the Prometheus recorder and its endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Load reads, expands, defaults and validates the configuration at path.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if err := loadEnvFile(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	cfg := preset()
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		slog.Debug("Configuration file not found, using defaults", "path", path)
	case err != nil:
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to read config file").
			WithContext("path", path).Build()
	default:
		if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), cfg); err != nil {
			return nil, errors.WrapError(err, errors.CategoryConfig, "failed to parse config file").
				WithContext("path", path).Build()
		}
	}

	if err := applyDefaults(cfg); err != nil {
		return nil, err
	}
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns a fully defaulted configuration without reading any file.
func Default() *Config {
	cfg := preset()
	// Defaults never fail on an empty config.
	_ = applyDefaults(cfg)
	return cfg
}

// Init writes an example configuration file.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.ConfigError(fmt.Sprintf("configuration file already exists: %s (use --force to overwrite)", path)).
			WithContext("path", path).Build()
	}

	example := Default()
	example.Site.BaseURL = "https://example.com/"
	example.Site.Attribution = "Optimized for local search."

	data, err := yaml.Marshal(example)
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "failed to marshal config").Build()
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write config file").
			WithContext("path", path).Build()
	}
	return nil
}
