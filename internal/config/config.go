// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/cv-composer/internal/theme"
)

// Defaults used when neither the config file, the environment nor a flag sets a value.
const (
	DefaultPDFEngine            = "chromedp"
	DefaultPDFTimeout           = "60s"
	DefaultPort                 = 8080
	DefaultPDFRequestsPerMinute = 10
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Rendering
	DefaultTheme string `json:"default_theme,omitempty" validate:"omitempty,max=64"` // Preset used when a CV names none
	Template     string `json:"template,omitempty"`                                  // Path to a custom HTML template

	// PDF
	PDFEngine  string `json:"pdf_engine,omitempty" validate:"omitempty,oneof=chromedp rod"` // Browser driver used to print PDFs
	ChromePath string `json:"chrome_path,omitempty"`                                        // Chrome/Chromium binary, empty for auto-detect
	PDFTimeout string `json:"pdf_timeout,omitempty"`                                        // Duration string, e.g. "45s"

	// Server
	DatabaseURL           string `json:"database_url,omitempty"` // PostgreSQL connection URL
	Port                  int    `json:"port,omitempty" validate:"omitempty,min=1,max=65535"`
	RateLimitPDFPerMinute int    `json:"rate_limit_pdf_per_minute,omitempty" validate:"omitempty,min=1"`

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		DefaultTheme:          theme.DefaultPresetID,
		PDFEngine:             DefaultPDFEngine,
		PDFTimeout:            DefaultPDFTimeout,
		Port:                  DefaultPort,
		RateLimitPDFPerMinute: DefaultPDFRequestsPerMinute,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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

// ApplyEnv overlays environment variables on c. Unset variables leave the
// current value alone.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("CV_DEFAULT_THEME"); v != "" {
		c.DefaultTheme = v
	}
	if v := os.Getenv("CV_PDF_ENGINE"); v != "" {
		c.PDFEngine = v
	}
	if v := os.Getenv("CHROME_PATH"); v != "" {
		c.ChromePath = v
	}
	if v := os.Getenv("CV_PDF_TIMEOUT"); v != "" {
		c.PDFTimeout = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT: %v", err)
		}
		c.Port = port
	}
	return nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.DefaultTheme != "" {
		if _, ok := theme.Lookup(c.DefaultTheme); !ok {
			return fmt.Errorf("config error: unknown theme %q", c.DefaultTheme)
		}
	}

	if c.PDFTimeout != "" {
		d, err := time.ParseDuration(c.PDFTimeout)
		if err != nil {
			return fmt.Errorf("config error: invalid 'pdf_timeout': %w", err)
		}
		if d <= 0 {
			return fmt.Errorf("config error: 'pdf_timeout' must be positive")
		}
	}

	// Validate file paths exist (if specified)
	if c.Template != "" {
		if _, err := os.Stat(c.Template); os.IsNotExist(err) {
			return fmt.Errorf("config error: template file not found: %s", c.Template)
		}
	}

	return nil
}

// Timeout returns the parsed PDF timeout, or zero when unset or invalid.
func (c *Config) Timeout() time.Duration {
	d, err := time.ParseDuration(c.PDFTimeout)
	if err != nil || d < 0 {
		return 0
	}
	return d
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.DefaultTheme == "" {
		result.DefaultTheme = defaults.DefaultTheme
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.PDFEngine == "" {
		result.PDFEngine = defaults.PDFEngine
	}
	if result.ChromePath == "" {
		result.ChromePath = defaults.ChromePath
	}
	if result.PDFTimeout == "" {
		result.PDFTimeout = defaults.PDFTimeout
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.RateLimitPDFPerMinute == 0 {
		result.RateLimitPDFPerMinute = defaults.RateLimitPDFPerMinute
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Load reads the optional config file at path, fills defaults, applies the
// environment and validates the result.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	merged := cfg.MergeWithDefaults(Defaults())
	if err := merged.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}
