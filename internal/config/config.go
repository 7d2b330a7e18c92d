package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"skilledstack.dev/internal/behavior"
)

// Config holds all application configuration
type Config struct {
	ServerAddr string `yaml:"server_addr"`

	// SiteRoot is the directory the data locators are resolved against.
	SiteRoot string `yaml:"site_root"`

	// DataURL, when set, makes the loader fetch data over HTTP relative
	// to this base instead of reading SiteRoot.
	DataURL string `yaml:"data_url"`

	PagesPath  string `yaml:"pages_path"`
	StaticPath string `yaml:"static_path"`
	OutputPath string `yaml:"output_path"`

	// FallbackExperiences optionally points at a JSON file replacing the
	// built-in fallback experiences.
	FallbackExperiences string `yaml:"fallback_experiences"`

	LogLevel string `yaml:"log_level"`

	Behavior behavior.Settings `yaml:"behavior"`
}

// EnvConfigFile names the environment variable holding the config path
const EnvConfigFile = "PORTFOLIO_CONFIG"

// Default returns the configuration used before any file or environment
// overrides are applied.
func Default() *Config {
	return &Config{
		ServerAddr: ":8080",
		SiteRoot:   ".",
		PagesPath:  "pages",
		StaticPath: "static",
		OutputPath: "dist",
		LogLevel:   "info",
		Behavior:   behavior.DefaultSettings(),
	}
}

// Load builds the configuration from defaults, the optional YAML file at
// path (or $PORTFOLIO_CONFIG when path is empty), and then environment
// variables.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile reads a YAML config file over the current values
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

// applyEnv overrides values from the environment
func (c *Config) applyEnv() {
	overrides := map[string]*string{
		"SERVER_ADDR": &c.ServerAddr,
		"SITE_ROOT":   &c.SiteRoot,
		"DATA_URL":    &c.DataURL,
		"PAGES_PATH":  &c.PagesPath,
		"STATIC_PATH": &c.StaticPath,
		"OUTPUT_PATH": &c.OutputPath,
		"LOG_LEVEL":   &c.LogLevel,
	}
	for key, field := range overrides {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			*field = v
		}
	}
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	var errs []error
	if c.ServerAddr == "" {
		errs = append(errs, errors.New("server_addr is required"))
	}
	if c.SiteRoot == "" && c.DataURL == "" {
		errs = append(errs, errors.New("one of site_root or data_url is required"))
	}
	if c.PagesPath == "" {
		errs = append(errs, errors.New("pages_path is required"))
	}
	if c.Behavior.CounterSteps < 1 {
		errs = append(errs, fmt.Errorf("behavior.counter_steps must be positive, got %d", c.Behavior.CounterSteps))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Level parses LogLevel
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}

// Logger builds the process logger
func (c *Config) Logger() *slog.Logger {
	level, _ := c.Level()
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
