package config

import (
	"embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/CaptainSeanG/PhxPilotJobs/internal/feed"
	"github.com/CaptainSeanG/PhxPilotJobs/internal/filter"
	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

const appName = "phxpilotjobs"

// Filter declares one toggle on the filter bar. A token with neither Company
// nor MaxHours matches listings tagged with it.
type Filter struct {
	Token    string   `yaml:"token"`
	Company  string   `yaml:"company,omitempty"`
	MaxHours *float64 `yaml:"max_hours,omitempty"`
}

type Config struct {
	FeedURL           string   `yaml:"feed_url"`
	BackupURL         string   `yaml:"backup_url,omitempty"`
	Timeout           string   `yaml:"timeout"`
	TimeZone          string   `yaml:"timezone"`
	LowHoursThreshold float64  `yaml:"low_hours_threshold,omitempty"`
	Theme             string   `yaml:"theme,omitempty"`
	LogFile           string   `yaml:"log_file,omitempty"`
	Filters           []Filter `yaml:"filters"`
}

func (c *Config) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return 15 * time.Second
	}
	return d
}

// Location returns the business time zone used for "last updated".
func (c *Config) Location() (*time.Location, error) {
	name := c.TimeZone
	if name == "" {
		name = feed.DefaultTimeZone
	}
	return time.LoadLocation(name)
}

// GetLowHoursThreshold returns the low hours limit, defaulting to 1100.
func (c *Config) GetLowHoursThreshold() float64 {
	if c.LowHoursThreshold <= 0 {
		return filter.LowHoursThreshold
	}
	return c.LowHoursThreshold
}

func (c *Config) Dark() bool {
	return c.Theme != "light"
}

// Tokens returns the filter tokens in declaration order.
func (c *Config) Tokens() []string {
	out := make([]string, 0, len(c.Filters))
	for _, f := range c.Filters {
		out = append(out, f.Token)
	}
	return out
}

// Aliases builds the attribute alias table from the declared filters.
func (c *Config) Aliases() filter.Aliases {
	aliases := filter.Aliases{}
	for _, f := range c.Filters {
		switch {
		case f.Company != "":
			aliases[f.Token] = filter.CompanyIs(f.Company)
		case f.MaxHours != nil:
			aliases[f.Token] = filter.HoursAtMost(*f.MaxHours)
		}
	}
	return aliases
}

func (c *Config) LogPath() string {
	if c.LogFile != "" {
		return c.LogFile
	}
	return filepath.Join(xdg.StateHome, appName, appName+".log")
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, appName, "config.yaml")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

// Load reads the config at path (or the XDG default), falling back to the
// embedded defaults, then applies .env and environment overrides.
func Load(path string) (*Config, error) {
	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	cfg := defaults
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Non-fatal: the embedded defaults still apply.
		_ = writeDefaults(path)
	case err != nil:
		return nil, fmt.Errorf("reading config: %w", err)
	default:
		var user Config
		if err := yaml.Unmarshal(data, &user); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
		mergeDefaults(&user, defaults)
		cfg = &user
	}

	_ = godotenv.Load()
	applyEnv(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

// mergeDefaults fills fields the user left unset. A user filter list
// replaces the default one.
func mergeDefaults(cfg, defaults *Config) {
	if cfg.FeedURL == "" {
		cfg.FeedURL = defaults.FeedURL
		if cfg.BackupURL == "" {
			cfg.BackupURL = defaults.BackupURL
		}
	}
	if cfg.Timeout == "" {
		cfg.Timeout = defaults.Timeout
	}
	if cfg.TimeZone == "" {
		cfg.TimeZone = defaults.TimeZone
	}
	if cfg.LowHoursThreshold == 0 {
		cfg.LowHoursThreshold = defaults.LowHoursThreshold
	}
	if cfg.Theme == "" {
		cfg.Theme = defaults.Theme
	}
	if cfg.Filters == nil {
		cfg.Filters = defaults.Filters
	}
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PHXPILOTJOBS_FEED_URL"); v != "" {
		cfg.FeedURL = v
	}
	if v := os.Getenv("PHXPILOTJOBS_BACKUP_URL"); v != "" {
		cfg.BackupURL = v
	}
}

func validate(cfg *Config) error {
	if cfg.FeedURL == "" {
		return fmt.Errorf("feed_url is required")
	}
	if err := validateSource("feed_url", cfg.FeedURL); err != nil {
		return err
	}
	if cfg.BackupURL != "" {
		if err := validateSource("backup_url", cfg.BackupURL); err != nil {
			return err
		}
	}
	if cfg.Theme != "" && cfg.Theme != "dark" && cfg.Theme != "light" {
		return fmt.Errorf("theme must be dark or light, got %q", cfg.Theme)
	}
	if cfg.LowHoursThreshold < 0 {
		return fmt.Errorf("low_hours_threshold must not be negative")
	}
	if _, err := cfg.Location(); err != nil {
		return fmt.Errorf("timezone %q: %w", cfg.TimeZone, err)
	}

	seen := make(map[string]bool)
	for i, f := range cfg.Filters {
		if f.Token == "" {
			return fmt.Errorf("filter %d: token is required", i)
		}
		if seen[f.Token] {
			return fmt.Errorf("filter %q: duplicate token", f.Token)
		}
		seen[f.Token] = true
		if f.Company != "" && f.MaxHours != nil {
			return fmt.Errorf("filter %q: company and max_hours are mutually exclusive", f.Token)
		}
		if f.MaxHours != nil && *f.MaxHours < 0 {
			return fmt.Errorf("filter %q: max_hours must not be negative", f.Token)
		}
	}
	return nil
}

func validateSource(key, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: invalid url: %w", key, err)
	}
	switch u.Scheme {
	case "", "http", "https", "file":
		return nil
	}
	return fmt.Errorf("%s: scheme must be http, https or file, got %q", key, u.Scheme)
}
