package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/CaptainSeanG/PhxPilotJobs/internal/feed"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := loadDefaults()
	if err != nil {
		t.Fatalf("loadDefaults: %v", err)
	}
	if cfg.FeedURL != "jobs.json" {
		t.Errorf("expected default feed jobs.json, got %q", cfg.FeedURL)
	}
	if len(cfg.Filters) == 0 {
		t.Error("expected default filters")
	}
	if err := validate(cfg); err != nil {
		t.Errorf("embedded defaults do not validate: %v", err)
	}
}

func TestTimeoutDuration(t *testing.T) {
	cfg := &Config{Timeout: "3s"}
	if d := cfg.TimeoutDuration(); d.Seconds() != 3 {
		t.Errorf("expected 3s, got %v", d)
	}

	for _, bad := range []string{"", "invalid", "-1s"} {
		cfg.Timeout = bad
		if d := cfg.TimeoutDuration(); d.Seconds() != 15 {
			t.Errorf("TimeoutDuration(%q) = %v, want 15s default", bad, d)
		}
	}
}

func TestLocationDefaultsToPhoenix(t *testing.T) {
	cfg := &Config{}
	loc, err := cfg.Location()
	if err != nil {
		t.Fatalf("Location: %v", err)
	}
	if loc.String() != feed.DefaultTimeZone {
		t.Errorf("expected %s, got %s", feed.DefaultTimeZone, loc)
	}
}

func TestGetLowHoursThreshold(t *testing.T) {
	if got := (&Config{}).GetLowHoursThreshold(); got != 1100 {
		t.Errorf("expected default 1100, got %v", got)
	}
	if got := (&Config{LowHoursThreshold: 500}).GetLowHoursThreshold(); got != 500 {
		t.Errorf("expected 500, got %v", got)
	}
}

func TestDark(t *testing.T) {
	tests := []struct {
		theme string
		want  bool
	}{
		{"", true},
		{"dark", true},
		{"light", false},
	}
	for _, tt := range tests {
		cfg := &Config{Theme: tt.theme}
		if got := cfg.Dark(); got != tt.want {
			t.Errorf("Dark(%q) = %v, want %v", tt.theme, got, tt.want)
		}
	}
}

func TestAliases(t *testing.T) {
	limit := 1000.0
	cfg := &Config{Filters: []Filter{
		{Token: "Cargo"},
		{Token: "Low Hours", MaxHours: &limit},
		{Token: "Ameriflight", Company: "Ameriflight"},
	}}
	aliases := cfg.Aliases()
	if len(aliases) != 2 {
		t.Fatalf("expected 2 aliases, got %d", len(aliases))
	}
	if _, ok := aliases["Cargo"]; ok {
		t.Error("plain tag token should not be an alias")
	}

	h := 999.0
	if !aliases["Low Hours"](feed.Listing{HoursRequired: &h}) {
		t.Error("Low Hours should match 999 hours")
	}
	if !aliases["Ameriflight"](feed.Listing{Company: "Ameriflight"}) {
		t.Error("Ameriflight alias should match company")
	}

	tokens := cfg.Tokens()
	if len(tokens) != 3 || tokens[0] != "Cargo" || tokens[2] != "Ameriflight" {
		t.Errorf("unexpected tokens %v", tokens)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")

	content := `feed_url: https://example.com/jobs.json
theme: light
filters:
  - token: Regional
`
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.FeedURL != "https://example.com/jobs.json" {
		t.Errorf("unexpected feed url %q", cfg.FeedURL)
	}
	if cfg.Dark() {
		t.Error("expected light theme")
	}
	if len(cfg.Filters) != 1 || cfg.Filters[0].Token != "Regional" {
		t.Errorf("user filters should replace defaults, got %v", cfg.Filters)
	}
	// Unset fields come from the embedded defaults.
	if cfg.Timeout != "15s" || cfg.TimeZone != "America/Phoenix" {
		t.Errorf("expected defaults merged, got timeout=%q tz=%q", cfg.Timeout, cfg.TimeZone)
	}
	if cfg.BackupURL != "" {
		t.Errorf("backup should not default when feed_url is set, got %q", cfg.BackupURL)
	}
}

func TestLoadNonexistentFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "sub", "config.yaml")

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Filters) == 0 {
		t.Error("expected default filters when config doesn't exist")
	}
	if _, err := os.Stat(cfgPath); err != nil {
		t.Errorf("expected defaults written to %s: %v", cfgPath, err)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("PHXPILOTJOBS_FEED_URL", "https://override.example.com/jobs.json")
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.FeedURL != "https://override.example.com/jobs.json" {
		t.Errorf("expected env override, got %q", cfg.FeedURL)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("filters: [unclosed"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if _, err := Load(cfgPath); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	neg := -1.0
	limit := 1100.0
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"minimal", Config{FeedURL: "jobs.json"}, false},
		{"https", Config{FeedURL: "https://example.com/jobs.json"}, false},
		{"file url", Config{FeedURL: "file:///srv/jobs.json"}, false},
		{"missing feed", Config{}, true},
		{"bad scheme", Config{FeedURL: "ftp://example.com/jobs.json"}, true},
		{"bad backup scheme", Config{FeedURL: "jobs.json", BackupURL: "javascript:alert(1)"}, true},
		{"bad theme", Config{FeedURL: "jobs.json", Theme: "solarized"}, true},
		{"bad timezone", Config{FeedURL: "jobs.json", TimeZone: "Mars/Olympus"}, true},
		{"negative threshold", Config{FeedURL: "jobs.json", LowHoursThreshold: -5}, true},
		{"empty token", Config{FeedURL: "jobs.json", Filters: []Filter{{}}}, true},
		{"duplicate token", Config{FeedURL: "jobs.json", Filters: []Filter{{Token: "A"}, {Token: "A"}}}, true},
		{"company and hours", Config{FeedURL: "jobs.json", Filters: []Filter{{Token: "A", Company: "A", MaxHours: &limit}}}, true},
		{"negative max hours", Config{FeedURL: "jobs.json", Filters: []Filter{{Token: "A", MaxHours: &neg}}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(&tt.cfg)
			if tt.wantErr && err == nil {
				t.Error("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
