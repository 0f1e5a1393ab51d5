package cmd

import (
	"fmt"
	"time"

	"github.com/CaptainSeanG/PhxPilotJobs/internal/board"
	"github.com/CaptainSeanG/PhxPilotJobs/internal/config"
	"github.com/CaptainSeanG/PhxPilotJobs/internal/feed"
	"github.com/CaptainSeanG/PhxPilotJobs/internal/filter"
)

// sources picks the primary and backup feed. An explicit --feed drops the
// configured backup unless --backup is given too.
func sources(cfg *config.Config, feedFlag, backupFlag string) (string, string) {
	primary, backup := cfg.FeedURL, cfg.BackupURL
	if feedFlag != "" {
		primary, backup = feedFlag, ""
	}
	if backupFlag != "" {
		backup = backupFlag
	}
	return primary, backup
}

func parsePreset(date string, tags []string, search string) (board.Preset, error) {
	if date != "" {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return board.Preset{}, fmt.Errorf("invalid --date %q: want YYYY-MM-DD", date)
		}
	}
	return board.Preset{Date: date, Tags: tags, Search: search}, nil
}

type env struct {
	cfg     *config.Config
	loader  *feed.Loader
	session *board.Session
	primary string
	backup  string
}

func setup() (*env, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if flagLight {
		cfg.Theme = "light"
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("loading time zone: %w", err)
	}

	primary, backup := sources(cfg, flagFeed, flagBackup)
	session := board.New(board.Options{
		Engine:   filter.NewEngine(cfg.Aliases()),
		Location: loc,
		Tokens:   cfg.Tokens(),
		Dark:     cfg.Dark(),
	})
	return &env{
		cfg:     cfg,
		loader:  feed.NewLoader(cfg.TimeoutDuration()),
		session: session,
		primary: primary,
		backup:  backup,
	}, nil
}
