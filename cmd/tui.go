package cmd

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/CaptainSeanG/PhxPilotJobs/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func runTUI(cmd *cobra.Command, args []string) error {
	preset, err := parsePreset(flagDate, flagTags, flagSearch)
	if err != nil {
		return err
	}
	e, err := setup()
	if err != nil {
		return err
	}

	// The alt screen owns the terminal, so log lines go to a file.
	closeLog := openLog(e.cfg.LogPath())
	defer closeLog()

	return tui.Run(tui.RunOpts{
		Session:  e.session,
		Loader:   e.loader,
		Primary:  e.primary,
		Backup:   e.backup,
		Preset:   preset,
		LowHours: e.cfg.GetLowHoursThreshold(),
	})
}

func openLog(path string) func() {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
		if f, err := tea.LogToFile(path, "phxpilotjobs"); err == nil {
			return func() { f.Close() }
		}
	}
	log.SetOutput(io.Discard)
	return func() {}
}
