package cmd

import (
	"context"
	"fmt"

	"github.com/CaptainSeanG/PhxPilotJobs/internal/tui"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print per-source scraper health and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}

		res, err := e.loader.LoadWithBackup(context.Background(), e.primary, e.backup)
		if err != nil {
			return fmt.Errorf("loading feed: %w", err)
		}
		if res.Backup {
			fmt.Fprintf(cmd.ErrOrStderr(), "[warn] %v; showing backup %s\n", res.PrimaryErr, e.backup)
		}

		fmt.Fprintln(cmd.OutOrStdout(), tui.StatusReport(res.Feed.Results, e.cfg.Dark()))
		return nil
	},
}
