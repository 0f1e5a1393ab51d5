package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/CaptainSeanG/PhxPilotJobs/internal/page"
	"github.com/spf13/cobra"
)

var flagOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the board as a static HTML page",
	Long: `Render the board with the current selection flags to a single HTML file.

A feed that fails to load still produces a page showing the failure, and the
command exits non-zero.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		preset, err := parsePreset(flagDate, flagTags, flagSearch)
		if err != nil {
			return err
		}
		e, err := setup()
		if err != nil {
			return err
		}

		res, loadErr := e.loader.LoadWithBackup(context.Background(), e.primary, e.backup)
		if loadErr != nil {
			e.session.Failed(loadErr)
		} else {
			if res.Backup {
				fmt.Fprintf(cmd.ErrOrStderr(), "[warn] %v; showing backup %s\n", res.PrimaryErr, e.backup)
			}
			e.session.Loaded(res)
			e.session.Apply(preset)
		}

		var w io.Writer = cmd.OutOrStdout()
		if flagOut != "" && flagOut != "-" {
			f, err := os.Create(flagOut)
			if err != nil {
				return fmt.Errorf("creating %s: %w", flagOut, err)
			}
			defer f.Close()
			w = f
		}

		if err := page.Render(w, page.FromSession(e.session, e.cfg.GetLowHoursThreshold())); err != nil {
			return err
		}
		if loadErr != nil {
			return fmt.Errorf("loading feed: %w", loadErr)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&flagOut, "out", "o", "", "output file (default stdout)")
}
