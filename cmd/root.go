package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig string
	flagFeed   string
	flagBackup string
	flagDate   string
	flagTags   []string
	flagSearch string
	flagLight  bool
)

var rootCmd = &cobra.Command{
	Use:   "phxpilotjobs",
	Short: "Phoenix pilot job board",
	Long:  "phxpilotjobs shows the scraped Phoenix-area pilot job feed as a filterable board, with past snapshots and per-source scraper health.",
	RunE:  runTUI,

	// Load failures are not usage errors.
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "path to config file")
	pf.StringVar(&flagFeed, "feed", "", "feed URL or file path (overrides feed_url)")
	pf.StringVar(&flagBackup, "backup", "", "backup feed URL or file path (overrides backup_url)")
	pf.BoolVar(&flagLight, "light", false, "use the light theme")

	// Selection flags apply to the board and the export, not to status.
	for _, c := range []*cobra.Command{rootCmd, exportCmd} {
		c.Flags().StringVar(&flagDate, "date", "", "show the history snapshot for a date (YYYY-MM-DD)")
		c.Flags().StringArrayVar(&flagTags, "tag", nil, "activate a filter token (repeatable)")
		c.Flags().StringVar(&flagSearch, "search", "", "initial search text")
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(exportCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("phxpilotjobs %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
