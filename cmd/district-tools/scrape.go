package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/civicdata/district-tools/internal/scrape"
	"github.com/civicdata/district-tools/pkg/types"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Launch the voter-list crawl",
	Long: `Scrape checks the interpreter and crawling-framework versions (warnings
only) and then starts the named crawl job through the framework's own
command line. All crawl behavior belongs to the framework; this command
only launches it.`,
	RunE: runScrape,
}

func init() {
	scrapeCmd.Flags().String("job", "", `crawl job name (default "voterlist")`)
	scrapeCmd.Flags().String("loglevel", "", `framework log verbosity (default "INFO")`)

	rootCmd.AddCommand(scrapeCmd)
}

func runScrape(cmd *cobra.Command, args []string) error {
	job, _ := cmd.Flags().GetString("job")
	if job == "" {
		job = viper.GetString("scrape.job")
	}
	logLevel, _ := cmd.Flags().GetString("loglevel")
	if logLevel == "" {
		logLevel = viper.GetString("scrape.log_level")
	}

	launcher := scrape.NewLauncher()
	launcher.CheckEnvironment(os.Stderr)
	return launcher.Crawl(types.ScrapeConfig{Job: job, LogLevel: logLevel}, os.Stdout, os.Stderr)
}
