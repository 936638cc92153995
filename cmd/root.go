package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/calebk/congresspanel/config"
	"github.com/calebk/congresspanel/logger"
)

var cfg *config.Config

var rootCMD = &cobra.Command{
	Use:   "congresspanel",
	Short: "Congressional Trading Event-Study Pipeline",
	Long: `A CLI application for building event-study panels from congressional
stock trading disclosures. It filters the raw disclosure and price datasets,
backfills missing price history, identifies extreme news-sentiment events,
aggregates trading activity around them, and assembles the final panel CSV.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		return logger.Init(cfg.App.Name, cfg.App.LogLevel, cfg.App.Env)
	},
}

// orDefault resolves a path/date flag the user left empty to its
// configured fallback, so artifact locations live in one place (config)
// instead of being repeated across flag defaults.
func orDefault(flagValue, configured string) string {
	if flagValue != "" {
		return flagValue
	}
	return configured
}

func Execute() {
	defer logger.Sync()
	err := rootCMD.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCMD.AddCommand(filterCMD)
	rootCMD.AddCommand(fetchCMD)
	rootCMD.AddCommand(eventsCMD)
	rootCMD.AddCommand(aggregateCMD)
	rootCMD.AddCommand(volumeCMD)
	rootCMD.AddCommand(panelCMD)
	rootCMD.AddCommand(loadCMD)
	rootCMD.AddCommand(serverCMD)
}
