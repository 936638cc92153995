package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calebk/congresspanel/api"
	"github.com/calebk/congresspanel/database"
	"github.com/calebk/congresspanel/logger"
)

var serverPort int

var serverCMD = &cobra.Command{
	Use:   "server",
	Short: "Start the API server",
	Long:  `Start the HTTP API server to serve trade statistics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.Get()

		log.Infof("initializing database...")
		if err := database.InitDB(cfg.Postgres); err != nil {
			return err
		}

		r := api.SetupRoutes()

		addr := fmt.Sprintf(":%d", serverPort)
		log.Infof("starting server on %s", addr)
		return r.Run(addr)
	},
}

func init() {
	serverCMD.Flags().IntVar(&serverPort, "port", 8080, "port to listen on")
}
