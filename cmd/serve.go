package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cpu-scheduler/api"
	"cpu-scheduler/config"
)

var configDir string // Directory holding config.yaml

// serveCmd exposes the simulator over HTTP
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scheduling API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadSchedulerConfig(configDir)
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("log") {
			level, _ := logrus.ParseLevel(cfg.LogLevel)
			logrus.SetLevel(level)
		}

		app := api.NewApp(cfg)
		addr := fmt.Sprintf(":%d", cfg.Port)
		logrus.Infof("listening on %s (round robin quantum %d)", addr, cfg.RoundRobinTimeQuantum)
		return app.Listen(addr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&configDir, "config", "./", "Directory containing config.yaml")

	rootCmd.AddCommand(serveCmd)
}
