package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cpu-scheduler/internal/requests"
)

var (
	logLevel     string // Log verbosity level
	workloadPath string // YAML or JSON workload file
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "cpu-scheduler",
	Short: "Single-core CPU scheduling simulator",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
		return nil
	},
	SilenceUsage: true,
}

// loadWorkload reads --workload, or returns the built-in sample when it is unset.
func loadWorkload() (*requests.ScheduleRequests, error) {
	if workloadPath == "" {
		logrus.Info("no workload given, using the built-in sample")
		return requests.DefaultWorkload(), nil
	}
	return requests.LoadWorkload(workloadPath)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
}
