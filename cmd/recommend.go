package cmd

import (
	"github.com/spf13/cobra"

	"cpu-scheduler/internal/render"
	"cpu-scheduler/internal/schedulers"
)

// recommendCmd prints the advisory policy choice for the workload
var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Suggest a scheduling policy for the workload",
	RunE: func(cmd *cobra.Command, args []string) error {
		request, err := loadWorkload()
		if err != nil {
			return err
		}
		stats, err := schedulers.AnalyzeWorkload(request.ToProcesses())
		if err != nil {
			return err
		}
		render.Recommendation(cmd.OutOrStdout(), stats.Recommend(), stats)
		return nil
	},
}

func init() {
	recommendCmd.Flags().StringVar(&workloadPath, "workload", "", "Workload file (YAML or JSON); the built-in sample is used when empty")

	rootCmd.AddCommand(recommendCmd)
}
