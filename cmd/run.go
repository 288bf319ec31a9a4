package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cpu-scheduler/internal/render"
	"cpu-scheduler/internal/schedulers"
)

var (
	policyName  string // Policy key, or "all"
	timeQuantum int    // Round-robin quantum
)

// runCmd simulates the workload under one policy, or all of them
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the scheduling simulation",
	RunE: func(cmd *cobra.Command, args []string) error {
		request, err := loadWorkload()
		if err != nil {
			return err
		}
		processes := request.ToProcesses()

		quantum := request.TimeQuantum(schedulers.DefaultQuantum)
		if cmd.Flags().Changed("quantum") {
			quantum = timeQuantum
		}

		out := cmd.OutOrStdout()
		// --policy wins over the workload file's algorithm
		if cmd.Flags().Changed("policy") {
			request.Algorithm = policyName
		}
		if request.Algorithm == "all" {
			results, err := schedulers.SimulateAll(processes, quantum)
			if err != nil {
				return err
			}
			for _, p := range schedulers.Policies {
				render.Result(out, results[p])
			}
			render.Comparison(out, results)
			return nil
		}

		policy, err := request.Policy(schedulers.FCFS)
		if err != nil {
			return err
		}
		logrus.Infof("Starting %s simulation with %d processes", policy, len(processes))
		result, err := schedulers.Simulate(policy, processes, quantum)
		if err != nil {
			return err
		}
		render.Result(out, result)
		logrus.Info("Simulation complete.")
		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&workloadPath, "workload", "", "Workload file (YAML or JSON); the built-in sample is used when empty")
	runCmd.Flags().StringVar(&policyName, "policy", "fcfs", "Scheduling policy: fcfs, sjf, priority, rr or all")
	runCmd.Flags().IntVar(&timeQuantum, "quantum", schedulers.DefaultQuantum, "Round-robin time quantum (ticks)")

	rootCmd.AddCommand(runCmd)
}
