package schedulers

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/util"
)

func generateResult(policy Policy, order []*core.Task, cpu *core.CPU) *core.SimulationResult {
	details := make([]core.ProcessResult, len(order))
	for i, t := range order {
		details[i] = t.Result()
	}
	averageWaitingTime, averageResponseTime, averageTurnAroundTime := util.CalculateAverage(details)

	metric := cpu.Metric()
	var utilization, throughput float64
	if metric.TotalTime > 0 {
		utilization = float64(metric.UtilizationTime) / float64(metric.TotalTime)
		throughput = float64(len(order)) / float64(metric.TotalTime)
	}

	return &core.SimulationResult{
		Policy:                policy.String(),
		Processes:             details,
		Gantt:                 cpu.Gantt(),
		AverageWaitingTime:    averageWaitingTime,
		AverageTurnaroundTime: averageTurnAroundTime,
		AverageResponseTime:   averageResponseTime,
		TotalTime:             metric.TotalTime,
		IdleTime:              metric.IdleTime,
		CpuUtilization:        utilization,
		Throughput:            throughput,
	}
}
