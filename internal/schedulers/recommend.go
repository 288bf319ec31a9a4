package schedulers

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/util"
)

// Thresholds on the population variance of burst times.
const (
	uniformBurstVariance   = 5.0
	dispersedBurstVariance = 20.0
)

// WorkloadStats summarises the input features the recommendation looks at.
type WorkloadStats struct {
	MeanBurst     float64 `json:"mean_burst"`
	BurstVariance float64 `json:"burst_variance"`
	HasPriority   bool    `json:"has_priority"`
}

// AnalyzeWorkload computes WorkloadStats for processes.
func AnalyzeWorkload(processes []core.Process) (WorkloadStats, error) {
	if err := validateProcesses(processes); err != nil {
		return WorkloadStats{}, err
	}
	bursts := make([]int, len(processes))
	var stats WorkloadStats
	for i, p := range processes {
		bursts[i] = p.BurstTime
		if p.Priority != 0 {
			stats.HasPriority = true
		}
	}
	stats.MeanBurst, stats.BurstVariance = util.MeanVariance(bursts)
	return stats, nil
}

// Recommend suggests a policy for the workload from its burst dispersion and
// priority usage. It is advisory: the suggested policy is not guaranteed to
// minimise waiting or turnaround time for the given input.
func Recommend(processes []core.Process) (Policy, error) {
	stats, err := AnalyzeWorkload(processes)
	if err != nil {
		return 0, err
	}
	return stats.Recommend(), nil
}

// Recommend applies the decision table; the first matching rule wins.
func (s WorkloadStats) Recommend() Policy {
	switch {
	case s.BurstVariance < uniformBurstVariance && !s.HasPriority:
		return FCFS
	case s.BurstVariance > dispersedBurstVariance:
		return SJF
	case s.HasPriority:
		return Priority
	default:
		return RoundRobin
	}
}
