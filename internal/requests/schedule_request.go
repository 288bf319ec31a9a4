package requests

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/schedulers"
)

type Job struct {
	ProcessId   string `json:"process_id" yaml:"process_id"`
	ArrivalTime int    `json:"arrival_time" yaml:"arrival_time"`
	BurstTime   int    `json:"burst_time" yaml:"burst_time"`
	Priority    int    `json:"priority" yaml:"priority"`
}

// ScheduleRequests is the body of every scheduling call and the shape of a workload file.
// A nil Quantum means schedulers.DefaultQuantum.
type ScheduleRequests struct {
	Algorithm string `json:"algorithm,omitempty" yaml:"algorithm,omitempty"`
	Quantum   *int   `json:"quantum,omitempty" yaml:"quantum,omitempty"`
	Jobs      []Job  `json:"jobs" yaml:"jobs"`
}

func (r *ScheduleRequests) ToProcesses() []core.Process {
	processes := make([]core.Process, len(r.Jobs))
	for i, job := range r.Jobs {
		processes[i] = core.Process{
			ID:          job.ProcessId,
			ArrivalTime: job.ArrivalTime,
			BurstTime:   job.BurstTime,
			Priority:    job.Priority,
		}
	}
	return processes
}

// TimeQuantum returns the requested quantum, or fallback when none was given.
func (r *ScheduleRequests) TimeQuantum(fallback int) int {
	if r.Quantum == nil {
		return fallback
	}
	return *r.Quantum
}

// Policy parses Algorithm, falling back when it is empty.
func (r *ScheduleRequests) Policy(fallback schedulers.Policy) (schedulers.Policy, error) {
	if r.Algorithm == "" {
		return fallback, nil
	}
	return schedulers.ParsePolicy(r.Algorithm)
}

// DefaultWorkload is the three process sample used when no workload is supplied.
func DefaultWorkload() *ScheduleRequests {
	return &ScheduleRequests{
		Jobs: []Job{
			{ProcessId: "P1", ArrivalTime: 0, BurstTime: 5, Priority: 2},
			{ProcessId: "P2", ArrivalTime: 1, BurstTime: 3, Priority: 1},
			{ProcessId: "P3", ArrivalTime: 2, BurstTime: 8, Priority: 3},
		},
	}
}
