package responses

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/schedulers"
)

type ProcessResponse struct {
	ProcessId      string `json:"process_id"`
	ArrivalTime    int    `json:"arrival_time"`
	BurstTime      int    `json:"burst_time"`
	Priority       int    `json:"priority"`
	CompletionTime int    `json:"completion_time"`
	ResponseTime   int    `json:"response_time"`
	TurnAroundTime int    `json:"turn_around_time"`
	WaitingTime    int    `json:"waiting_time"`
}

type GanttResponse struct {
	ProcessId string `json:"process_id"`
	Start     int    `json:"start"`
	Duration  int    `json:"duration"`
}

type ScheduleResponse struct {
	Algorithm             string            `json:"algorithm"`
	TimeQuantum           int               `json:"time_quantum,omitempty"`
	TotalTime             int               `json:"total_time"`
	IdleTime              int               `json:"idle_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	Details               []ProcessResponse `json:"details"`
	Gantt                 []GanttResponse   `json:"gantt"`
}

type RecommendResponse struct {
	Algorithm string                   `json:"algorithm"`
	Label     string                   `json:"label"`
	Stats     schedulers.WorkloadStats `json:"stats"`
}

// AllResponse carries every policy's run plus the recommendation.
type AllResponse struct {
	Results        []ScheduleResponse `json:"results"`
	Recommendation RecommendResponse  `json:"recommendation"`
}

func FromResult(result *core.SimulationResult) ScheduleResponse {
	details := make([]ProcessResponse, len(result.Processes))
	for i, p := range result.Processes {
		details[i] = ProcessResponse{
			ProcessId:      p.ID,
			ArrivalTime:    p.ArrivalTime,
			BurstTime:      p.BurstTime,
			Priority:       p.Priority,
			CompletionTime: p.CompletionTime,
			ResponseTime:   p.ResponseTime,
			TurnAroundTime: p.TurnaroundTime,
			WaitingTime:    p.WaitingTime,
		}
	}
	gantt := make([]GanttResponse, len(result.Gantt))
	for i, g := range result.Gantt {
		gantt[i] = GanttResponse{ProcessId: g.ProcessID, Start: g.Start, Duration: g.Duration}
	}
	return ScheduleResponse{
		Algorithm:             result.Policy,
		TimeQuantum:           result.Quantum,
		TotalTime:             result.TotalTime,
		IdleTime:              result.IdleTime,
		AverageWaitingTime:    result.AverageWaitingTime,
		AverageResponseTime:   result.AverageResponseTime,
		AverageTurnAroundTime: result.AverageTurnaroundTime,
		CpuUtilization:        result.CpuUtilization,
		CpuThroughput:         result.Throughput,
		Details:               details,
		Gantt:                 gantt,
	}
}

func FromRecommendation(policy schedulers.Policy, stats schedulers.WorkloadStats) RecommendResponse {
	return RecommendResponse{Algorithm: policy.String(), Label: policy.Label(), Stats: stats}
}
