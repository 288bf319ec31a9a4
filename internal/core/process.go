package core

// ResponseUnset marks a task that has not been dispatched yet.
const ResponseUnset = -1

// Process is the immutable input record supplied by the caller.
// Lower Priority values win; 0 is a valid priority.
type Process struct {
	ID          string `json:"process_id"`
	ArrivalTime int    `json:"arrival_time"`
	BurstTime   int    `json:"burst_time"`
	Priority    int    `json:"priority"`
}

// Task is the mutable working record a single simulation run keeps per process.
type Task struct {
	Process
	Index          int // position in the caller's input
	RemainingTime  int
	CompletionTime int
	WaitingTime    int
	TurnaroundTime int
	ResponseTime   int

	dispatched bool
}

// NewTasks copies processes into a fresh arena of tasks.
func NewTasks(processes []Process) []*Task {
	tasks := make([]*Task, len(processes))
	for i, p := range processes {
		tasks[i] = &Task{
			Process:       p,
			Index:         i,
			RemainingTime: p.BurstTime,
			ResponseTime:  ResponseUnset,
		}
	}
	return tasks
}

// Done reports whether the task has no CPU time left.
func (t *Task) Done() bool {
	return t.RemainingTime == 0
}

func (t *Task) finalize(clock int) {
	t.CompletionTime = clock
	t.TurnaroundTime = t.CompletionTime - t.ArrivalTime
	t.WaitingTime = t.TurnaroundTime - t.BurstTime
}

// Result snapshots the task.
func (t *Task) Result() ProcessResult {
	return ProcessResult{
		Process:        t.Process,
		RemainingTime:  t.RemainingTime,
		CompletionTime: t.CompletionTime,
		WaitingTime:    t.WaitingTime,
		TurnaroundTime: t.TurnaroundTime,
		ResponseTime:   t.ResponseTime,
	}
}

// ProcessResult is a Process with the timing metrics of a finished run.
type ProcessResult struct {
	Process
	RemainingTime  int `json:"remaining_time"`
	CompletionTime int `json:"completion_time"`
	WaitingTime    int `json:"waiting_time"`
	TurnaroundTime int `json:"turnaround_time"`
	ResponseTime   int `json:"response_time"`
}

// GanttSlice is one contiguous span of a single process on the CPU.
type GanttSlice struct {
	ProcessID string `json:"process_id"`
	Start     int    `json:"start"`
	Duration  int    `json:"duration"`
}

func (g GanttSlice) End() int {
	return g.Start + g.Duration
}

// SimulationResult is the output of one policy run.
// Processes are in completion order, except FCFS which keeps arrival order
// (the two coincide for FCFS).
type SimulationResult struct {
	Policy    string          `json:"policy"`
	Quantum   int             `json:"quantum,omitempty"`
	Processes []ProcessResult `json:"processes"`
	Gantt     []GanttSlice    `json:"gantt"`

	AverageWaitingTime    float64 `json:"average_waiting_time"`
	AverageTurnaroundTime float64 `json:"average_turnaround_time"`
	AverageResponseTime   float64 `json:"average_response_time"`
	TotalTime             int     `json:"total_time"`
	IdleTime              int     `json:"idle_time"`
	CpuUtilization        float64 `json:"cpu_utilization"`
	Throughput            float64 `json:"throughput"`
}

// Clone returns a deep copy of the result.
func (r *SimulationResult) Clone() *SimulationResult {
	c := *r
	c.Processes = append([]ProcessResult(nil), r.Processes...)
	c.Gantt = append([]GanttSlice(nil), r.Gantt...)
	return &c
}
