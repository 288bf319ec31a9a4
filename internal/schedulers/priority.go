package schedulers

import "cpu-scheduler/internal/core"

// schedulePriority is non-preemptive; lower numeric priority runs first.
func schedulePriority(tasks []*core.Task, cpu *core.CPU) []*core.Task {
	return scheduleNonPreemptive(tasks, cpu, func(t *core.Task) int {
		return t.Priority
	})
}
