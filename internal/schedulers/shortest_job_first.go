package schedulers

import "cpu-scheduler/internal/core"

func scheduleShortestJobFirst(tasks []*core.Task, cpu *core.CPU) []*core.Task {
	return scheduleNonPreemptive(tasks, cpu, func(t *core.Task) int {
		return t.BurstTime
	})
}
