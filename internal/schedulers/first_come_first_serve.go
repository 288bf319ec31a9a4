package schedulers

import (
	"sort"

	"cpu-scheduler/internal/core"
)

func scheduleFirstComeFirstServe(tasks []*core.Task, cpu *core.CPU) []*core.Task {
	// sort jobs by arrival time, input order breaks ties
	jobs := append([]*core.Task(nil), tasks...)
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].ArrivalTime < jobs[j].ArrivalTime
	})

	for _, job := range jobs {
		cpu.IdleUntil(job.ArrivalTime)
		cpu.Execute(job, job.RemainingTime)
	}
	return jobs
}
