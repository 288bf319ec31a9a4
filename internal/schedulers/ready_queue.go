package schedulers

import (
	"container/heap"
	"sort"

	"cpu-scheduler/internal/core"
)

// readyQueue orders arrived tasks by (key, arrival time, input index).
// The trailing fields make the order total, so equal keys always resolve the same way.
type readyQueue struct {
	tasks []*core.Task
	key   func(*core.Task) int
}

func (q readyQueue) Len() int { return len(q.tasks) }

func (q readyQueue) Less(i, j int) bool {
	a, b := q.tasks[i], q.tasks[j]
	if ka, kb := q.key(a), q.key(b); ka != kb {
		return ka < kb
	}
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}
	return a.Index < b.Index
}

func (q readyQueue) Swap(i, j int) { q.tasks[i], q.tasks[j] = q.tasks[j], q.tasks[i] }

func (q *readyQueue) Push(x any) { q.tasks = append(q.tasks, x.(*core.Task)) }

func (q *readyQueue) Pop() any {
	old := q.tasks
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	q.tasks = old[:n-1]
	return t
}

// byArrival returns the tasks sorted by arrival time, input order breaking ties.
func byArrival(tasks []*core.Task) []*core.Task {
	pending := append([]*core.Task(nil), tasks...)
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].ArrivalTime < pending[j].ArrivalTime
	})
	return pending
}

// scheduleNonPreemptive repeatedly runs the ready task with the smallest key to
// completion. A task arriving mid-run waits for the current one to finish.
func scheduleNonPreemptive(tasks []*core.Task, cpu *core.CPU, key func(*core.Task) int) []*core.Task {
	pending := byArrival(tasks)
	ready := &readyQueue{key: key}
	completed := make([]*core.Task, 0, len(tasks))

	for len(completed) < len(tasks) {
		for len(pending) > 0 && pending[0].ArrivalTime <= cpu.Clock() {
			heap.Push(ready, pending[0])
			pending = pending[1:]
		}
		if ready.Len() == 0 {
			// nothing eligible: the clock idles until the next arrival
			cpu.IdleUntil(pending[0].ArrivalTime)
			continue
		}
		task := heap.Pop(ready).(*core.Task)
		cpu.Execute(task, task.RemainingTime)
		completed = append(completed, task)
	}
	return completed
}
