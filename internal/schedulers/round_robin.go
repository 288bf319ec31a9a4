package schedulers

import (
	"github.com/sirupsen/logrus"

	"cpu-scheduler/internal/core"
)

func scheduleRoundRobin(tasks []*core.Task, cpu *core.CPU, timeQuantum int) []*core.Task {
	pending := byArrival(tasks)
	completed := make([]*core.Task, 0, len(tasks))
	roundRobinQueue := make([]*core.Task, 0, len(tasks))

	admit := func(task *core.Task) {
		roundRobinQueue = append(roundRobinQueue, task)
		logrus.Debugf("pid: %s send process to roundRobin queue", task.ID)
	}

	// the earliest arrival starts the clock
	cpu.IdleUntil(pending[0].ArrivalTime)
	admit(pending[0])
	pending = pending[1:]

	for len(completed) < len(tasks) {
		if len(roundRobinQueue) == 0 {
			cpu.IdleUntil(pending[0].ArrivalTime)
			admit(pending[0])
			pending = pending[1:]
			continue
		}

		task := roundRobinQueue[0]
		roundRobinQueue = roundRobinQueue[1:]
		cpu.Execute(task, timeQuantum)

		// new arrivals go ahead of the preempted task
		for len(pending) > 0 && pending[0].ArrivalTime <= cpu.Clock() {
			admit(pending[0])
			pending = pending[1:]
		}

		if task.Done() {
			completed = append(completed, task)
			continue
		}
		logrus.Debugf("pid: %s context switch detected. send process to roundRobin queue", task.ID)
		roundRobinQueue = append(roundRobinQueue, task)
	}
	return completed
}
