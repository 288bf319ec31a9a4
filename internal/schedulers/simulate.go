package schedulers

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"cpu-scheduler/internal/core"
)

// DefaultQuantum is the round-robin time slice used when the caller has no preference.
const DefaultQuantum = 2

// Simulate runs processes through policy on a fresh copy of the input.
// quantum is only read, and validated, for RoundRobin.
func Simulate(policy Policy, processes []core.Process, quantum int) (*core.SimulationResult, error) {
	if err := validateProcesses(processes); err != nil {
		return nil, err
	}

	tasks := core.NewTasks(processes)
	cpu := core.NewCPU()
	var order []*core.Task

	switch policy {
	case FCFS:
		logrus.Debugln("running fcfs algorithm ...")
		order = scheduleFirstComeFirstServe(tasks, cpu)
	case SJF:
		logrus.Debugln("running sjf algorithm ...")
		order = scheduleShortestJobFirst(tasks, cpu)
	case Priority:
		logrus.Debugln("running priority algorithm ...")
		order = schedulePriority(tasks, cpu)
	case RoundRobin:
		if err := validateQuantum(quantum); err != nil {
			return nil, err
		}
		logrus.Debugf("running roundRobin algorithm with timeQuantum = %d", quantum)
		order = scheduleRoundRobin(tasks, cpu, quantum)
	default:
		return nil, fmt.Errorf("%w: unknown policy %d", ErrInvalidInput, int(policy))
	}

	result := generateResult(policy, order, cpu)
	if policy == RoundRobin {
		result.Quantum = quantum
	}
	logrus.Debugf("%s result: %+v", policy, result)
	return result, nil
}

// SimulateAll runs every policy over processes, each on its own copy.
func SimulateAll(processes []core.Process, quantum int) (map[Policy]*core.SimulationResult, error) {
	results := make(map[Policy]*core.SimulationResult, len(Policies))
	for _, p := range Policies {
		r, err := Simulate(p, processes, quantum)
		if err != nil {
			return nil, err
		}
		results[p] = r
	}
	return results, nil
}
