package schedulers

import (
	"errors"
	"fmt"

	"cpu-scheduler/internal/core"
)

// ErrInvalidInput is wrapped by every error the engine returns for bad input.
var ErrInvalidInput = errors.New("invalid input")

func validateProcesses(processes []core.Process) error {
	if len(processes) == 0 {
		return fmt.Errorf("%w: empty process list", ErrInvalidInput)
	}
	seen := make(map[string]struct{}, len(processes))
	for i, p := range processes {
		if p.ID == "" {
			return fmt.Errorf("%w: process at index %d has no id", ErrInvalidInput, i)
		}
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("%w: duplicate process id %q", ErrInvalidInput, p.ID)
		}
		seen[p.ID] = struct{}{}
		if p.ArrivalTime < 0 {
			return fmt.Errorf("%w: process %q has negative arrival time %d", ErrInvalidInput, p.ID, p.ArrivalTime)
		}
		if p.BurstTime <= 0 {
			return fmt.Errorf("%w: process %q has non-positive burst time %d", ErrInvalidInput, p.ID, p.BurstTime)
		}
	}
	return nil
}

func validateQuantum(quantum int) error {
	if quantum <= 0 {
		return fmt.Errorf("%w: quantum must be positive, got %d", ErrInvalidInput, quantum)
	}
	return nil
}
