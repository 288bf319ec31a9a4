package schedulers

import (
	"fmt"
	"math/rand"
	"testing"

	"cpu-scheduler/internal/core"
)

func defaultWorkload() []core.Process {
	return []core.Process{
		{ID: "P1", ArrivalTime: 0, BurstTime: 5, Priority: 2},
		{ID: "P2", ArrivalTime: 1, BurstTime: 3, Priority: 1},
		{ID: "P3", ArrivalTime: 2, BurstTime: 8, Priority: 3},
	}
}

func randomWorkload(rng *rand.Rand, n int) []core.Process {
	procs := make([]core.Process, n)
	for i := range procs {
		procs[i] = core.Process{
			ID:          fmt.Sprintf("P%d", i+1),
			ArrivalTime: rng.Intn(20),
			BurstTime:   1 + rng.Intn(12),
			Priority:    rng.Intn(5),
		}
	}
	return procs
}

func resultIDs(r *core.SimulationResult) []string {
	ids := make([]string, len(r.Processes))
	for i, p := range r.Processes {
		ids[i] = p.ID
	}
	return ids
}

func completions(r *core.SimulationResult) map[string]int {
	m := make(map[string]int, len(r.Processes))
	for _, p := range r.Processes {
		m[p.ID] = p.CompletionTime
	}
	return m
}

func mustSimulate(t *testing.T, policy Policy, procs []core.Process, quantum int) *core.SimulationResult {
	t.Helper()
	r, err := Simulate(policy, procs, quantum)
	if err != nil {
		t.Fatalf("Simulate(%s): unexpected error: %v", policy, err)
	}
	return r
}

// checkInvariants verifies the properties every policy must hold for a valid input.
func checkInvariants(t *testing.T, policy Policy, procs []core.Process, r *core.SimulationResult) {
	t.Helper()
	if len(r.Processes) != len(procs) {
		t.Fatalf("%s: got %d results, want %d", policy, len(r.Processes), len(procs))
	}
	byID := make(map[string]core.Process, len(procs))
	var totalBurst int
	for _, p := range procs {
		byID[p.ID] = p
		totalBurst += p.BurstTime
	}
	seen := make(map[string]bool, len(procs))
	for _, pr := range r.Processes {
		in, ok := byID[pr.ID]
		if !ok || seen[pr.ID] {
			t.Fatalf("%s: unexpected or duplicate result %q", policy, pr.ID)
		}
		seen[pr.ID] = true
		if pr.Process != in {
			t.Errorf("%s: %s input fields changed: %+v vs %+v", policy, pr.ID, pr.Process, in)
		}
		if pr.RemainingTime != 0 {
			t.Errorf("%s: %s remaining=%d", policy, pr.ID, pr.RemainingTime)
		}
		if pr.TurnaroundTime != pr.CompletionTime-pr.ArrivalTime {
			t.Errorf("%s: %s turnaround %d != completion-arrival", policy, pr.ID, pr.TurnaroundTime)
		}
		if pr.WaitingTime != pr.TurnaroundTime-pr.BurstTime {
			t.Errorf("%s: %s waiting %d != turnaround-burst", policy, pr.ID, pr.WaitingTime)
		}
		if pr.WaitingTime < 0 || pr.ResponseTime < 0 || pr.CompletionTime < pr.ArrivalTime+pr.BurstTime {
			t.Errorf("%s: %s bad metrics %+v", policy, pr.ID, pr)
		}
	}

	var sum, prevEnd int
	perProcess := make(map[string]int)
	for i, g := range r.Gantt {
		if g.Duration <= 0 {
			t.Errorf("%s: slice %d has duration %d", policy, i, g.Duration)
		}
		if g.Start < prevEnd {
			t.Errorf("%s: slice %d starts at %d before previous end %d", policy, i, g.Start, prevEnd)
		}
		if g.Start < byID[g.ProcessID].ArrivalTime {
			t.Errorf("%s: slice %d runs %s before arrival", policy, i, g.ProcessID)
		}
		prevEnd = g.End()
		sum += g.Duration
		perProcess[g.ProcessID] += g.Duration
	}
	if sum != totalBurst {
		t.Errorf("%s: gantt total %d, want %d", policy, sum, totalBurst)
	}
	for id, p := range byID {
		if perProcess[id] != p.BurstTime {
			t.Errorf("%s: %s ran %d ticks, want %d", policy, id, perProcess[id], p.BurstTime)
		}
	}
}
