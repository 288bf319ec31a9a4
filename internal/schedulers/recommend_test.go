package schedulers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/internal/core"
)

func workload(bursts, priorities []int) []core.Process {
	procs := make([]core.Process, len(bursts))
	for i := range bursts {
		procs[i] = core.Process{ID: string(rune('A' + i)), BurstTime: bursts[i], ArrivalTime: i}
		if priorities != nil {
			procs[i].Priority = priorities[i]
		}
	}
	return procs
}

func TestRecommend(t *testing.T) {
	tests := []struct {
		name       string
		bursts     []int
		priorities []int
		want       Policy
	}{
		{"uniform without priority", []int{5, 5, 5}, nil, FCFS},
		{"low variance without priority", []int{4, 6, 5}, nil, FCFS},
		{"high variance", []int{1, 20, 2}, nil, SJF},
		{"high variance beats priority", []int{1, 20, 2}, []int{1, 2, 3}, SJF},
		{"uniform with priority", []int{5, 5, 5}, []int{1, 0, 2}, Priority},
		{"moderate variance with priority", []int{2, 6, 10}, []int{0, 0, 3}, Priority},
		{"moderate variance without priority", []int{2, 6, 10}, nil, RoundRobin},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Recommend(workload(tc.bursts, tc.priorities))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRecommend_BoundaryVariance(t *testing.T) {
	// variance exactly 5 is not uniform, exactly 20 is not dispersed
	stats := WorkloadStats{BurstVariance: 5}
	assert.Equal(t, RoundRobin, stats.Recommend())
	stats = WorkloadStats{BurstVariance: 20}
	assert.Equal(t, RoundRobin, stats.Recommend())
	stats = WorkloadStats{BurstVariance: 20, HasPriority: true}
	assert.Equal(t, Priority, stats.Recommend())
}

func TestAnalyzeWorkload(t *testing.T) {
	stats, err := AnalyzeWorkload(workload([]int{2, 6, 10}, []int{0, 0, 0}))
	require.NoError(t, err)
	assert.InDelta(t, 6.0, stats.MeanBurst, 1e-9)
	assert.InDelta(t, 32.0/3, stats.BurstVariance, 1e-9)
	assert.False(t, stats.HasPriority)
}

func TestRecommend_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		procs []core.Process
	}{
		{"empty", nil},
		{"zero burst", []core.Process{{ID: "A", BurstTime: 0}, {ID: "B", BurstTime: 5}}},
		{"negative burst", []core.Process{{ID: "A", BurstTime: -40}, {ID: "B", BurstTime: 5}}},
		{"duplicate id", []core.Process{{ID: "A", BurstTime: 5}, {ID: "A", BurstTime: 5}}},
		{"negative arrival", []core.Process{{ID: "A", ArrivalTime: -3, BurstTime: 5}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Recommend(tc.procs)
			assert.ErrorIs(t, err, ErrInvalidInput)

			_, err = AnalyzeWorkload(tc.procs)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
