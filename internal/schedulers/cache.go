package schedulers

import (
	"crypto/sha256"
	"encoding/binary"
	"sync"

	"github.com/sirupsen/logrus"

	"cpu-scheduler/internal/core"
)

type cacheKey struct {
	policy  Policy
	input   [sha256.Size]byte
	quantum int
}

// ResultCache memoises simulation results keyed by (policy, input, quantum).
// It is safe for concurrent use and hands out copies.
type ResultCache struct {
	mu      sync.RWMutex
	entries map[cacheKey]*core.SimulationResult
}

func NewResultCache() *ResultCache {
	return &ResultCache{entries: make(map[cacheKey]*core.SimulationResult)}
}

// Simulate returns the cached result for the inputs or runs Simulate and stores it.
// Errors are not cached.
func (c *ResultCache) Simulate(policy Policy, processes []core.Process, quantum int) (*core.SimulationResult, error) {
	if policy != RoundRobin {
		quantum = 0
	}
	key := cacheKey{policy: policy, input: hashProcesses(processes), quantum: quantum}

	c.mu.RLock()
	cached, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		logrus.Debugf("cache hit for %s", policy)
		return cached.Clone(), nil
	}

	result, err := Simulate(policy, processes, quantum)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = result.Clone()
	c.mu.Unlock()
	return result, nil
}

func (c *ResultCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func hashProcesses(processes []core.Process) [sha256.Size]byte {
	h := sha256.New()
	var buf [8]byte
	writeInt := func(v int) {
		binary.BigEndian.PutUint64(buf[:], uint64(v))
		h.Write(buf[:])
	}
	for _, p := range processes {
		writeInt(len(p.ID))
		h.Write([]byte(p.ID))
		writeInt(p.ArrivalTime)
		writeInt(p.BurstTime)
		writeInt(p.Priority)
	}
	var sum [sha256.Size]byte
	copy(sum[:], h.Sum(nil))
	return sum
}
