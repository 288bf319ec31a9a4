package schedulers

import (
	"fmt"
	"strings"
)

// Policy is the closed set of scheduling policies the engine simulates.
type Policy int

const (
	FCFS Policy = iota
	SJF
	Priority
	RoundRobin
)

// Policies lists every policy in display order.
var Policies = []Policy{FCFS, SJF, Priority, RoundRobin}

func (p Policy) String() string {
	switch p {
	case FCFS:
		return "fcfs"
	case SJF:
		return "sjf"
	case Priority:
		return "priority"
	case RoundRobin:
		return "roundRobin"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// Label is the human readable policy name.
func (p Policy) Label() string {
	switch p {
	case FCFS:
		return "FCFS (First Come First Serve)"
	case SJF:
		return "SJF (Shortest Job First)"
	case Priority:
		return "Priority Scheduling"
	case RoundRobin:
		return "Round Robin"
	}
	return p.String()
}

func (p Policy) valid() bool {
	return p >= FCFS && p <= RoundRobin
}

// ParsePolicy accepts the canonical keys and a few common aliases, case-insensitively.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fcfs", "first-come-first-serve":
		return FCFS, nil
	case "sjf", "shortest-job-first":
		return SJF, nil
	case "priority", "prio":
		return Priority, nil
	case "roundrobin", "rr", "round-robin", "round_robin":
		return RoundRobin, nil
	}
	return 0, fmt.Errorf("%w: unknown policy %q", ErrInvalidInput, name)
}

func (p Policy) MarshalText() ([]byte, error) {
	if !p.valid() {
		return nil, fmt.Errorf("%w: unknown policy %d", ErrInvalidInput, int(p))
	}
	return []byte(p.String()), nil
}

func (p *Policy) UnmarshalText(text []byte) error {
	parsed, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
