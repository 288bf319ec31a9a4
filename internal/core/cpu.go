package core

import (
	"github.com/sirupsen/logrus"
)

type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// CPU is a logical single core driven by an integer clock starting at 0.
type CPU struct {
	clock  int
	gantt  []GanttSlice
	metric CpuMetric
}

func NewCPU() *CPU {
	return &CPU{gantt: make([]GanttSlice, 0)}
}

func (c *CPU) Clock() int {
	return c.clock
}

// IdleUntil jumps the clock forward to t. Earlier values are ignored.
func (c *CPU) IdleUntil(t int) {
	if t <= c.clock {
		return
	}
	logrus.Debugf("cpu idle from %d to %d", c.clock, t)
	c.metric.IdleTime += t - c.clock
	c.clock = t
}

// Execute runs task for duration ticks as one Gantt slice and reports whether
// the task completed. duration is capped at the task's remaining time.
func (c *CPU) Execute(task *Task, duration int) bool {
	if duration > task.RemainingTime {
		duration = task.RemainingTime
	}
	if !task.dispatched {
		task.dispatched = true
		task.ResponseTime = c.clock - task.ArrivalTime
	}
	logrus.Debugf("pid: %s dispatched at %d for %d", task.ID, c.clock, duration)

	c.gantt = append(c.gantt, GanttSlice{ProcessID: task.ID, Start: c.clock, Duration: duration})
	c.clock += duration
	c.metric.UtilizationTime += duration
	task.RemainingTime -= duration

	if task.RemainingTime == 0 {
		task.finalize(c.clock)
		logrus.Debugf("pid: %s completed at %d", task.ID, c.clock)
		return true
	}
	return false
}

func (c *CPU) Gantt() []GanttSlice {
	return c.gantt
}

func (c *CPU) Metric() CpuMetric {
	m := c.metric
	m.TotalTime = c.clock
	return m
}
