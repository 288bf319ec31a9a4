// Package render prints simulation results for terminals. It only formats values
// computed by the engine.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/schedulers"
)

// cellsPerTick is the width of one tick in the Gantt bar.
const cellsPerTick = 2

func Title(w io.Writer, title string) {
	_, _ = fmt.Fprintf(w, "------ %s ------\n", title)
}

// Gantt prints one bar cell per slice, sized by duration, with an idle marker
// between slices that do not touch.
func Gantt(w io.Writer, gantt []core.GanttSlice) {
	var bar, axis strings.Builder
	bar.WriteString("|")
	prevEnd := 0
	if len(gantt) > 0 {
		prevEnd = gantt[0].Start
	}
	axis.WriteString(fmt.Sprint(prevEnd))
	for _, g := range gantt {
		if g.Start > prevEnd {
			cell := cellWidth(g.Start-prevEnd, "idle")
			bar.WriteString(center("idle", cell) + "|")
			axis.WriteString(pad(fmt.Sprint(g.Start), cell+1))
		}
		cell := cellWidth(g.Duration, g.ProcessID)
		bar.WriteString(center(g.ProcessID, cell) + "|")
		axis.WriteString(pad(fmt.Sprint(g.End()), cell+1))
		prevEnd = g.End()
	}
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprintln(w, bar.String())
	_, _ = fmt.Fprintf(w, "%s\n\n", axis.String())
}

func cellWidth(duration int, label string) int {
	width := duration * cellsPerTick
	if width < len(label)+2 {
		width = len(label) + 2
	}
	return width
}

func center(s string, width int) string {
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-len(s)-left)
}

// pad right-aligns s in width columns.
func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// Schedule prints the per-process table of a result with the averages in the footer.
func Schedule(w io.Writer, result *core.SimulationResult) {
	rows := make([][]string, len(result.Processes))
	for i, p := range result.Processes {
		rows[i] = []string{
			p.ID,
			fmt.Sprint(p.Priority),
			fmt.Sprint(p.BurstTime),
			fmt.Sprint(p.ArrivalTime),
			fmt.Sprint(p.WaitingTime),
			fmt.Sprint(p.TurnaroundTime),
			fmt.Sprint(p.ResponseTime),
			fmt.Sprint(p.CompletionTime),
		}
	}

	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Wait", "Turnaround", "Response", "Exit"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", result.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", result.AverageTurnaroundTime),
		fmt.Sprintf("Average\n%.2f", result.AverageResponseTime),
		fmt.Sprintf("Throughput\n%.2f/t", result.Throughput)})
	table.Render()
}

// Result prints the title, Gantt chart and schedule table for one run.
func Result(w io.Writer, result *core.SimulationResult) {
	title := result.Policy
	if p, err := schedulers.ParsePolicy(result.Policy); err == nil {
		title = p.Label()
	}
	if result.Quantum > 0 {
		title = fmt.Sprintf("%s (quantum %d)", title, result.Quantum)
	}
	Title(w, title)
	Gantt(w, result.Gantt)
	Schedule(w, result)
	_, _ = fmt.Fprintf(w, "CPU utilization: %.2f%%  idle: %d  total: %d\n\n",
		result.CpuUtilization*100, result.IdleTime, result.TotalTime)
}

// Comparison prints one summary row per policy.
func Comparison(w io.Writer, results map[schedulers.Policy]*core.SimulationResult) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Avg Wait", "Avg Turnaround", "Avg Response", "Utilization"})
	for _, p := range schedulers.Policies {
		r, ok := results[p]
		if !ok {
			continue
		}
		table.Append([]string{
			p.Label(),
			fmt.Sprintf("%.2f", r.AverageWaitingTime),
			fmt.Sprintf("%.2f", r.AverageTurnaroundTime),
			fmt.Sprintf("%.2f", r.AverageResponseTime),
			fmt.Sprintf("%.2f%%", r.CpuUtilization*100),
		})
	}
	table.Render()
}

func Recommendation(w io.Writer, policy schedulers.Policy, stats schedulers.WorkloadStats) {
	_, _ = fmt.Fprintf(w, "Recommendation: %s\n", policy.Label())
	_, _ = fmt.Fprintf(w, "  mean burst %.2f, burst variance %.2f, priorities set: %t\n",
		stats.MeanBurst, stats.BurstVariance, stats.HasPriority)
	_, _ = fmt.Fprintln(w, "  (heuristic advice, not a guarantee of the best schedule)")
}
