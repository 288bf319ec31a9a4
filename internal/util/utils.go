package util

import "cpu-scheduler/internal/core"

func CalculateAverage(processDetails []core.ProcessResult) (averageWaitingTime, averageResponseTime, averageTurnAroundTime float64) {
	if len(processDetails) == 0 {
		return
	}
	var waitingTimeSum float64
	var responseTimeSum float64
	var turnAroundTimeSum float64

	for _, process := range processDetails {
		waitingTimeSum += float64(process.WaitingTime)
		responseTimeSum += float64(process.ResponseTime)
		turnAroundTimeSum += float64(process.TurnaroundTime)
	}

	processCount := float64(len(processDetails))

	averageWaitingTime = waitingTimeSum / processCount
	averageResponseTime = responseTimeSum / processCount
	averageTurnAroundTime = turnAroundTimeSum / processCount
	return
}

// MeanVariance returns the mean and population variance of values.
func MeanVariance(values []int) (mean, variance float64) {
	if len(values) == 0 {
		return
	}
	n := float64(len(values))
	for _, v := range values {
		mean += float64(v)
	}
	mean /= n
	for _, v := range values {
		d := float64(v) - mean
		variance += d * d
	}
	variance /= n
	return
}
