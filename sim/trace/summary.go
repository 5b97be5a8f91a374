package trace

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// LogSummary aggregates statistics from a Log.
type LogSummary struct {
	TotalWalks          int
	MeanSteps           float64
	StdDevSteps         float64
	MaxSteps            int
	MeanElapsedTime     float64
	MaxLateralDrift     float64        // largest |X| reached by any walk
	OutcomeDistribution map[string]int // outcome label → count of walks
}

// Summarize computes aggregate statistics from a Log.
// Safe for nil or empty logs (returns zero-value fields).
func Summarize(l *Log) *LogSummary {
	summary := &LogSummary{
		OutcomeDistribution: make(map[string]int),
	}
	if l == nil || len(l.Walks) == 0 {
		return summary
	}

	summary.TotalWalks = len(l.Walks)
	steps := make([]float64, 0, len(l.Walks))
	elapsed := make([]float64, 0, len(l.Walks))
	for _, w := range l.Walks {
		summary.OutcomeDistribution[w.Outcome]++
		steps = append(steps, float64(w.StepCount))
		elapsed = append(elapsed, w.ElapsedTime)
		if w.StepCount > summary.MaxSteps {
			summary.MaxSteps = w.StepCount
		}
		for _, p := range w.Points {
			if d := math.Abs(p.X); d > summary.MaxLateralDrift {
				summary.MaxLateralDrift = d
			}
		}
	}

	summary.MeanSteps = stat.Mean(steps, nil)
	if len(steps) > 1 {
		summary.StdDevSteps = stat.StdDev(steps, nil)
	}
	summary.MeanElapsedTime = stat.Mean(elapsed, nil)

	return summary
}
