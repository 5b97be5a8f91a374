// Reduces a batch of walk outcomes into probability estimates.

package sim

import (
	"fmt"
	"io"
	"math"
)

// countOutcomes returns how many entries of outcomes are any of want.
func countOutcomes(outcomes []Outcome, want ...Outcome) int {
	n := 0
	for _, o := range outcomes {
		for _, w := range want {
			if o == w {
				n++
				break
			}
		}
	}
	return n
}

// percentage returns count/total as a percentage, 0 when total is 0.
func percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}

// SurvivalRate returns the percentage of walks that did not crash:
// success plus stay. Empty input yields 0.
func SurvivalRate(outcomes []Outcome) float64 {
	return percentage(countOutcomes(outcomes, OutcomeSuccess, OutcomeStay), len(outcomes))
}

// SuccessRate returns the percentage of walks that reached the far side.
// Empty input yields 0.
func SuccessRate(outcomes []Outcome) float64 {
	return percentage(countOutcomes(outcomes, OutcomeSuccess), len(outcomes))
}

// CrashRate returns the percentage of walks that ended in a collision.
// Empty input yields 0.
func CrashRate(outcomes []Outcome) float64 {
	return percentage(countOutcomes(outcomes, OutcomeCrash), len(outcomes))
}

// OutcomeMetrics aggregates the outcomes of one scenario for final reporting.
type OutcomeMetrics struct {
	Policy   string
	Total    int
	Success  int
	Stay     int
	Crash    int
	Survival float64 // percent
	SuccessP float64 // percent
	CrashP   float64 // percent

	// SurvivalStdErr is the binomial standard error of Survival, in percent.
	SurvivalStdErr float64
}

// NewOutcomeMetrics tallies outcomes for policy.
func NewOutcomeMetrics(policy string, outcomes []Outcome) *OutcomeMetrics {
	m := &OutcomeMetrics{
		Policy:   policy,
		Total:    len(outcomes),
		Success:  countOutcomes(outcomes, OutcomeSuccess),
		Stay:     countOutcomes(outcomes, OutcomeStay),
		Crash:    countOutcomes(outcomes, OutcomeCrash),
		Survival: SurvivalRate(outcomes),
		SuccessP: SuccessRate(outcomes),
		CrashP:   CrashRate(outcomes),
	}
	if m.Total > 0 {
		p := m.Survival / 100
		m.SurvivalStdErr = math.Sqrt(p*(1-p)/float64(m.Total)) * 100
	}
	return m
}

// Print writes the aggregated metrics to w.
func (m *OutcomeMetrics) Print(w io.Writer) {
	fmt.Fprintf(w, "=== Policy %s ===\n", m.Policy)
	fmt.Fprintf(w, "Walks                : %d\n", m.Total)
	fmt.Fprintf(w, "Success count        : %d\n", m.Success)
	fmt.Fprintf(w, "Stay count           : %d\n", m.Stay)
	fmt.Fprintf(w, "Crash count          : %d\n", m.Crash)
	if m.Total > 0 {
		fmt.Fprintf(w, "Probability of survival : %.2f%% (±%.2f)\n", m.Survival, m.SurvivalStdErr)
		fmt.Fprintf(w, "Probability of success  : %.2f%%\n", m.SuccessP)
		fmt.Fprintf(w, "Probability of crash    : %.2f%%\n", m.CrashP)
	}
}
