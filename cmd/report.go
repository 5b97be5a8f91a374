package cmd

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"

	sim "github.com/crossing-sim/crossing-sim/sim"
	"github.com/crossing-sim/crossing-sim/sim/trace"
)

// PolicyResult is everything a run produced for one policy.
type PolicyResult struct {
	Policy   string
	Outcomes []sim.Outcome
	Metrics  *sim.OutcomeMetrics
	Summary  *trace.LogSummary
	Traces   *trace.Log
}

// RunScenarios runs one scenario per policy in plan order. Each scenario is
// seeded afresh from the plan seed.
func RunScenarios(plan RunPlan) ([]PolicyResult, error) {
	results := make([]PolicyResult, 0, len(plan.Policies))
	for _, policy := range plan.Policies {
		s, err := sim.NewScenario(plan.ScenarioConfig(policy))
		if err != nil {
			return nil, fmt.Errorf("policy %s: %w", policy, err)
		}
		outcomes := s.Run()
		results = append(results, PolicyResult{
			Policy:   policy,
			Outcomes: outcomes,
			Metrics:  sim.NewOutcomeMetrics(policy, outcomes),
			Summary:  trace.Summarize(s.TraceLog()),
			Traces:   s.TraceLog(),
		})
	}
	return results, nil
}

// PrintReport writes per-policy results and a comparison table to w.
func PrintReport(w io.Writer, results []PolicyResult, showOutcomes, color bool) {
	au := aurora.NewAurora(color)
	for _, r := range results {
		if showOutcomes {
			fmt.Fprintf(w, "Results for policy %s: %v\n", r.Policy, r.Outcomes)
		}
		r.Metrics.Print(w)
		fmt.Fprintf(w, "Mean steps per walk  : %.2f (sd %.2f, max %d)\n",
			r.Summary.MeanSteps, r.Summary.StdDevSteps, r.Summary.MaxSteps)
		fmt.Fprintf(w, "Mean elapsed time    : %.2f\n", r.Summary.MeanElapsedTime)
		fmt.Fprintf(w, "Max lateral drift    : %.2f\n\n", r.Summary.MaxLateralDrift)
	}

	fmt.Fprintln(w, "=== Policy Comparison ===")
	fmt.Fprintf(w, "%-8s %10s %10s %10s\n", "policy", "survival", "success", "crash")
	for _, r := range results {
		fmt.Fprintf(w, "%-8s %s %s %s\n", r.Policy,
			au.Green(fmt.Sprintf("%9.2f%%", r.Metrics.Survival)),
			au.Cyan(fmt.Sprintf("%9.2f%%", r.Metrics.SuccessP)),
			au.Red(fmt.Sprintf("%9.2f%%", r.Metrics.CrashP)))
	}
}
