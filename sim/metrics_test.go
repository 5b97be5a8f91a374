package sim

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRates_EmptyOutcomes_Zero(t *testing.T) {
	assert.Equal(t, 0.0, SurvivalRate(nil))
	assert.Equal(t, 0.0, SuccessRate(nil))
	assert.Equal(t, 0.0, CrashRate([]Outcome{}))
}

func TestRates_HalfSuccess(t *testing.T) {
	outcomes := []Outcome{OutcomeSuccess, OutcomeSuccess, OutcomeCrash, OutcomeCrash}
	assert.Equal(t, 50.0, SurvivalRate(outcomes))
	assert.Equal(t, 50.0, SuccessRate(outcomes))
	assert.Equal(t, 50.0, CrashRate(outcomes))
}

func TestRates_StayCountsAsSurvivalNotSuccess(t *testing.T) {
	outcomes := []Outcome{OutcomeSuccess, OutcomeStay, OutcomeStay, OutcomeCrash}
	assert.Equal(t, 75.0, SurvivalRate(outcomes))
	assert.Equal(t, 25.0, SuccessRate(outcomes))
}

func TestNewOutcomeMetrics_Counts(t *testing.T) {
	// GIVEN a mixed batch
	outcomes := []Outcome{OutcomeSuccess, OutcomeStay, OutcomeCrash, OutcomeCrash, OutcomeSuccess}

	// WHEN tallied
	m := NewOutcomeMetrics("B", outcomes)

	// THEN counts and rates line up
	assert.Equal(t, 5, m.Total)
	assert.Equal(t, 2, m.Success)
	assert.Equal(t, 1, m.Stay)
	assert.Equal(t, 2, m.Crash)
	assert.Equal(t, 60.0, m.Survival)
	assert.Equal(t, 40.0, m.SuccessP)
	assert.Equal(t, 40.0, m.CrashP)
	// sqrt(0.6*0.4/5) = 0.21908...
	assert.InDelta(t, 21.9089, m.SurvivalStdErr, 1e-3)
}

func TestNewOutcomeMetrics_Empty(t *testing.T) {
	m := NewOutcomeMetrics("A", nil)
	assert.Equal(t, 0, m.Total)
	assert.Equal(t, 0.0, m.SurvivalStdErr)
}

func TestOutcomeMetrics_Print(t *testing.T) {
	var buf bytes.Buffer
	NewOutcomeMetrics("C", []Outcome{OutcomeSuccess, OutcomeCrash}).Print(&buf)

	out := buf.String()
	assert.Contains(t, out, "=== Policy C ===")
	assert.Contains(t, out, "Crash count          : 1")
	assert.Contains(t, out, "Probability of survival : 50.00%")
}

func TestOutcomeMetrics_Print_EmptyOmitsRates(t *testing.T) {
	var buf bytes.Buffer
	NewOutcomeMetrics("A", nil).Print(&buf)
	assert.NotContains(t, buf.String(), "Probability")
}
