package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	sim "github.com/crossing-sim/crossing-sim/sim"
)

// RunPlan lists the scenarios a run executes. It can be loaded from YAML;
// the street layout and hit probability are not part of it.
type RunPlan struct {
	Seed        int64    `yaml:"seed"`
	Attempts    int      `yaml:"attempts"`
	Policies    []string `yaml:"policies"`
	FirstStep   bool     `yaml:"first_step"`
	Taxonomy    string   `yaml:"taxonomy"`
	ExampleWalk int      `yaml:"example_walk"` // index of the walk charted per policy
}

// DefaultRunPlan mirrors the CLI flag defaults.
func DefaultRunPlan() RunPlan {
	return RunPlan{
		Seed:        sim.DefaultSeed,
		Attempts:    10000,
		Policies:    []string{sim.PolicyUniform, sim.PolicyTurning, sim.PolicyContinuousTurning},
		FirstStep:   true,
		Taxonomy:    string(sim.TaxonomyExtended),
		ExampleWalk: 0,
	}
}

// LoadRunPlan reads a YAML run plan. Fields absent from the file keep their
// default values. Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadRunPlan(path string) (RunPlan, error) {
	plan := DefaultRunPlan()
	data, err := os.ReadFile(path)
	if err != nil {
		return plan, fmt.Errorf("reading run plan: %w", err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&plan); err != nil {
		return plan, fmt.Errorf("parsing run plan: %w", err)
	}
	return plan, nil
}

// Validate checks that all fields in the plan are valid.
func (p RunPlan) Validate() error {
	if p.Attempts <= 0 {
		return fmt.Errorf("attempts must be positive, got %d", p.Attempts)
	}
	if len(p.Policies) == 0 {
		return fmt.Errorf("at least one policy required")
	}
	for i, name := range p.Policies {
		if !sim.IsValidStepPolicy(name) {
			return fmt.Errorf("policies[%d]: %w %q; valid: A, B, C", i, sim.ErrInvalidPolicy, name)
		}
	}
	if _, err := sim.ParseTaxonomy(p.Taxonomy); err != nil {
		return err
	}
	if p.ExampleWalk < 0 || p.ExampleWalk >= p.Attempts {
		return fmt.Errorf("example_walk must be in [0, %d), got %d", p.Attempts, p.ExampleWalk)
	}
	return nil
}

// ScenarioConfig returns the scenario configuration for one policy of the plan.
func (p RunPlan) ScenarioConfig(policy string) sim.ScenarioConfig {
	return sim.ScenarioConfig{
		Policy:    policy,
		Attempts:  p.Attempts,
		Seed:      p.Seed,
		FirstStep: p.FirstStep,
		Taxonomy:  sim.Taxonomy(p.Taxonomy),
	}
}
