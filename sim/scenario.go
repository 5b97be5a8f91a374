package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/crossing-sim/crossing-sim/sim/trace"
)

// ScenarioConfig describes a batch of walks for one step policy.
type ScenarioConfig struct {
	Policy    string   // step policy name (A, B, C)
	Attempts  int      // number of walks Run performs
	Seed      int64    // master seed; the walk stream uses it directly
	FirstStep bool     // take the fixed opening step straight across before random steps
	Taxonomy  Taxonomy // outcome labelling; empty means extended
}

// DefaultScenarioConfig returns the configuration used by the CLI defaults.
func DefaultScenarioConfig(policy string) ScenarioConfig {
	return ScenarioConfig{
		Policy:    policy,
		Attempts:  10000,
		Seed:      DefaultSeed,
		FirstStep: true,
		Taxonomy:  TaxonomyExtended,
	}
}

// Scenario runs repeated walks for one policy. It owns every walker and
// trace it creates. Walks run strictly one after another: each consumes the
// shared walk stream, so reordering them would change which draws each walk
// sees.
type Scenario struct {
	config     ScenarioConfig
	street     *Street
	policy     StepPolicy
	rng        *PartitionedRNG
	source     RandomSource
	classifier *Classifier
	log        *trace.Log
}

// NewScenario validates cfg and seeds the scenario's random stream.
func NewScenario(cfg ScenarioConfig) (*Scenario, error) {
	policy, err := NewStepPolicy(cfg.Policy)
	if err != nil {
		return nil, err
	}
	taxonomy, err := ParseTaxonomy(string(cfg.Taxonomy))
	if err != nil {
		return nil, err
	}
	if cfg.Attempts < 0 {
		return nil, fmt.Errorf("attempts must be non-negative, got %d", cfg.Attempts)
	}
	cfg.Taxonomy = taxonomy

	rng := NewPartitionedRNG(NewSimulationKey(cfg.Seed))
	return newScenario(cfg, policy, rng.ForSubsystem(SubsystemWalk), rng), nil
}

// NewScenarioWithSource builds a scenario that draws from src instead of a
// seeded stream. Used to replay scripted draws.
func NewScenarioWithSource(cfg ScenarioConfig, src RandomSource) (*Scenario, error) {
	policy, err := NewStepPolicy(cfg.Policy)
	if err != nil {
		return nil, err
	}
	taxonomy, err := ParseTaxonomy(string(cfg.Taxonomy))
	if err != nil {
		return nil, err
	}
	cfg.Taxonomy = taxonomy
	return newScenario(cfg, policy, src, nil), nil
}

func newScenario(cfg ScenarioConfig, policy StepPolicy, src RandomSource, rng *PartitionedRNG) *Scenario {
	street := NewStreet()
	return &Scenario{
		config:     cfg,
		street:     street,
		policy:     policy,
		rng:        rng,
		source:     src,
		classifier: NewClassifier(street, cfg.Taxonomy, src),
		log:        trace.NewLog(cfg.Policy),
	}
}

// Config returns the validated configuration.
func (s *Scenario) Config() ScenarioConfig {
	return s.config
}

// Street returns the street walks are run on.
func (s *Scenario) Street() *Street {
	return s.street
}

// RunSingleWalk runs one walk to a terminal outcome and records its trace.
func (s *Scenario) RunSingleWalk() Outcome {
	w := NewWalker(s.policy, s.source)
	points := []trace.Point{w.Position.Point()}

	if s.config.FirstStep {
		w.FirstStep()
		points = append(points, w.Position.Point())
	}

	var outcome Outcome
	for {
		w.Step()
		points = append(points, w.Position.Point())
		if o, done := s.classifier.Classify(w); done {
			outcome = o
			break
		}
	}

	attempt := s.log.Len()
	s.log.Record(trace.Walk{
		Attempt:     attempt,
		Policy:      s.policy.Name(),
		Outcome:     string(outcome),
		Points:      points,
		StepCount:   w.StepCount,
		ElapsedTime: w.ElapsedTime,
	})
	logrus.Tracef("[policy %s] attempt %d: %s after %d steps at (%.3f, %.3f)",
		s.policy.Name(), attempt, outcome, w.StepCount, w.Position.X, w.Position.Y)
	return outcome
}

// RunBatch runs n walks sequentially and returns their outcomes in order.
func (s *Scenario) RunBatch(n int) []Outcome {
	outcomes := make([]Outcome, 0, n)
	for i := 0; i < n; i++ {
		outcomes = append(outcomes, s.RunSingleWalk())
	}
	logrus.WithFields(logrus.Fields{
		"policy":   s.policy.Name(),
		"walks":    n,
		"taxonomy": s.config.Taxonomy,
	}).Debug("batch complete")
	return outcomes
}

// Run runs the configured number of attempts.
func (s *Scenario) Run() []Outcome {
	logrus.Infof("Running policy %s: %d attempts, seed=%d, firstStep=%v",
		s.config.Policy, s.config.Attempts, s.config.Seed, s.config.FirstStep)
	return s.RunBatch(s.config.Attempts)
}

// Traces returns the walks recorded so far, in execution order.
func (s *Scenario) Traces() []trace.Walk {
	return s.log.Walks
}

// TraceLog returns the underlying trace log.
func (s *Scenario) TraceLog() *trace.Log {
	return s.log
}

// Key returns the simulation key the scenario was seeded with.
// Zero-valued for scenarios built on an explicit source.
func (s *Scenario) Key() SimulationKey {
	if s.rng == nil {
		return 0
	}
	return s.rng.Key()
}
