package sim

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrInvalidPolicy is returned when a step policy name is not recognized.
var ErrInvalidPolicy = errors.New("invalid step policy")

const (
	PolicyUniform           = "A"
	PolicyTurning           = "B"
	PolicyContinuousTurning = "C"
)

// ValidStepPolicies is the set of recognized step policy names.
// Shared by IsValidStepPolicy and NewStepPolicy.
var ValidStepPolicies = map[string]bool{
	PolicyUniform:           true,
	PolicyTurning:           true,
	PolicyContinuousTurning: true,
}

// IsValidStepPolicy returns true if name is a recognized step policy.
func IsValidStepPolicy(name string) bool {
	return ValidStepPolicies[name]
}

// StepPolicy moves a walker. Implementations own every draw they make from
// the RandomSource and MUST consume it in a fixed order so walks are
// reproducible. Step counting is done by the Walker, not the policy.
type StepPolicy interface {
	Name() string
	// Step performs one random step.
	Step(w *Walker, rng RandomSource)
	// FirstStep performs the fixed opening move straight across the street.
	FirstStep(w *Walker, rng RandomSource)
}

// MaxTurn bounds the turning increment of the turning policies, in radians.
const MaxTurn = 2 * math.Pi / 3

// TurningAngleCount is the number of discrete turning increments policy B picks from.
const TurningAngleCount = 240

// UniformStep moves left, right or forward by a fixed distance:
// left and right with probability 1/4 each, forward with probability 1/2.
type UniformStep struct{}

func (UniformStep) Name() string { return PolicyUniform }

func (UniformStep) Step(w *Walker, rng RandomSource) {
	u := rng.Float64()
	switch {
	case u < 0.25:
		w.Position.X -= Velocity
	case u < 0.5:
		w.Position.X += Velocity
	default:
		w.Position.Y += Velocity
	}
	w.ElapsedTime++
}

func (UniformStep) FirstStep(w *Walker, _ RandomSource) {
	w.Position.Y += Velocity
	w.ElapsedTime++
}

// TurningStep turns by one of TurningAngleCount equally spaced increments in
// [-MaxTurn, MaxTurn] and then moves a unit of time along the new heading.
type TurningStep struct {
	angles []float64
}

// NewTurningStep builds the increment table.
func NewTurningStep() *TurningStep {
	return &TurningStep{angles: floats.Span(make([]float64, TurningAngleCount), -MaxTurn, MaxTurn)}
}

func (t *TurningStep) Name() string { return PolicyTurning }

// Angles returns the turning increments the policy chooses from.
func (t *TurningStep) Angles() []float64 {
	out := make([]float64, len(t.angles))
	copy(out, t.angles)
	return out
}

func (t *TurningStep) Step(w *Walker, rng RandomSource) {
	w.Heading += t.angles[rng.Intn(len(t.angles))]
	w.advance(Velocity)
	w.ElapsedTime++
}

func (t *TurningStep) FirstStep(w *Walker, _ RandomSource) {
	w.Position.Y += Velocity
	w.ElapsedTime++
}

// ContinuousTurningStep waits an exponentially distributed time (rate 1),
// turns by a uniform increment in [-MaxTurn, MaxTurn], and moves for the
// waited time along the new heading.
type ContinuousTurningStep struct{}

func (ContinuousTurningStep) Name() string { return PolicyContinuousTurning }

func (ContinuousTurningStep) Step(w *Walker, rng RandomSource) {
	tau := rng.Exponential(1)
	alpha := rng.Uniform(-MaxTurn, MaxTurn)
	w.Heading += alpha
	w.ElapsedTime += tau
	w.advance(Velocity * tau)
}

// FirstStep draws the waiting time as usual but does not turn.
func (ContinuousTurningStep) FirstStep(w *Walker, rng RandomSource) {
	tau := rng.Exponential(1)
	w.ElapsedTime += tau
	w.Position.Y += Velocity * tau
}

// NewStepPolicy creates a StepPolicy by name.
// Valid names are defined in ValidStepPolicies.
func NewStepPolicy(name string) (StepPolicy, error) {
	if !IsValidStepPolicy(name) {
		return nil, fmt.Errorf("%w %q; valid: A, B, C", ErrInvalidPolicy, name)
	}
	switch name {
	case PolicyUniform:
		return UniformStep{}, nil
	case PolicyTurning:
		return NewTurningStep(), nil
	case PolicyContinuousTurning:
		return ContinuousTurningStep{}, nil
	default:
		panic(fmt.Sprintf("unhandled step policy %q", name))
	}
}

// NewWalkerForPolicy creates a walker at the origin for the named policy.
func NewWalkerForPolicy(name string, rng RandomSource) (*Walker, error) {
	policy, err := NewStepPolicy(name)
	if err != nil {
		return nil, err
	}
	return NewWalker(policy, rng), nil
}
