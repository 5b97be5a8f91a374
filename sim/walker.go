package sim

import (
	"math"

	"github.com/crossing-sim/crossing-sim/sim/trace"
)

// Velocity is the distance covered per unit of time.
const Velocity = 2.0

// Position is a point on the street plane. Y runs across the street and is
// the coordinate used for zone and boundary checks; X runs along it.
type Position struct {
	X float64
	Y float64
}

// Point converts the position into a trace point.
func (p Position) Point() trace.Point {
	return trace.Point{X: p.X, Y: p.Y}
}

// Walker is one attempt at crossing. It is created at the origin and only
// mutated by its own step policy.
//
// StepCount counts every step taken; ElapsedTime accumulates the time each
// step consumed (1 per step for discrete policies, the exponential draw for
// the continuous-time policy).
type Walker struct {
	Position    Position
	Heading     float64 // radians; 0 points along +X, π/2 straight across
	StepCount   int
	ElapsedTime float64

	policy StepPolicy
	rng    RandomSource
}

// NewWalker creates a walker at the origin that steps with the given policy,
// drawing from rng.
func NewWalker(policy StepPolicy, rng RandomSource) *Walker {
	return &Walker{policy: policy, rng: rng}
}

// Policy returns the walker's step policy.
func (w *Walker) Policy() StepPolicy {
	return w.policy
}

// Step advances the walker by one policy step.
func (w *Walker) Step() {
	w.policy.Step(w, w.rng)
	w.StepCount++
}

// FirstStep performs the fixed opening move straight across the street.
func (w *Walker) FirstStep() {
	w.policy.FirstStep(w, w.rng)
	w.StepCount++
}

// VerticalPosition returns the walker's progress across the street.
func (w *Walker) VerticalPosition() float64 {
	return w.Position.Y
}

// advance moves the walker distance units along its current heading.
func (w *Walker) advance(distance float64) {
	w.Position.X += distance * math.Cos(w.Heading)
	w.Position.Y += distance * math.Sin(w.Heading)
}
