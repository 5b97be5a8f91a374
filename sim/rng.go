package sim

import (
	"fmt"
	"hash/fnv"
	"math/rand"
)

// DefaultSeed is the master seed used when none is supplied.
const DefaultSeed int64 = 43

// === SimulationKey ===

// SimulationKey uniquely identifies a reproducible simulation run.
// Two scenarios with the same SimulationKey and identical configuration
// MUST produce identical outcomes and traces.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// === Subsystem Constants ===

const (
	// SubsystemWalk is the sequential stream consumed by a Scenario.
	// Uses master seed directly so --seed reproduces a single seeded generator.
	SubsystemWalk = "walk"
)

// SubsystemAttempt returns the subsystem name for attempt N.
// Each attempt gets an isolated stream, which is what a concurrent runner
// would need to stay reproducible regardless of scheduling order.
func SubsystemAttempt(id int) string {
	return fmt.Sprintf("attempt_%d", id)
}

// === RandomSource ===

// RandomSource supplies the draws a walk consumes. Draws are taken in strict
// call order, so two sources seeded identically yield identical walks only if
// they are consumed by the same sequence of calls.
type RandomSource interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// Uniform returns a uniform value in [lo, hi).
	Uniform(lo, hi float64) float64
	// Exponential returns an exponentially distributed value with the given rate.
	Exponential(rate float64) float64
	// Intn returns a uniform index in [0, n); used for choice-from-set draws.
	Intn(n int) int
}

// SeededSource is the RandomSource backed by math/rand.
//
// Thread-safety: NOT thread-safe.
type SeededSource struct {
	rng *rand.Rand
}

// NewSeededSource wraps an existing *rand.Rand.
func NewSeededSource(rng *rand.Rand) *SeededSource {
	return &SeededSource{rng: rng}
}

func (s *SeededSource) Float64() float64 {
	return s.rng.Float64()
}

func (s *SeededSource) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*s.rng.Float64()
}

func (s *SeededSource) Exponential(rate float64) float64 {
	return s.rng.ExpFloat64() / rate
}

func (s *SeededSource) Intn(n int) int {
	return s.rng.Intn(n)
}

// === PartitionedRNG ===

// PartitionedRNG provides deterministic, isolated RNG instances per subsystem.
//
// Derivation formula:
//   - For SubsystemWalk: uses masterSeed directly
//   - For all other subsystems: masterSeed XOR fnv1a64(subsystemName)
//
// Thread-safety: NOT thread-safe. Must be called from single goroutine.
type PartitionedRNG struct {
	key        SimulationKey
	subsystems map[string]*SeededSource
}

// NewPartitionedRNG creates a PartitionedRNG from a SimulationKey.
func NewPartitionedRNG(key SimulationKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:        key,
		subsystems: make(map[string]*SeededSource),
	}
}

// ForSubsystem returns a deterministically-seeded source for the named subsystem.
// The same subsystem name always returns the same instance (cached).
// Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *SeededSource {
	if src, ok := p.subsystems[name]; ok {
		return src
	}

	var derivedSeed int64
	if name == SubsystemWalk {
		derivedSeed = int64(p.key)
	} else {
		derivedSeed = int64(p.key) ^ fnv1a64(name)
	}

	src := NewSeededSource(rand.New(rand.NewSource(derivedSeed)))
	p.subsystems[name] = src
	return src
}

// Key returns the SimulationKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() SimulationKey {
	return p.key
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
