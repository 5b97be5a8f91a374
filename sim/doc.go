// Package sim provides the Monte-Carlo core for simulating a walker crossing
// a street with dangerous lanes.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - street.go: the fixed zone layout and zone lookup
//   - policy.go: the three step policies (A uniform, B turning, C continuous-time turning)
//   - outcome.go: collision and boundary checks that end a walk
//   - scenario.go: the walk loop and batch runner
//
// # Determinism
//
// A Scenario seeds one stream (rng.go, SubsystemWalk) from its seed and every
// walk in the batch consumes it in order. Identical seeds produce identical
// outcomes and traces. Walks must run sequentially; a concurrent runner would
// need one isolated stream per attempt (SubsystemAttempt).
//
// # Sub-packages
//   - sim/trace/: walk trace recording and summaries (pure data)
//   - sim/chart/: HTML rendering of walks and rate comparisons
package sim
