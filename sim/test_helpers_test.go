package sim

import "fmt"

// scriptedSource replays fixed draws so walks can be checked exactly.
// Each draw kind has its own queue; running out of a queue panics, which
// also catches draws a test expects never to happen.
type scriptedSource struct {
	floats   []float64
	uniforms []float64
	exps     []float64
	ints     []int
}

func (s *scriptedSource) Float64() float64 {
	if len(s.floats) == 0 {
		panic("scriptedSource: unexpected Float64 draw")
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *scriptedSource) Uniform(lo, hi float64) float64 {
	if len(s.uniforms) == 0 {
		panic(fmt.Sprintf("scriptedSource: unexpected Uniform(%v, %v) draw", lo, hi))
	}
	v := s.uniforms[0]
	s.uniforms = s.uniforms[1:]
	return v
}

func (s *scriptedSource) Exponential(rate float64) float64 {
	if len(s.exps) == 0 {
		panic(fmt.Sprintf("scriptedSource: unexpected Exponential(%v) draw", rate))
	}
	v := s.exps[0]
	s.exps = s.exps[1:]
	return v
}

func (s *scriptedSource) Intn(n int) int {
	if len(s.ints) == 0 {
		panic(fmt.Sprintf("scriptedSource: unexpected Intn(%d) draw", n))
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v
}

// exhausted reports whether every scripted draw was consumed.
func (s *scriptedSource) exhausted() bool {
	return len(s.floats) == 0 && len(s.uniforms) == 0 && len(s.exps) == 0 && len(s.ints) == 0
}
