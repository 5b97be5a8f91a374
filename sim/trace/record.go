// Package trace provides walk-trace recording for crossing simulations.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// Point is one recorded position. Y is progress across the street.
type Point struct {
	X float64
	Y float64
}

// Walk captures the full path of a single attempt.
type Walk struct {
	Attempt     int     // zero-based index in execution order
	Policy      string  // step policy name
	Outcome     string  // terminal outcome label
	Points      []Point // origin first, terminal position last
	StepCount   int
	ElapsedTime float64
}

// Start returns the first recorded point. Callers must not pass an empty walk.
func (w Walk) Start() Point {
	return w.Points[0]
}

// End returns the last recorded point. Callers must not pass an empty walk.
func (w Walk) End() Point {
	return w.Points[len(w.Points)-1]
}

// Xs returns the X coordinates in recording order.
func (w Walk) Xs() []float64 {
	xs := make([]float64, len(w.Points))
	for i, p := range w.Points {
		xs[i] = p.X
	}
	return xs
}

// Ys returns the Y coordinates in recording order.
func (w Walk) Ys() []float64 {
	ys := make([]float64, len(w.Points))
	for i, p := range w.Points {
		ys[i] = p.Y
	}
	return ys
}
