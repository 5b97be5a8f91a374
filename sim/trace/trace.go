package trace

// Log collects walks in execution order. Append-only; owned by the scenario
// that produced it.
type Log struct {
	Policy string
	Walks  []Walk
}

// NewLog creates a Log ready for recording.
func NewLog(policy string) *Log {
	return &Log{
		Policy: policy,
		Walks:  make([]Walk, 0),
	}
}

// Record appends a completed walk.
func (l *Log) Record(walk Walk) {
	l.Walks = append(l.Walks, walk)
}

// Len returns the number of recorded walks.
func (l *Log) Len() int {
	return len(l.Walks)
}

// At returns the walk recorded at index i and whether it exists.
func (l *Log) At(i int) (Walk, bool) {
	if l == nil || i < 0 || i >= len(l.Walks) {
		return Walk{}, false
	}
	return l.Walks[i], true
}
