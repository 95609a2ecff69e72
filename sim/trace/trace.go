package trace

import "golang.org/x/exp/constraints"

// Distance is the idealized linear seek metric |a-b|.
func Distance[T constraints.Integer](a, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}

// VisitTrace collects the stops of one scheduling run.
type VisitTrace struct {
	Steps []Step
}

// NewVisitTrace creates a VisitTrace whose first stop is the starting head position.
// capacity is a size hint for the expected number of stops.
func NewVisitTrace(head, capacity int) *VisitTrace {
	steps := make([]Step, 0, max(capacity, 1))
	steps = append(steps, Step{Track: head, Kind: KindStart})
	return &VisitTrace{Steps: steps}
}

// Record appends a stop, deriving its seek and cumulative seek from the previous stop.
func (vt *VisitTrace) Record(track int, kind Kind, batch int) {
	prev := vt.Steps[len(vt.Steps)-1]
	seek := Distance(prev.Track, track)
	vt.Steps = append(vt.Steps, Step{
		Track:     track,
		Seek:      seek,
		TotalSeek: prev.TotalSeek + seek,
		Kind:      kind,
		Batch:     batch,
	})
}

// Sequence returns the visited tracks in order, starting with the head position.
func (vt *VisitTrace) Sequence() []int {
	seq := make([]int, len(vt.Steps))
	for i, s := range vt.Steps {
		seq[i] = s.Track
	}
	return seq
}

// TotalSeek returns the sum of absolute differences between consecutive positions.
func TotalSeek(sequence []int) int {
	total := 0
	for i := 1; i < len(sequence); i++ {
		total += Distance(sequence[i-1], sequence[i])
	}
	return total
}
