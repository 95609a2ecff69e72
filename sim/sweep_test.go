package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/disk-sched-sim/sim/trace"
)

func runSweep(s sweep, start int, sorted []int, dir Direction, diskSize, forwardPivot, returnPivot int) *head {
	h := newRecordingHead(start, len(sorted)+3)
	s.run(h, sorted, dir, diskSize, forwardPivot, returnPivot)
	return h
}

func TestSweep_Instantiations(t *testing.T) {
	sorted := []int{10, 30, 70, 90}
	tests := []struct {
		name  string
		sweep sweep
		dir   Direction
		want  []int
	}{
		{"scan right", scanSweep, Right, []int{50, 70, 90, 99, 30, 10}},
		{"scan left", scanSweep, Left, []int{50, 30, 10, 0, 70, 90}},
		{"look right", lookSweep, Right, []int{50, 70, 90, 30, 10}},
		{"look left", lookSweep, Left, []int{50, 30, 10, 70, 90}},
		{"cscan right", cscanSweep, Right, []int{50, 70, 90, 99, 0, 10, 30}},
		{"clook right", clookSweep, Right, []int{50, 70, 90, 10, 30}},
		{"clook left", clookSweep, Left, []int{50, 30, 10, 90, 70}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := runSweep(tt.sweep, 50, sorted, tt.dir, 100, 50, 50)
			assert.Equal(t, tt.want, h.trace.Sequence())
			assert.Equal(t, trace.TotalSeek(tt.want), h.seek)
		})
	}
}

func TestSweep_BoundaryStopWithoutRequestsBeyond(t *testing.T) {
	// GIVEN every request below the head
	h := runSweep(scanSweep, 50, []int{10, 20}, Right, 100, 50, 50)

	// THEN SCAN still travels to the extreme before returning
	assert.Equal(t, []int{50, 99, 20, 10}, h.trace.Sequence())
	assert.Equal(t, 49+79+10, h.seek)
	assert.Equal(t, trace.KindBoundary, h.trace.Steps[1].Kind)
}

func TestSweep_CScanCountsWrap(t *testing.T) {
	// GIVEN every request at or above the head
	h := runSweep(cscanSweep, 10, []int{20, 30}, Right, 50, 10, 10)

	// THEN the trace still ends with both extremes and the jump is counted
	assert.Equal(t, []int{10, 20, 30, 49, 0}, h.trace.Sequence())
	assert.Equal(t, 10+10+19+49, h.seek)
	assert.Equal(t, trace.KindWrap, h.trace.Steps[4].Kind)
}

func TestSweep_RequestAtHead_ServedOnForwardLeg(t *testing.T) {
	// RIGHT forward leg uses >= and LEFT uses <=, so a request at the head is
	// served first in both directions.
	right := runSweep(scanSweep, 50, []int{40, 50, 60}, Right, 100, 50, 50)
	assert.Equal(t, []int{50, 50, 60, 99, 40}, right.trace.Sequence())

	left := runSweep(scanSweep, 50, []int{40, 50, 60}, Left, 100, 50, 50)
	assert.Equal(t, []int{50, 50, 40, 0, 60}, left.trace.Sequence())
}

func TestSweep_SeparatePivots(t *testing.T) {
	// GIVEN a head already moved to 80 whose return leg is anchored at 50
	h := runSweep(scanSweep, 80, []int{10, 60, 90}, Right, 100, 80, 50)

	// THEN 60 is neither on the forward leg (< 80) nor on the return leg (>= 50)
	assert.Equal(t, []int{80, 90, 99, 10}, h.trace.Sequence())
}

func TestSweep_CostOnlyHeadMatchesRecordingHead(t *testing.T) {
	sorted := []int{3, 8, 8, 15, 42, 77}
	for _, s := range []sweep{scanSweep, lookSweep, cscanSweep, clookSweep} {
		cost := newHead(20)
		s.run(cost, sorted, Right, 80, 20, 20)
		rec := runSweep(s, 20, sorted, Right, 80, 20, 20)
		require.Nil(t, cost.trace)
		assert.Equal(t, rec.seek, cost.seek)
		assert.Equal(t, rec.pos, cost.pos)
	}
}

func TestSweep_BoundaryStops(t *testing.T) {
	assert.Equal(t, 1, scanSweep.boundaryStops())
	assert.Equal(t, 0, lookSweep.boundaryStops())
	assert.Equal(t, 2, cscanSweep.boundaryStops())
	assert.Equal(t, 0, clookSweep.boundaryStops())
}
