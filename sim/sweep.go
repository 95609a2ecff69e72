package sim

import "github.com/inference-sim/disk-sched-sim/sim/trace"

// sweep is a directional traversal of a sorted request set. Every policy of the
// SCAN family is an instance of it; the fields are the only places where those
// policies differ.
//
// A sweep runs in two legs. Moving RIGHT, the forward leg services tracks
// >= forwardPivot ascending and the return leg services tracks < returnPivot.
// Moving LEFT, the forward leg services tracks <= forwardPivot descending and
// the return leg services tracks > returnPivot. The two pivots coincide for a
// single sweep; they are kept apart so the F-SCAN and N-Step disciplines stay
// explicit.
type sweep struct {
	// boundary sends the head to the disk extreme in the sweep direction
	// after the forward leg, even when no request sits there.
	boundary bool
	// circular keeps the return leg moving in the sweep direction. With
	// boundary set the head first restarts at the opposite extreme (C-SCAN);
	// without it the head jumps straight to the first request (C-LOOK).
	circular bool
}

var (
	scanSweep  = sweep{boundary: true}
	lookSweep  = sweep{}
	cscanSweep = sweep{boundary: true, circular: true}
	clookSweep = sweep{circular: true}
)

// run moves h over sorted (ascending) in direction dir. diskSize is read only
// when s.boundary is set.
func (s sweep) run(h *head, sorted []int, dir Direction, diskSize, forwardPivot, returnPivot int) {
	n := len(sorted)
	if dir == Right {
		for i := 0; i < n; i++ {
			if sorted[i] >= forwardPivot {
				h.serve(sorted[i])
			}
		}
		if s.boundary {
			h.moveTo(diskSize-1, trace.KindBoundary)
		}
		if s.circular {
			if s.boundary {
				h.moveTo(0, trace.KindWrap)
			}
			for i := 0; i < n; i++ {
				if sorted[i] < returnPivot {
					h.serve(sorted[i])
				}
			}
			return
		}
		for i := n - 1; i >= 0; i-- {
			if sorted[i] < returnPivot {
				h.serve(sorted[i])
			}
		}
		return
	}

	for i := n - 1; i >= 0; i-- {
		if sorted[i] <= forwardPivot {
			h.serve(sorted[i])
		}
	}
	if s.boundary {
		h.moveTo(0, trace.KindBoundary)
	}
	if s.circular {
		if s.boundary {
			h.moveTo(diskSize-1, trace.KindWrap)
		}
		for i := n - 1; i >= 0; i-- {
			if sorted[i] > returnPivot {
				h.serve(sorted[i])
			}
		}
		return
	}
	for i := 0; i < n; i++ {
		if sorted[i] > returnPivot {
			h.serve(sorted[i])
		}
	}
}

// boundaryStops is the number of synthetic stops one run of s adds.
func (s sweep) boundaryStops() int {
	stops := 0
	if s.boundary {
		stops++
		if s.circular {
			stops++
		}
	}
	return stops
}
