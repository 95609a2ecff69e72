package sim

import "github.com/inference-sim/disk-sched-sim/sim/trace"

// head models the device head during one run. It always accumulates seek
// distance; when a VisitTrace is attached it also records every stop.
type head struct {
	pos   int
	seek  int
	batch int // current N-Step batch, 1-based; 0 outside batched policies
	trace *trace.VisitTrace
}

func newHead(start int) *head {
	return &head{pos: start}
}

func newRecordingHead(start, capacity int) *head {
	return &head{pos: start, trace: trace.NewVisitTrace(start, capacity)}
}

// moveTo services a stop at track. Zero-distance moves are still recorded.
func (h *head) moveTo(track int, kind trace.Kind) {
	h.seek += trace.Distance(h.pos, track)
	h.pos = track
	if h.trace != nil {
		h.trace.Record(track, kind, h.batch)
	}
}

func (h *head) serve(track int) {
	h.moveTo(track, trace.KindServe)
}
