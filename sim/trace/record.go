// Package trace provides annotated visit records for head-scheduling runs.
// This package has no dependencies on sim/; it stores pure data types.
package trace

import "fmt"

// Kind classifies a stop in a visit sequence.
type Kind string

const (
	// KindStart is the head position before scheduling begins.
	KindStart Kind = "start"
	// KindServe is a stop at a pending request.
	KindServe Kind = "serve"
	// KindBoundary is a synthetic stop at a disk extreme (0 or disk_size-1).
	KindBoundary Kind = "boundary"
	// KindWrap is the circular restart at the opposite extreme (C-SCAN).
	KindWrap Kind = "wrap"
)

// Step captures a single stop of the head.
type Step struct {
	Track     int  `json:"track"`
	Seek      int  `json:"seek"`       // distance from the previous stop
	TotalSeek int  `json:"total_seek"` // cumulative distance up to and including this stop
	Kind      Kind `json:"kind"`
	Batch     int  `json:"batch,omitempty"` // 1-based N-Step batch; 0 outside batched policies
}

// Description renders the step the way the step log shows it.
func (s Step) Description() string {
	var d string
	switch s.Kind {
	case KindStart:
		return "Start"
	case KindServe:
		d = fmt.Sprintf("Serve %d (seek: %d)", s.Track, s.Seek)
	case KindBoundary:
		d = fmt.Sprintf("Scan to extreme %d (seek: %d)", s.Track, s.Seek)
	case KindWrap:
		d = fmt.Sprintf("Jump to %d (seek: %d)", s.Track, s.Seek)
	default:
		d = fmt.Sprintf("Move to %d (seek: %d)", s.Track, s.Seek)
	}
	if s.Batch > 0 {
		d += fmt.Sprintf(" [Batch %d]", s.Batch)
	}
	return d
}
