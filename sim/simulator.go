package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/disk-sched-sim/sim/trace"
)

// DefaultMaxRequests is the request capacity of DefaultEngine.
const DefaultMaxRequests = 256

// Result is the outcome of one scheduling run. Each call returns a fresh Result.
type Result struct {
	Policy    string       `json:"policy"`
	TotalSeek int          `json:"total_seek"`
	Sequence  []int        `json:"sequence"` // visited tracks, starting with the head position
	Steps     []trace.Step `json:"steps"`
}

// Len returns the number of entries in the visit sequence.
func (r *Result) Len() int {
	return len(r.Sequence)
}

// Engine runs scheduling policies against a configured request capacity.
// An Engine holds no per-run state and is safe for concurrent use.
type Engine struct {
	MaxRequests int // requests above this count fail with ErrTooManyRequests; <= 0 disables the check
}

// NewEngine creates an Engine that rejects request sets larger than maxRequests.
func NewEngine(maxRequests int) *Engine {
	return &Engine{MaxRequests: maxRequests}
}

// DefaultEngine backs the package-level entry points.
var DefaultEngine = NewEngine(DefaultMaxRequests)

func (e *Engine) check(policy Policy, p Params) error {
	if !policy.valid() {
		return fmt.Errorf("%w: %s", ErrUnknownPolicy, policy)
	}
	return p.validate(policy, e.MaxRequests)
}

// walk runs the policy routine on h. An empty request set leaves the head
// where it is: no boundary stops, zero seek.
func walk(policy Policy, h *head, p Params) {
	if len(p.Requests) == 0 {
		return
	}
	policySpecs[policy].schedule(h, p)
}

// SeekDistance returns the total seek distance of policy for p without
// building the visit sequence.
func (e *Engine) SeekDistance(policy Policy, p Params) (int, error) {
	if err := e.check(policy, p); err != nil {
		return 0, err
	}
	h := newHead(p.Head)
	walk(policy, h, p)
	return h.seek, nil
}

// VisitSequence returns the ordered tracks the head visits under policy,
// starting with the head position and including synthetic boundary stops.
func (e *Engine) VisitSequence(policy Policy, p Params) ([]int, error) {
	vt, err := e.record(policy, p)
	if err != nil {
		return nil, err
	}
	return vt.Sequence(), nil
}

func (e *Engine) record(policy Policy, p Params) (*trace.VisitTrace, error) {
	if err := e.check(policy, p); err != nil {
		return nil, err
	}
	h := newRecordingHead(p.Head, policy.maxSteps(p))
	walk(policy, h, p)
	return h.trace, nil
}

// Run computes both the seek distance and the visit sequence of policy for p
// and verifies that the sequence accounts for exactly that distance.
func (e *Engine) Run(policy Policy, p Params) (*Result, error) {
	cost, err := e.SeekDistance(policy, p)
	if err != nil {
		return nil, err
	}
	vt, err := e.record(policy, p)
	if err != nil {
		return nil, err
	}
	seq := vt.Sequence()
	if got := trace.TotalSeek(seq); got != cost {
		return nil, fmt.Errorf("%w: %s reported %d, sequence sums to %d", ErrTraceMismatch, policy, cost, got)
	}
	if limit := policy.maxSteps(p); len(seq) > limit {
		return nil, fmt.Errorf("%w: %s visited %d stops, bound is %d", ErrTraceMismatch, policy, len(seq), limit)
	}
	logrus.Debugf("%s: head=%d requests=%d total seek=%d stops=%d", policy, p.Head, len(p.Requests), cost, len(seq))
	return &Result{
		Policy:    policy.String(),
		TotalSeek: cost,
		Sequence:  seq,
		Steps:     vt.Steps,
	}, nil
}

// Run executes policy on DefaultEngine.
func Run(policy Policy, p Params) (*Result, error) {
	return DefaultEngine.Run(policy, p)
}

// SeekDistance computes the seek distance of policy on DefaultEngine.
func SeekDistance(policy Policy, p Params) (int, error) {
	return DefaultEngine.SeekDistance(policy, p)
}

// VisitSequence computes the visit sequence of policy on DefaultEngine.
func VisitSequence(policy Policy, p Params) ([]int, error) {
	return DefaultEngine.VisitSequence(policy, p)
}
