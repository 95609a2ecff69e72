// Reports the seek behaviour of a finished run: total and per-move seek
// statistics, boundary stops, and the visit sequence.

package sim

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/inference-sim/disk-sched-sim/sim/trace"
)

// Metrics aggregates statistics about a scheduling run for final reporting.
type Metrics struct {
	Policy    string `json:"policy"`
	Head      int    `json:"head"`
	Direction string `json:"direction,omitempty"`
	DiskSize  int    `json:"disk_size,omitempty"`
	StepSize  int    `json:"step_size,omitempty"`
	Requests  int    `json:"requests"`
	trace.Summary
	Sequence []int        `json:"sequence"`
	Steps    []trace.Step `json:"steps,omitempty"`
}

// NewMetrics builds the report for result, which was produced by running policy on p.
// Parameters the policy does not read are left out.
func NewMetrics(policy Policy, p Params, result *Result) *Metrics {
	m := &Metrics{
		Policy:   result.Policy,
		Head:     p.Head,
		Requests: len(p.Requests),
		Summary:  *trace.Summarize(result.Steps),
		Sequence: result.Sequence,
	}
	if policy.UsesDirection() {
		m.Direction = p.Direction.String()
	}
	if policy.UsesDiskSize() {
		m.DiskSize = p.DiskSize
	}
	if policy.UsesStepSize() {
		m.StepSize = batchSize(p.StepSize, len(p.Requests))
	}
	return m
}

// WithSteps attaches the annotated steps so they are included in reports.
func (m *Metrics) WithSteps(steps []trace.Step) *Metrics {
	m.Steps = steps
	return m
}

// Print writes the human-readable metrics block to w.
func (m *Metrics) Print(w io.Writer) {
	fmt.Fprintln(w, "=== Simulation Metrics ===")
	fmt.Fprintf(w, "Policy               : %s\n", m.Policy)
	fmt.Fprintf(w, "Head                 : %d\n", m.Head)
	if m.Direction != "" {
		fmt.Fprintf(w, "Direction            : %s\n", m.Direction)
	}
	if m.DiskSize > 0 {
		fmt.Fprintf(w, "Disk Size            : %d tracks\n", m.DiskSize)
	}
	if m.StepSize > 0 {
		fmt.Fprintf(w, "Step Size            : %d\n", m.StepSize)
	}
	fmt.Fprintf(w, "Requests             : %d\n", m.Requests)
	fmt.Fprintf(w, "Total Seek           : %d tracks\n", m.TotalSeek)
	if m.Moves > 0 {
		fmt.Fprintf(w, "Moves                : %d (%d boundary stops)\n", m.Moves, m.BoundaryStops)
		fmt.Fprintf(w, "Average Seek         : %.2f tracks\n", m.MeanSeek)
		fmt.Fprintf(w, "Seek Std Dev         : %.2f tracks\n", m.StdDevSeek)
		fmt.Fprintf(w, "Max Seek             : %d tracks\n", m.MaxSeek)
	}
	fmt.Fprintf(w, "Sequence             : %v\n", m.Sequence)
	for i, s := range m.Steps {
		fmt.Fprintf(w, "  [%03d] %s\n", i, s.Description())
	}
}

// SaveResults writes the metrics as indented JSON to w.
func (m *Metrics) SaveResults(w io.Writer) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal metrics: %w", err)
	}
	if _, err := fmt.Fprintln(w, string(data)); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	return nil
}
