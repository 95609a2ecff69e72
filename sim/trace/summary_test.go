package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize_EmptyTrace_ZeroValues(t *testing.T) {
	// GIVEN nil and start-only traces
	for _, steps := range [][]Step{nil, NewVisitTrace(53, 1).Steps} {
		// WHEN summarized
		summary := Summarize(steps)

		// THEN all fields are zero
		assert.Equal(t, Summary{}, *summary)
	}
}

func TestSummarize_PopulatedTrace_CorrectCounts(t *testing.T) {
	// GIVEN a SCAN-like trace with one boundary stop
	vt := NewVisitTrace(50, 6)
	vt.Record(70, KindServe, 0)
	vt.Record(90, KindServe, 0)
	vt.Record(99, KindBoundary, 0)
	vt.Record(30, KindServe, 0)
	vt.Record(10, KindServe, 0)

	// WHEN summarized
	summary := Summarize(vt.Steps)

	// THEN counts match
	assert.Equal(t, 138, summary.TotalSeek)
	assert.Equal(t, 5, summary.Moves)
	assert.Equal(t, 4, summary.Served)
	assert.Equal(t, 1, summary.BoundaryStops)
	assert.Equal(t, 69, summary.MaxSeek)
	assert.InDelta(t, 27.6, summary.MeanSeek, 1e-9)
}

func TestSummarize_SeekStatistics_PopulationStdDev(t *testing.T) {
	// GIVEN moves of 10 and 20
	vt := NewVisitTrace(0, 3)
	vt.Record(10, KindServe, 0)
	vt.Record(30, KindServe, 0)

	// WHEN summarized
	summary := Summarize(vt.Steps)

	// THEN mean = 15 and population stddev = 5
	assert.InDelta(t, 15.0, summary.MeanSeek, 1e-9)
	assert.InDelta(t, 5.0, summary.StdDevSeek, 1e-9)
	assert.Equal(t, 20, summary.MaxSeek)
}

func TestSummarize_WrapCountsAsBoundaryStop(t *testing.T) {
	vt := NewVisitTrace(10, 5)
	vt.Record(20, KindServe, 0)
	vt.Record(49, KindBoundary, 0)
	vt.Record(0, KindWrap, 0)
	vt.Record(5, KindServe, 0)

	summary := Summarize(vt.Steps)

	assert.Equal(t, 2, summary.BoundaryStops)
	assert.Equal(t, 2, summary.Served)
	assert.Equal(t, 10+29+49+5, summary.TotalSeek)
}
