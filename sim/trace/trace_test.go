package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance_Symmetric(t *testing.T) {
	assert.Equal(t, 40, Distance(50, 10))
	assert.Equal(t, 40, Distance(10, 50))
	assert.Equal(t, 0, Distance(7, 7))
	assert.Equal(t, int64(3), Distance(int64(-1), int64(2)))
}

func TestTotalSeek_SumsConsecutiveMoves(t *testing.T) {
	tests := []struct {
		name string
		seq  []int
		want int
	}{
		{"nil", nil, 0},
		{"head only", []int{50}, 0},
		{"fcfs baseline", []int{50, 10, 30, 70}, 100},
		{"repeated stop", []int{50, 50, 50}, 0},
		{"scan with boundary", []int{50, 70, 90, 99, 30, 10}, 138},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalSeek(tt.seq))
		})
	}
}

func TestVisitTrace_Record_AccumulatesSeek(t *testing.T) {
	// GIVEN a trace starting at 50
	vt := NewVisitTrace(50, 4)

	// WHEN three stops are recorded
	vt.Record(10, KindServe, 0)
	vt.Record(0, KindBoundary, 0)
	vt.Record(30, KindServe, 0)

	// THEN per-step and cumulative seeks are derived from the previous stop
	require.Len(t, vt.Steps, 4)
	assert.Equal(t, Step{Track: 50, Kind: KindStart}, vt.Steps[0])
	assert.Equal(t, 40, vt.Steps[1].Seek)
	assert.Equal(t, 10, vt.Steps[2].Seek)
	assert.Equal(t, 30, vt.Steps[3].Seek)
	assert.Equal(t, 80, vt.Steps[3].TotalSeek)
	assert.Equal(t, []int{50, 10, 0, 30}, vt.Sequence())
	assert.Equal(t, vt.Steps[3].TotalSeek, TotalSeek(vt.Sequence()))
}

func TestStep_Description(t *testing.T) {
	assert.Equal(t, "Start", Step{Track: 53, Kind: KindStart}.Description())
	assert.Equal(t, "Serve 98 (seek: 45)", Step{Track: 98, Seek: 45, Kind: KindServe}.Description())
	assert.Equal(t, "Scan to extreme 199 (seek: 16)", Step{Track: 199, Seek: 16, Kind: KindBoundary}.Description())
	assert.Equal(t, "Jump to 0 (seek: 199)", Step{Track: 0, Seek: 199, Kind: KindWrap}.Description())
	assert.Equal(t, "Serve 37 (seek: 162) [Batch 1]", Step{Track: 37, Seek: 162, Kind: KindServe, Batch: 1}.Description())
}
