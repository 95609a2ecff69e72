package sim

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics_OnlyReportsParametersThePolicyReads(t *testing.T) {
	p := Params{Head: 50, Requests: []int{10, 30, 70}, Direction: Right, DiskSize: 100, StepSize: 2}

	fcfs, err := Run(PolicyFCFS, p)
	require.NoError(t, err)
	m := NewMetrics(PolicyFCFS, p, fcfs)
	assert.Empty(t, m.Direction)
	assert.Zero(t, m.DiskSize)
	assert.Zero(t, m.StepSize)
	assert.Equal(t, 100, m.TotalSeek)
	assert.Equal(t, 3, m.Requests)

	nstep, err := Run(PolicyNStepSCAN, p)
	require.NoError(t, err)
	m = NewMetrics(PolicyNStepSCAN, p, nstep)
	assert.Equal(t, "right", m.Direction)
	assert.Equal(t, 100, m.DiskSize)
	assert.Equal(t, 2, m.StepSize)
}

func TestMetrics_Print(t *testing.T) {
	// GIVEN a SCAN run
	p := Params{Head: 50, Requests: []int{10, 30, 70, 90}, Direction: Right, DiskSize: 100}
	result, err := Run(PolicySCAN, p)
	require.NoError(t, err)

	// WHEN printed with steps
	var buf bytes.Buffer
	NewMetrics(PolicySCAN, p, result).WithSteps(result.Steps).Print(&buf)
	out := buf.String()

	// THEN the report carries the header, totals, sequence and step log
	assert.Contains(t, out, "=== Simulation Metrics ===")
	assert.Contains(t, out, "Total Seek           : 138 tracks")
	assert.Contains(t, out, "Average Seek         : 27.60 tracks")
	assert.Contains(t, out, "Moves                : 5 (1 boundary stops)")
	assert.Contains(t, out, "Sequence             : [50 70 90 99 30 10]")
	assert.Contains(t, out, "[003] Scan to extreme 99 (seek: 9)")
}

func TestMetrics_Print_EmptyRun(t *testing.T) {
	p := Params{Head: 7}
	result, err := Run(PolicySSTF, p)
	require.NoError(t, err)

	var buf bytes.Buffer
	NewMetrics(PolicySSTF, p, result).Print(&buf)
	assert.Contains(t, buf.String(), "Total Seek           : 0 tracks")
	assert.NotContains(t, buf.String(), "Average Seek")
}

func TestMetrics_SaveResults_JSON(t *testing.T) {
	p := Params{Head: 50, Requests: []int{40, 60}}
	result, err := Run(PolicySSTF, p)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewMetrics(PolicySSTF, p, result).SaveResults(&buf))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "sstf", decoded["policy"])
	assert.Equal(t, float64(30), decoded["total_seek"])
	assert.Equal(t, []any{float64(50), float64(40), float64(60)}, decoded["sequence"])
	assert.NotContains(t, decoded, "steps")
	assert.NotContains(t, decoded, "disk_size")
}
