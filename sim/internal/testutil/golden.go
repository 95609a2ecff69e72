// Package testutil provides shared test infrastructure for the head-scheduling
// engine: the golden dataset of hand-checked runs and assertion helpers.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase is one scheduling run with its expected outcome.
type GoldenTestCase struct {
	Name      string        `json:"name"`
	Policy    string        `json:"policy"`
	Head      int           `json:"head"`
	Requests  []int         `json:"requests"`
	Direction string        `json:"direction,omitempty"` // "left" or "right"; empty for FCFS/SSTF
	DiskSize  int           `json:"disk_size,omitempty"`
	StepSize  int           `json:"step_size,omitempty"`
	Want      GoldenOutcome `json:"want"`
}

// GoldenOutcome represents the expected result of a golden test case.
type GoldenOutcome struct {
	TotalSeek int     `json:"total_seek"`
	Sequence  []int   `json:"sequence"`
	MeanSeek  float64 `json:"mean_seek"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}

	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}

// AssertSeekMatchesSequence fails unless total equals the sum of consecutive
// absolute differences along seq.
func AssertSeekMatchesSequence(t *testing.T, name string, total int, seq []int) {
	t.Helper()
	sum := 0
	for i := 1; i < len(seq); i++ {
		d := seq[i] - seq[i-1]
		if d < 0 {
			d = -d
		}
		sum += d
	}
	if sum != total {
		t.Errorf("%s: total seek %d, but sequence %v sums to %d", name, total, seq, sum)
	}
}
