package trace

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary aggregates seek statistics from a visit trace.
type Summary struct {
	TotalSeek     int     `json:"total_seek"`
	Moves         int     `json:"moves"`
	Served        int     `json:"served"`
	BoundaryStops int     `json:"boundary_stops"` // boundary and wrap stops
	MeanSeek      float64 `json:"mean_seek"`
	StdDevSeek    float64 `json:"stddev_seek"`
	MaxSeek       int     `json:"max_seek"`
}

// Summarize computes aggregate statistics from a list of steps.
// Safe for nil or start-only traces (returns zero-value fields).
func Summarize(steps []Step) *Summary {
	summary := &Summary{}
	if len(steps) < 2 {
		return summary
	}

	seeks := make([]float64, 0, len(steps)-1)
	for _, s := range steps[1:] {
		seeks = append(seeks, float64(s.Seek))
		switch s.Kind {
		case KindServe:
			summary.Served++
		case KindBoundary, KindWrap:
			summary.BoundaryStops++
		}
	}

	summary.Moves = len(seeks)
	summary.TotalSeek = steps[len(steps)-1].TotalSeek
	summary.MeanSeek = float64(summary.TotalSeek) / float64(summary.Moves)
	_, summary.StdDevSeek = stat.PopMeanStdDev(seeks, nil)
	summary.MaxSeek = int(floats.Max(seeks))
	return summary
}
