package sim

import "github.com/inference-sim/disk-sched-sim/sim/trace"

// sstf repeatedly services the unvisited request nearest the head.
// Candidates are scanned in input order and only a strict improvement replaces
// the current best, so equal distances go to the lowest input index.
// O(n²), bounded by the engine capacity.
func sstf(h *head, p Params) {
	visited := make([]bool, len(p.Requests))
	for range p.Requests {
		best, bestDist := -1, 0
		for i, r := range p.Requests {
			if visited[i] {
				continue
			}
			if d := trace.Distance(h.pos, r); best == -1 || d < bestDist {
				best, bestDist = i, d
			}
		}
		visited[best] = true
		h.serve(p.Requests[best])
	}
}
