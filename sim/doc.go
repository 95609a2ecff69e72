// Package sim provides the head-scheduling engine for disk-sched-sim.
//
// # Reading Guide
//
// Start with these files to understand the engine:
//   - request.go: Params (head, requests, direction, disk size, step size) and validation
//   - head.go: the head model that accumulates seek distance and records visited stops
//   - sweep.go: the directional sweep over a sorted request set shared by the SCAN family
//   - simulator.go: Engine and the Run / SeekDistance / VisitSequence entry points
//
// # Policies
//
// Each policy is a single traversal routine over the head model:
//   - fcfs.go: input order
//   - sstf.go: greedy nearest-first, ties to the lowest input index
//   - scan.go: SCAN, LOOK, C-SCAN, C-LOOK and F-SCAN as sweep instantiations
//   - nstep.go: N-Step-SCAN, one F-SCAN style sweep per input-order batch
//
// The same routine runs once in cost-only mode and once in recording mode, so the
// reported total seek always equals the sum of moves along the visit sequence.
// Run checks this and fails with ErrTraceMismatch otherwise.
//
// # Sub-packages
//
//   - sim/trace/: annotated step records and seek statistics (no dependency on sim)
//   - sim/workload/: request list parsing and seeded random request generation
//
// All entry points are stateless and safe for concurrent use.
package sim
