package sim

// batchSize normalises the N-Step step size: anything outside (0, n) is one batch.
func batchSize(stepSize, n int) int {
	if stepSize <= 0 || stepSize >= n {
		return n
	}
	return stepSize
}

// batchCount is the number of input-order batches N-Step-SCAN forms.
func batchCount(stepSize, n int) int {
	if n == 0 {
		return 0
	}
	step := batchSize(stepSize, n)
	return (n + step - 1) / step
}

// nstepScan splits the requests into consecutive input-order batches of
// StepSize and gives each batch its own sorted F-SCAN style sweep. The sweep
// direction alternates per batch and the head position at the end of a batch
// becomes the next batch's head, for both the forward and return thresholds.
func nstepScan(h *head, p Params) {
	n := len(p.Requests)
	step := batchSize(p.StepSize, n)
	dir := p.Direction
	for start := 0; start < n; start += step {
		end := min(start+step, n)
		h.batch++
		batchHead := h.pos
		scanSweep.run(h, sortedCopy(p.Requests[start:end]), dir, p.DiskSize, h.pos, batchHead)
		dir = dir.Opposite()
	}
}
