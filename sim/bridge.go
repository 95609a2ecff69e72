package sim

// Per-policy entry points. Each takes exactly the inputs its policy reads and
// runs on DefaultEngine.

// FCFS services requests in input order.
func FCFS(head int, requests []int) (*Result, error) {
	return Run(PolicyFCFS, Params{Head: head, Requests: requests})
}

// SSTF services the nearest pending request first.
func SSTF(head int, requests []int) (*Result, error) {
	return Run(PolicySSTF, Params{Head: head, Requests: requests})
}

// SCAN sweeps to the disk extreme in dir, then reverses.
func SCAN(head int, requests []int, dir Direction, diskSize int) (*Result, error) {
	return Run(PolicySCAN, Params{Head: head, Requests: requests, Direction: dir, DiskSize: diskSize})
}

// CSCAN sweeps right to the extreme and restarts at track 0. dir must be Right.
func CSCAN(head int, requests []int, dir Direction, diskSize int) (*Result, error) {
	return Run(PolicyCSCAN, Params{Head: head, Requests: requests, Direction: dir, DiskSize: diskSize})
}

// LOOK sweeps in dir and reverses at the last request.
func LOOK(head int, requests []int, dir Direction) (*Result, error) {
	return Run(PolicyLOOK, Params{Head: head, Requests: requests, Direction: dir})
}

// CLOOK sweeps in dir and jumps back to the far end of the remaining requests.
func CLOOK(head int, requests []int, dir Direction) (*Result, error) {
	return Run(PolicyCLOOK, Params{Head: head, Requests: requests, Direction: dir})
}

// FSCAN services the whole request set as one frozen SCAN batch.
func FSCAN(head int, requests []int, dir Direction, diskSize int) (*Result, error) {
	return Run(PolicyFSCAN, Params{Head: head, Requests: requests, Direction: dir, DiskSize: diskSize})
}

// NStepSCAN services input-order batches of stepSize with alternating sweeps.
func NStepSCAN(head int, requests []int, dir Direction, diskSize, stepSize int) (*Result, error) {
	return Run(PolicyNStepSCAN, Params{Head: head, Requests: requests, Direction: dir, DiskSize: diskSize, StepSize: stepSize})
}
