package sim

// scan sweeps to the disk extreme in the requested direction, then reverses.
func scan(h *head, p Params) {
	scanSweep.run(h, sortedCopy(p.Requests), p.Direction, p.DiskSize, p.Head, p.Head)
}

// look reverses at the last request in the sweep direction instead of the extreme.
func look(h *head, p Params) {
	lookSweep.run(h, sortedCopy(p.Requests), p.Direction, 0, p.Head, p.Head)
}

// cscan sweeps right to disk_size-1, restarts at 0 and keeps sweeping right.
// The restart is a counted move. LEFT is rejected by Params.validate.
func cscan(h *head, p Params) {
	cscanSweep.run(h, sortedCopy(p.Requests), p.Direction, p.DiskSize, p.Head, p.Head)
}

// clook services the sweep direction, then jumps to the lowest (RIGHT) or
// highest (LEFT) request on the other side and continues in the same direction.
func clook(h *head, p Params) {
	clookSweep.run(h, sortedCopy(p.Requests), p.Direction, 0, p.Head, p.Head)
}

// fscan freezes the whole request set into one batch. The forward leg is
// relative to the current head position and the return leg to the original
// head; after the boundary stop the head sits at disk_size-1 (RIGHT) or 0 (LEFT).
func fscan(h *head, p Params) {
	scanSweep.run(h, sortedCopy(p.Requests), p.Direction, p.DiskSize, h.pos, p.Head)
}
