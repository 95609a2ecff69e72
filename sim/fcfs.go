package sim

// fcfs services requests in the order they were submitted. No sorting.
func fcfs(h *head, p Params) {
	for _, r := range p.Requests {
		h.serve(r)
	}
}
