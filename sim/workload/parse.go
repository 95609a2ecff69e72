package workload

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseRequests parses a track list such as "98, 183, 37 122".
// Commas and whitespace both separate entries. Tracks must be non-negative
// integers; a malformed entry is an error rather than being dropped.
func ParseRequests(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	reqs := make([]int, 0, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("request %d: %q is not an integer", i, f)
		}
		if v < 0 {
			return nil, fmt.Errorf("request %d: track %d is negative", i, v)
		}
		reqs = append(reqs, v)
	}
	return reqs, nil
}

// FormatRequests renders requests in the form ParseRequests accepts.
func FormatRequests(reqs []int) string {
	parts := make([]string, len(reqs))
	for i, r := range reqs {
		parts[i] = strconv.Itoa(r)
	}
	return strings.Join(parts, ",")
}
