// Defines the inputs of a single scheduling run: head position, pending track
// requests, sweep direction, disk extent and N-Step batch size.

package sim

import (
	"fmt"
	"strings"
)

// Direction is the initial sweep direction of the SCAN family.
// Values match the host encoding: 1 = RIGHT, 0 = LEFT.
type Direction int

const (
	// Left sweeps toward decreasing track numbers.
	Left Direction = 0
	// Right sweeps toward increasing track numbers.
	Right Direction = 1
)

// ParseDirection converts "left"/"right" (or "l"/"r", any case) to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	}
	return Left, fmt.Errorf("%w %q; valid: left, right", ErrInvalidDirection, s)
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Opposite returns the reverse sweep direction.
func (d Direction) Opposite() Direction {
	if d == Right {
		return Left
	}
	return Right
}

func (d Direction) valid() bool {
	return d == Left || d == Right
}

// Params describes one scheduling run. Requests is never modified.
// Direction, DiskSize and StepSize are read only by the policies that use them.
type Params struct {
	Head      int       // head position before scheduling begins
	Requests  []int     // pending track requests, unordered, duplicates allowed
	Direction Direction // first sweep direction (SCAN family only)
	DiskSize  int       // number of tracks; the extent is [0, DiskSize-1]
	StepSize  int       // N-Step batch size; <= 0 or >= len(Requests) means one batch
}

// validate checks params against the needs of policy p and the request capacity.
func (p Params) validate(policy Policy, maxRequests int) error {
	if maxRequests > 0 && len(p.Requests) > maxRequests {
		return fmt.Errorf("%w: %d requests exceeds maximum of %d", ErrTooManyRequests, len(p.Requests), maxRequests)
	}
	if p.Head < 0 {
		return fmt.Errorf("%w: head %d is negative", ErrTrackOutOfRange, p.Head)
	}
	for i, r := range p.Requests {
		if r < 0 {
			return fmt.Errorf("%w: request[%d] = %d is negative", ErrTrackOutOfRange, i, r)
		}
	}
	if policy.UsesDirection() && !p.Direction.valid() {
		return fmt.Errorf("%w: %d", ErrInvalidDirection, int(p.Direction))
	}
	if policy.UsesDiskSize() {
		if p.DiskSize <= 0 {
			return fmt.Errorf("%w: %d must be positive", ErrInvalidDiskSize, p.DiskSize)
		}
		if p.Head >= p.DiskSize {
			return fmt.Errorf("%w: head %d outside [0, %d]", ErrTrackOutOfRange, p.Head, p.DiskSize-1)
		}
		for i, r := range p.Requests {
			if r >= p.DiskSize {
				return fmt.Errorf("%w: request[%d] = %d outside [0, %d]", ErrTrackOutOfRange, i, r, p.DiskSize-1)
			}
		}
	}
	if policy == PolicyCSCAN && p.Direction == Left {
		return fmt.Errorf("%w: %s does not define a %s sweep", ErrUnsupportedDirection, policy, Left)
	}
	return nil
}
