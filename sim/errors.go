package sim

import "errors"

var (
	// ErrTooManyRequests is returned when the request set exceeds the engine capacity.
	ErrTooManyRequests = errors.New("input too large")
	// ErrUnsupportedDirection is returned for a policy/direction pair the engine does not define.
	ErrUnsupportedDirection = errors.New("unsupported parameter combination")
	ErrInvalidDirection     = errors.New("invalid direction")
	ErrInvalidDiskSize      = errors.New("invalid disk size")
	ErrTrackOutOfRange      = errors.New("track out of range")
	ErrUnknownPolicy        = errors.New("unknown policy")
	// ErrTraceMismatch means the cost pass and the recording pass disagreed.
	// It indicates a bug in a policy routine, never bad input.
	ErrTraceMismatch = errors.New("seek distance does not match visit sequence")
)
