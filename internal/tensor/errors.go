package tensor

import "errors"

// Sentinel errors returned by shape, broadcast and axis validation.
// Backends wrap them with the failing operation name, so callers match with errors.Is.
var (
	ErrInvalidShape   = errors.New("invalid shape")
	ErrBroadcast      = errors.New("shapes not compatible for broadcasting")
	ErrAxisOutOfRange = errors.New("axis out of range")
	ErrDataLength     = errors.New("data length does not match shape")
	ErrDTypeMismatch  = errors.New("dtype mismatch")
)
