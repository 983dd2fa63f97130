package buf

import "errors"

var (
	// ErrIndexOutOfRange indicates an access or position outside the live elements.
	ErrIndexOutOfRange = errors.New("buf: index out of range")

	// ErrUnderflow indicates a pop from an empty buffer.
	ErrUnderflow = errors.New("buf: underflow")

	// ErrCapacityOverflow indicates growth past the allocator's maximum element count.
	ErrCapacityOverflow = errors.New("buf: capacity overflow")
)
