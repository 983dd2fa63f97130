package array

import "github.com/joshuapare/bufkit/internal/buf"

var (
	// ErrIndexOutOfRange indicates an index outside [0, Len) or an insert
	// position outside [0, Len].
	ErrIndexOutOfRange = buf.ErrIndexOutOfRange

	// ErrUnderflow indicates Pop on an empty array.
	ErrUnderflow = buf.ErrUnderflow

	// ErrCapacityOverflow indicates growth past the allocator's MaxSize.
	ErrCapacityOverflow = buf.ErrCapacityOverflow
)
