package str

import (
	"errors"

	"github.com/joshuapare/bufkit/internal/buf"
)

var (
	// ErrInvalidConstruction indicates a string built from a nil source.
	ErrInvalidConstruction = errors.New("str: nil source")

	// ErrInvalidByte indicates an attempt to store the sentinel byte inside
	// the string.
	ErrInvalidByte = errors.New("str: zero byte inside string")

	// ErrIndexOutOfRange indicates an index outside [0, Len).
	ErrIndexOutOfRange = buf.ErrIndexOutOfRange

	// ErrCapacityOverflow indicates growth past the allocator's MaxSize.
	ErrCapacityOverflow = buf.ErrCapacityOverflow
)
