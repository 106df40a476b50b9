package array2d

import "errors"

// Sentinel errors for array2d operations.
var (
	// ErrInvalidDimensions indicates a non-positive width or height.
	ErrInvalidDimensions = errors.New("array2d: dimensions must be > 0")
	// ErrIndexOutOfBounds indicates a coordinate or raw offset outside the buffer.
	ErrIndexOutOfBounds = errors.New("array2d: index out of bounds")
)
