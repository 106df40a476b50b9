package array3d

import "errors"

// Sentinel errors for array3d operations.
var (
	// ErrInvalidDimensions indicates a non-positive width, height or depth.
	ErrInvalidDimensions = errors.New("array3d: dimensions must be > 0")
	// ErrIndexOutOfBounds indicates a coordinate or raw offset outside the buffer.
	ErrIndexOutOfBounds = errors.New("array3d: index out of bounds")
)
