package array3d

import (
	"fmt"
	"strings"

	"github.com/DirkChristianBecker/bevy-flat-arrays/vec"
)

// Method tags used in error context wrappers.
const (
	ctxAt       = "At"
	ctxMut      = "Mut"
	ctxSet      = "Set"
	ctxAtIndex  = "AtIndex"
	ctxMutIndex = "MutIndex"
	ctxSetIndex = "SetIndex"
)

// errorf wraps a sentinel with Array3D method context and the offending coordinate.
func errorf(method string, p vec.IVec3, err error) error {
	return fmt.Errorf("Array3D.%s(%d,%d,%d): %w", method, p.X, p.Y, p.Z, err)
}

// indexErrorf wraps a sentinel with method context and the offending raw offset.
func indexErrorf(method string, idx int, err error) error {
	return fmt.Errorf("Array3D.%s(%d): %w", method, idx, err)
}

// Array3D is a width-by-height-by-depth grid of T backed by one contiguous
// buffer of length width*height*depth. Offsets follow Index
// (offset = z*width*height + y*width + x), so x walks [0, width) fastest,
// then y over [0, height), then z over [0, depth).
//
// The zero value is not usable; construct with New. Nothing is synchronized:
// concurrent readers are fine, a writer needs external exclusion.
type Array3D[T any] struct {
	width, height, depth int
	data                 []T // flat backing storage, length == width*height*depth
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Array3D[int])(nil)

// New creates a width-by-height-by-depth array with every slot set to the
// zero value of T. Allocation is eager; there is no lazy fill.
// Returns ErrInvalidDimensions unless all three extents are positive.
// Complexity: O(W×H×D) time and memory.
func New[T any](width, height, depth int) (*Array3D[T], error) {
	if width <= 0 || height <= 0 || depth <= 0 {
		return nil, ErrInvalidDimensions
	}
	// make() zero-fills the buffer deterministically.
	return &Array3D[T]{
		width:  width,
		height: height,
		depth:  depth,
		data:   make([]T, width*height*depth),
	}, nil
}

// Width returns the first extent.
// Complexity: O(1).
func (a *Array3D[T]) Width() int { return a.width }

// Height returns the second extent.
// Complexity: O(1).
func (a *Array3D[T]) Height() int { return a.height }

// Depth returns the third extent.
// Complexity: O(1).
func (a *Array3D[T]) Depth() int { return a.depth }

// Len returns the number of slots, always width*height*depth.
// Complexity: O(1).
func (a *Array3D[T]) Len() int { return a.width * a.height * a.depth }

// IsEmpty always reports false: extents are validated positive at
// construction and resize, so the array can never hold zero slots. It is a
// fixed compatibility return for callers expecting the usual Len/IsEmpty
// pair, not a real check; revisit if zero-sized arrays ever become legal.
func (a *Array3D[T]) IsEmpty() bool { return false }

// offsetOf bounds-checks p and computes its flat offset.
// Returns the bare sentinel; public methods wrap it with context.
// Complexity: O(1).
func (a *Array3D[T]) offsetOf(p vec.IVec3) (int, error) {
	if p.X < 0 || p.Y < 0 || p.Z < 0 {
		return 0, ErrIndexOutOfBounds
	}
	idx := IndexVec(a.width, a.height, p)
	if idx >= len(a.data) {
		return 0, ErrIndexOutOfBounds
	}

	return idx, nil
}

// At returns the value stored at p, or ErrIndexOutOfBounds. Out-of-range
// coordinates are never clamped to a nearby cell.
// Complexity: O(1).
func (a *Array3D[T]) At(p vec.IVec3) (T, error) {
	idx, err := a.offsetOf(p)
	if err != nil {
		var zero T
		return zero, errorf(ctxAt, p, err)
	}

	return a.data[idx], nil
}

// Mut returns a pointer to the slot at p so the cell can be updated in
// place. The pointer stays valid until the next Resize reallocates the
// buffer.
// Complexity: O(1).
func (a *Array3D[T]) Mut(p vec.IVec3) (*T, error) {
	idx, err := a.offsetOf(p)
	if err != nil {
		return nil, errorf(ctxMut, p, err)
	}

	return &a.data[idx], nil
}

// Set overwrites the slot at p with v.
// Complexity: O(1).
func (a *Array3D[T]) Set(p vec.IVec3, v T) error {
	idx, err := a.offsetOf(p)
	if err != nil {
		return errorf(ctxSet, p, err)
	}
	a.data[idx] = v

	return nil
}

// AtIndex reads the slot at a raw buffer offset, skipping the coordinate
// math entirely. This is the zero-overhead path for callers that already
// hold an offset.
// Complexity: O(1).
func (a *Array3D[T]) AtIndex(idx int) (T, error) {
	if idx < 0 || idx >= len(a.data) {
		var zero T
		return zero, indexErrorf(ctxAtIndex, idx, ErrIndexOutOfBounds)
	}

	return a.data[idx], nil
}

// MutIndex returns a pointer to the slot at a raw buffer offset.
// Complexity: O(1).
func (a *Array3D[T]) MutIndex(idx int) (*T, error) {
	if idx < 0 || idx >= len(a.data) {
		return nil, indexErrorf(ctxMutIndex, idx, ErrIndexOutOfBounds)
	}

	return &a.data[idx], nil
}

// SetIndex overwrites the slot at a raw buffer offset.
// Complexity: O(1).
func (a *Array3D[T]) SetIndex(idx int, v T) error {
	if idx < 0 || idx >= len(a.data) {
		return indexErrorf(ctxSetIndex, idx, ErrIndexOutOfBounds)
	}
	a.data[idx] = v

	return nil
}

// Resize reallocates the backing buffer for the new extents. Values keep
// their raw offsets up to min(old, new) length and any added slots hold the
// zero value of T. Cells are NOT remapped by coordinate: the offset formula
// changes with the extents, so a value's coordinate after Resize generally
// differs from its coordinate before.
// Returns ErrInvalidDimensions unless all three extents are positive.
// Complexity: O(W×H×D) time and memory.
func (a *Array3D[T]) Resize(width, height, depth int) error {
	if width <= 0 || height <= 0 || depth <= 0 {
		return ErrInvalidDimensions
	}
	buf := make([]T, width*height*depth)
	copy(buf, a.data) // truncates on shrink, leaves the tail zeroed on grow
	a.width = width
	a.height = height
	a.depth = depth
	a.data = buf

	return nil
}

// Clone returns a deep copy sharing no storage with the receiver.
// Complexity: O(W×H×D) time and memory.
func (a *Array3D[T]) Clone() *Array3D[T] {
	cp := make([]T, len(a.data))
	copy(cp, a.data)

	return &Array3D[T]{width: a.width, height: a.height, depth: a.depth, data: cp}
}

// Do visits every slot in strictly increasing raw-offset order, calling f
// with the cell coordinate and value; it stops early when f returns false.
// Complexity: O(W×H×D), O(1) extra space.
func (a *Array3D[T]) Do(f func(p vec.IVec3, v T) bool) {
	for i := range a.data {
		if !f(CoordinateVec(a.width, a.height, i), a.data[i]) {
			return
		}
	}
}

// Apply replaces every slot with f(p, v), in strictly increasing raw-offset
// order.
// Complexity: O(W×H×D), O(1) extra space.
func (a *Array3D[T]) Apply(f func(p vec.IVec3, v T) T) {
	for i := range a.data {
		a.data[i] = f(CoordinateVec(a.width, a.height, i), a.data[i])
	}
}

// String renders each z layer as height lines of width values, layers
// separated by a blank line. Intended for debugging, not hot paths.
func (a *Array3D[T]) String() string {
	var b strings.Builder
	layer := a.width * a.height
	for i := 0; i < len(a.data); i += a.width {
		if i > 0 && i%layer == 0 {
			b.WriteString("\n")
		}
		b.WriteString("[")
		for j := 0; j < a.width; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%v", a.data[i+j])
		}
		b.WriteString("]\n")
	}

	return b.String()
}
