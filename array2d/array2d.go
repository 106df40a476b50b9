package array2d

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

// errorf wraps a sentinel with Array2D method context and the offending coordinate.
func errorf(method string, p vec.IVec2, err error) error {
	return fmt.Errorf("Array2D.%s(%d,%d): %w", method, p.X, p.Y, err)
}

// indexErrorf wraps a sentinel with method context and the offending raw offset.
func indexErrorf(method string, idx int, err error) error {
	return fmt.Errorf("Array2D.%s(%d): %w", method, idx, err)
}

// Array2D is a width-by-height grid of T backed by one contiguous buffer of
// length width*height. Offsets follow Index (offset = width*x + y), so x
// ranges over [0, height) and y over [0, width).
//
// The zero value is not usable; construct with New. Nothing is synchronized:
// concurrent readers are fine, a writer needs external exclusion.
type Array2D[T any] struct {
	width, height int
	data          []T // flat backing storage, length == width*height
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Array2D[int])(nil)

// New creates a width-by-height array with every slot set to the zero value
// of T. Allocation is eager; there is no lazy fill.
// Returns ErrInvalidDimensions unless both extents are positive.
// Complexity: O(W×H) time and memory.
func New[T any](width, height int) (*Array2D[T], error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	// make() zero-fills the buffer deterministically.
	return &Array2D[T]{
		width:  width,
		height: height,
		data:   make([]T, width*height),
	}, nil
}

// Width returns the first extent.
// Complexity: O(1).
func (a *Array2D[T]) Width() int { return a.width }

// Height returns the second extent.
// Complexity: O(1).
func (a *Array2D[T]) Height() int { return a.height }

// Len returns the number of slots, always width*height.
// Complexity: O(1).
func (a *Array2D[T]) Len() int { return a.width * a.height }

// IsEmpty always reports false: extents are validated positive at
// construction and resize, so the array can never hold zero slots. It is a
// fixed compatibility return for callers expecting the usual Len/IsEmpty
// pair, not a real check; revisit if zero-sized arrays ever become legal.
func (a *Array2D[T]) IsEmpty() bool { return false }

// offsetOf bounds-checks p and computes its flat offset.
// Returns the bare sentinel; public methods wrap it with context.
// Complexity: O(1).
func (a *Array2D[T]) offsetOf(p vec.IVec2) (int, error) {
	if p.X < 0 || p.Y < 0 {
		return 0, ErrIndexOutOfBounds
	}
	idx := IndexVec(a.width, p)
	if idx >= len(a.data) {
		return 0, ErrIndexOutOfBounds
	}

	return idx, nil
}

// At returns the value stored at p, or ErrIndexOutOfBounds. Out-of-range
// coordinates are never clamped to a nearby cell.
// Complexity: O(1).
func (a *Array2D[T]) At(p vec.IVec2) (T, error) {
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
func (a *Array2D[T]) Mut(p vec.IVec2) (*T, error) {
	idx, err := a.offsetOf(p)
	if err != nil {
		return nil, errorf(ctxMut, p, err)
	}

	return &a.data[idx], nil
}

// Set overwrites the slot at p with v.
// Complexity: O(1).
func (a *Array2D[T]) Set(p vec.IVec2, v T) error {
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
func (a *Array2D[T]) AtIndex(idx int) (T, error) {
	if idx < 0 || idx >= len(a.data) {
		var zero T
		return zero, indexErrorf(ctxAtIndex, idx, ErrIndexOutOfBounds)
	}

	return a.data[idx], nil
}

// MutIndex returns a pointer to the slot at a raw buffer offset.
// Complexity: O(1).
func (a *Array2D[T]) MutIndex(idx int) (*T, error) {
	if idx < 0 || idx >= len(a.data) {
		return nil, indexErrorf(ctxMutIndex, idx, ErrIndexOutOfBounds)
	}

	return &a.data[idx], nil
}

// SetIndex overwrites the slot at a raw buffer offset.
// Complexity: O(1).
func (a *Array2D[T]) SetIndex(idx int, v T) error {
	if idx < 0 || idx >= len(a.data) {
		return indexErrorf(ctxSetIndex, idx, ErrIndexOutOfBounds)
	}
	a.data[idx] = v

	return nil
}

// Resize reallocates the backing buffer for the new extents. Values keep
// their raw offsets up to min(old, new) length and any added slots hold the
// zero value of T. Cells are NOT remapped by coordinate: the offset formula
// changes with the width, so a value's coordinate after Resize generally
// differs from its coordinate before.
// Returns ErrInvalidDimensions unless both extents are positive.
// Complexity: O(W×H) time and memory.
func (a *Array2D[T]) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidDimensions
	}
	buf := make([]T, width*height)
	copy(buf, a.data) // truncates on shrink, leaves the tail zeroed on grow
	a.width = width
	a.height = height
	a.data = buf

	return nil
}

// Clone returns a deep copy sharing no storage with the receiver.
// Complexity: O(W×H) time and memory.
func (a *Array2D[T]) Clone() *Array2D[T] {
	cp := make([]T, len(a.data))
	copy(cp, a.data)

	return &Array2D[T]{width: a.width, height: a.height, data: cp}
}

// Do visits every slot in strictly increasing raw-offset order, calling f
// with the cell coordinate and value; it stops early when f returns false.
// Complexity: O(W×H), O(1) extra space.
func (a *Array2D[T]) Do(f func(p vec.IVec2, v T) bool) {
	for i := range a.data {
		if !f(CoordinateVec(a.width, i), a.data[i]) {
			return
		}
	}
}

// Apply replaces every slot with f(p, v), in strictly increasing raw-offset
// order.
// Complexity: O(W×H), O(1) extra space.
func (a *Array2D[T]) Apply(f func(p vec.IVec2, v T) T) {
	for i := range a.data {
		a.data[i] = f(CoordinateVec(a.width, i), a.data[i])
	}
}

// String renders one buffer line of width values per x step. Intended for
// debugging, not hot paths.
func (a *Array2D[T]) String() string {
	var b strings.Builder
	for base := 0; base < len(a.data); base += a.width {
		b.WriteString("[")
		for j := 0; j < a.width; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%v", a.data[base+j])
		}
		b.WriteString("]\n")
	}

	return b.String()
}
