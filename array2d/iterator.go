package array2d

import "github.com/DirkChristianBecker/bevy-flat-arrays/vec"

// Iter is a read-only stepping iterator over every slot of an Array2D in
// strictly increasing raw-offset order. Each step derives its coordinate
// from the offset via Coordinate, so positions need no bookkeeping between
// steps. Obtain a fresh one from Array2D.Iter; an Iter created before a
// Resize keeps walking the old buffer.
type Iter[T any] struct {
	items  []T
	width  int
	cursor int
}

// Next advances to the next slot. It returns false once every slot has been
// produced.
func (it *Iter[T]) Next() bool {
	it.cursor++
	return it.cursor < len(it.items)
}

// Pos returns the coordinate of the current slot.
func (it *Iter[T]) Pos() vec.IVec2 {
	return CoordinateVec(it.width, it.cursor)
}

// Value returns the value of the current slot.
func (it *Iter[T]) Value() T {
	return it.items[it.cursor]
}

// Reset rewinds the iterator so the walk can start over.
func (it *Iter[T]) Reset() {
	it.cursor = -1
}

// Iter returns a fresh iterator over (coordinate, value) pairs:
//
//	for it := a.Iter(); it.Next(); {
//		use(it.Pos(), it.Value())
//	}
func (a *Array2D[T]) Iter() *Iter[T] {
	return &Iter[T]{items: a.data, width: a.width, cursor: -1}
}

// MutIter walks slots exactly like Iter but yields a pointer per slot so
// cells can be updated in place. Access is index-based, exposing only
// &items[cursor] per step, so distinct steps never hand out aliasing pointers.
type MutIter[T any] struct {
	items  []T
	width  int
	cursor int
}

// Next advances to the next slot. It returns false once every slot has been
// produced.
func (it *MutIter[T]) Next() bool {
	it.cursor++
	return it.cursor < len(it.items)
}

// Pos returns the coordinate of the current slot.
func (it *MutIter[T]) Pos() vec.IVec2 {
	return CoordinateVec(it.width, it.cursor)
}

// Value returns a pointer to the current slot. The pointer stays valid
// until the array is resized.
func (it *MutIter[T]) Value() *T {
	return &it.items[it.cursor]
}

// Reset rewinds the iterator so the walk can start over.
func (it *MutIter[T]) Reset() {
	it.cursor = -1
}

// IterMut returns a fresh mutating iterator over (coordinate, slot) pairs.
func (a *Array2D[T]) IterMut() *MutIter[T] {
	return &MutIter[T]{items: a.data, width: a.width, cursor: -1}
}
