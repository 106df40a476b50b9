// Package array2d provides a dense two-dimensional array stored in one
// contiguous buffer, addressed by the linear offset width*x + y.
//
// What:
//
//   - Index / Coordinate: pure conversions between (x,y) cells and flat
//     buffer offsets, with IVec2 wrappers.
//   - Array2D[T]: a generic width-by-height container with coordinate
//     accessors, a raw-offset fast path, in-place resize, stepping
//     iterators and Do/Apply visitors.
//
// Why:
//
//   - Tile maps, cellular grids, inventories: per-cell state without a
//     pointer-chasing [][]T, keeping iteration cache friendly.
//   - The iterators derive each coordinate from its offset, so callers get
//     (position, value) pairs without maintaining a parallel index.
//
// Complexity:
//
//   - New / Resize / Clone: O(W×H). Every accessor: O(1).
//   - Iteration and visitors: O(W×H) total, O(1) per step.
//
// Layout note: the offset formula width*x + y makes the second axis (y)
// vary fastest, which is the opposite of the array3d mapper. Both formulas
// are long-standing contracts; do not unify them.
//
// Errors:
//
//   - ErrInvalidDimensions: a requested extent is not positive.
//   - ErrIndexOutOfBounds: a coordinate or raw offset falls outside the buffer.
package array2d
