// Package array3d provides a dense three-dimensional array stored in one
// contiguous buffer, addressed by the linear offset z*maxX*maxY + y*maxX + x.
//
// What:
//
//   - Index / Coordinate: pure conversions between (x,y,z) cells and flat
//     buffer offsets, with IVec3 wrappers.
//   - Array3D[T]: a generic width-by-height-by-depth container with
//     coordinate accessors, a raw-offset fast path, in-place resize,
//     stepping iterators and Do/Apply visitors.
//
// Why:
//
//   - Voxel chunks, volumetric fields, layered tile maps: per-cell state in
//     a single allocation with cache-friendly layer-by-layer iteration.
//
// Complexity:
//
//   - New / Resize / Clone: O(W×H×D). Every accessor: O(1).
//   - Iteration and visitors: O(W×H×D) total, O(1) per step.
//
// Layout note: here the first axis (x) varies fastest, the opposite of the
// array2d mapper where y does. Both formulas are long-standing contracts;
// do not unify them.
//
// Errors:
//
//   - ErrInvalidDimensions: a requested extent is not positive.
//   - ErrIndexOutOfBounds: a coordinate or raw offset falls outside the buffer.
package array3d
