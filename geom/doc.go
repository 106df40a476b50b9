// Package geom provides grid snapping helpers for continuous positions.
//
// What:
//
//   - QuantizeToGrid / QuantizeToGrid3: snap a position down to the nearest
//     lower multiple of a cell size, per axis.
//   - MapToGrid / MapToGrid3: turn a position into integer grid coordinates.
//
// Why:
//
//   - Inventory HUDs: map a cursor position to the tile under it, then to
//     an offset in an Array2D laid out like the HUD grid.
//   - Voxel worlds: map a raycast hit back to the voxel it landed in.
//
// Positions are gonum's r2.Vec and r3.Vec; the integer results use the
// vec package's IVec2 and IVec3. All functions are stateless, O(1) value
// transforms and require a positive cell size.
//
// Caution: MapToGrid divides the snapped position by the cell size (true
// cell coordinates) while MapToGrid3 does not (snapped position truncated
// to ints). The mismatch is historical but contractual; see the function
// docs.
package geom
