package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/DirkChristianBecker/bevy-flat-arrays/vec"
)

// QuantizeToGrid snaps v down to the nearest lower multiple of cellSize on
// each axis. The caller guarantees cellSize > 0.
// Complexity: O(1).
func QuantizeToGrid(v r2.Vec, cellSize float64) r2.Vec {
	return r2.Vec{
		X: math.Floor(v.X/cellSize) * cellSize,
		Y: math.Floor(v.Y/cellSize) * cellSize,
	}
}

// QuantizeToGrid3 is the three-axis analog of QuantizeToGrid.
// Complexity: O(1).
func QuantizeToGrid3(v r3.Vec, cellSize float64) r3.Vec {
	return r3.Vec{
		X: math.Floor(v.X/cellSize) * cellSize,
		Y: math.Floor(v.Y/cellSize) * cellSize,
		Z: math.Floor(v.Z/cellSize) * cellSize,
	}
}

// MapToGrid returns the integer grid cell containing v: the snapped
// position divided by the cell size. A position inside the cell spanning
// [32,36)x[4,8) with cellSize 4 maps to cell (8,1).
// Complexity: O(1).
func MapToGrid(v r2.Vec, cellSize float64) vec.IVec2 {
	q := QuantizeToGrid(v, cellSize)

	return vec.IVec2{
		X: int(q.X / cellSize),
		Y: int(q.Y / cellSize),
	}
}

// MapToGrid3 truncates the snapped position to integers WITHOUT dividing by
// the cell size, unlike MapToGrid: the same position as above with cellSize
// 4 maps to (32,4,...), not (8,1,...). Existing voxel callers address cells
// by snapped position, so the mismatch with MapToGrid is contractual.
// Complexity: O(1).
func MapToGrid3(v r3.Vec, cellSize float64) vec.IVec3 {
	q := QuantizeToGrid3(v, cellSize)

	return vec.IVec3{
		X: int(q.X),
		Y: int(q.Y),
		Z: int(q.Z),
	}
}
