package array3d

import "github.com/DirkChristianBecker/bevy-flat-arrays/vec"

// Index returns the flat buffer offset for the cell (x, y, z):
// z*maxX*maxY + y*maxX + x, where maxX and maxY are the extents of the
// first two axes. The first axis varies fastest — the opposite convention
// of array2d.Index, preserved as-is for layout compatibility.
// The caller guarantees maxX > 0 and maxY > 0; bounds are the container's
// concern, not the mapper's.
// Complexity: O(1).
func Index(maxX, maxY, x, y, z int) int {
	return z*maxX*maxY + y*maxX + x
}

// Coordinate is the exact inverse of Index: it splits a flat offset back
// into (x, y, z) for the given axis extents.
// Complexity: O(1).
func Coordinate(maxX, maxY, idx int) (x, y, z int) {
	z = idx / (maxX * maxY)
	rem := idx - z*maxX*maxY
	y = rem / maxX
	x = rem % maxX

	return x, y, z
}

// IndexVec is Index taking the coordinate as an IVec3.
func IndexVec(maxX, maxY int, p vec.IVec3) int {
	return Index(maxX, maxY, p.X, p.Y, p.Z)
}

// CoordinateVec is Coordinate returning an IVec3.
func CoordinateVec(maxX, maxY, idx int) vec.IVec3 {
	x, y, z := Coordinate(maxX, maxY, idx)
	return vec.IVec3{X: x, Y: y, Z: z}
}
