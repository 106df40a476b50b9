package array2d

import "github.com/DirkChristianBecker/bevy-flat-arrays/vec"

// Index returns the flat buffer offset for the cell (x, y): width*x + y.
// The caller guarantees width > 0; no bound on x or y is enforced here —
// bounds are the container's concern, not the mapper's.
// Complexity: O(1).
func Index(width, x, y int) int {
	return width*x + y
}

// Coordinate is the exact inverse of Index: it splits a flat offset back
// into (x, y) for the given width.
// Complexity: O(1).
func Coordinate(width, idx int) (x, y int) {
	return idx / width, idx % width
}

// IndexVec is Index taking the coordinate as an IVec2.
func IndexVec(width int, p vec.IVec2) int {
	return Index(width, p.X, p.Y)
}

// CoordinateVec is Coordinate returning an IVec2.
func CoordinateVec(width, idx int) vec.IVec2 {
	x, y := Coordinate(width, idx)
	return vec.IVec2{X: x, Y: y}
}
