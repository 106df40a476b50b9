package array3d_test

import (
	"testing"

	"github.com/DirkChristianBecker/bevy-flat-arrays/array3d"
	"github.com/DirkChristianBecker/bevy-flat-arrays/vec"
)

// roundTripCases lists (maxX, maxY, x, y, z) tuples that must survive
// Index -> Coordinate unchanged.
var roundTripCases = []struct{ maxX, maxY, x, y, z int }{
	{4, 4, 0, 0, 0},
	{4, 4, 1, 0, 0},
	{4, 4, 1, 1, 0},
	{4, 4, 1, 1, 1},
	{4, 4, 2, 1, 0},
	{4, 4, 2, 1, 1},
	{4, 4, 2, 2, 1},
	{4, 4, 2, 2, 2},
	{4, 4, 3, 2, 1},
	{4, 4, 3, 2, 2},
	{4, 4, 3, 3, 2},
	{4, 4, 3, 3, 3},
}

// TestIndexRoundTrip verifies that Coordinate is the exact inverse of Index.
func TestIndexRoundTrip(t *testing.T) {
	for _, tc := range roundTripCases {
		idx := array3d.Index(tc.maxX, tc.maxY, tc.x, tc.y, tc.z)
		x, y, z := array3d.Coordinate(tc.maxX, tc.maxY, idx)
		if x != tc.x || y != tc.y || z != tc.z {
			t.Errorf("Coordinate(%d,%d, Index(...,%d,%d,%d)) = (%d,%d,%d); want (%d,%d,%d)",
				tc.maxX, tc.maxY, tc.x, tc.y, tc.z, x, y, z, tc.x, tc.y, tc.z)
		}
	}
}

// TestIndexFirstAxisFastest pins the layout: consecutive offsets advance x,
// not z — the opposite of the 2D mapper.
func TestIndexFirstAxisFastest(t *testing.T) {
	if got := array3d.Index(2, 2, 1, 0, 0); got != 1 {
		t.Errorf("Index(2,2,1,0,0) = %d; want 1", got)
	}
	if got := array3d.Index(2, 2, 0, 1, 0); got != 2 {
		t.Errorf("Index(2,2,0,1,0) = %d; want 2", got)
	}
	if got := array3d.Index(2, 2, 0, 0, 1); got != 4 {
		t.Errorf("Index(2,2,0,0,1) = %d; want 4", got)
	}
}

// TestIndexVecRoundTrip checks the IVec3 wrappers delegate faithfully.
func TestIndexVecRoundTrip(t *testing.T) {
	for _, tc := range roundTripCases {
		p := vec.I3(tc.x, tc.y, tc.z)
		idx := array3d.IndexVec(tc.maxX, tc.maxY, p)
		if idx != array3d.Index(tc.maxX, tc.maxY, tc.x, tc.y, tc.z) {
			t.Errorf("IndexVec(%d,%d, %v) = %d; want %d",
				tc.maxX, tc.maxY, p, idx, array3d.Index(tc.maxX, tc.maxY, tc.x, tc.y, tc.z))
		}
		if got := array3d.CoordinateVec(tc.maxX, tc.maxY, idx); got != p {
			t.Errorf("CoordinateVec(%d,%d, %d) = %v; want %v", tc.maxX, tc.maxY, idx, got, p)
		}
	}
}

// TestCoordinateExhaustive walks every offset of a 2x3x2 volume and checks
// that Index maps the derived coordinate back to the same offset.
func TestCoordinateExhaustive(t *testing.T) {
	const maxX, maxY, slots = 2, 3, 12
	for idx := 0; idx < slots; idx++ {
		x, y, z := array3d.Coordinate(maxX, maxY, idx)
		if back := array3d.Index(maxX, maxY, x, y, z); back != idx {
			t.Errorf("Index(%d,%d,%d,%d,%d) = %d; want %d", maxX, maxY, x, y, z, back, idx)
		}
	}
}
