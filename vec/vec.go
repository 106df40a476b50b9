// Package vec defines the small integer vector types used to address cells
// in the flat array containers. They are plain value types; continuous
// (floating-point) positions are represented by gonum's r2.Vec and r3.Vec
// in the geom package instead.
package vec

import "fmt"

// IVec2 is an integer 2D coordinate.
type IVec2 struct {
	X, Y int
}

// I2 constructs an IVec2 from its components.
func I2(x, y int) IVec2 { return IVec2{X: x, Y: y} }

// String implements fmt.Stringer as "(x,y)".
func (v IVec2) String() string { return fmt.Sprintf("(%d,%d)", v.X, v.Y) }

// IVec3 is an integer 3D coordinate.
type IVec3 struct {
	X, Y, Z int
}

// I3 constructs an IVec3 from its components.
func I3(x, y, z int) IVec3 { return IVec3{X: x, Y: y, Z: z} }

// String implements fmt.Stringer as "(x,y,z)".
func (v IVec3) String() string { return fmt.Sprintf("(%d,%d,%d)", v.X, v.Y, v.Z) }
