package geom_test

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/DirkChristianBecker/bevy-flat-arrays/geom"
)

// ExampleMapToGrid maps a cursor position to the inventory tile under it,
// with tiles laid out on a 4-unit grid.
func ExampleMapToGrid() {
	cursor := r2.Vec{X: 35.8277, Y: 7.987278}

	snapped := geom.QuantizeToGrid(cursor, 4.0)
	cell := geom.MapToGrid(cursor, 4.0)
	fmt.Printf("snapped to (%g, %g), cell %v\n", snapped.X, snapped.Y, cell)

	// Output:
	// snapped to (32, 4), cell (8,1)
}
