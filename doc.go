// Package flatarrays implements dense 2D and 3D arrays that keep their
// cells sequentially in one contiguous buffer, addressed through explicit
// coordinate-to-offset formulas, plus small grid snapping helpers.
//
// What is flat-arrays?
//
//	A small, allocation-conscious container library that brings together:
//		• Index mappers: pure (x,y)/offset and (x,y,z)/offset conversions
//		• Array2D / Array3D: generic dense grids with coordinate accessors,
//		  a raw-offset fast path, in-place resize and stepping iterators
//		• Grid snapping: quantize continuous positions onto a cell grid
//
// Why flat buffers?
//
//   - One allocation per grid: no pointer-chasing [][]T rows
//   - Cache-friendly iteration in strictly increasing offset order
//   - The offset formula is part of the contract, so buffers can be shared
//     with code that lays out cells the same way
//
// Everything is organized under four subpackages:
//
//	array2d/ — (x,y) index mapping and the generic Array2D container
//	array3d/ — (x,y,z) index mapping and the generic Array3D container
//	geom/    — quantize and snap helpers for continuous positions
//	vec/     — the integer coordinate types shared by the above
//
// Quick ASCII example, a 3-wide 2-high Array2D and its buffer offsets:
//
//	(0,0) (0,1) (0,2)        offsets  0 1 2
//	(1,0) (1,1) (1,2)                 3 4 5
//
//	go get github.com/DirkChristianBecker/bevy-flat-arrays
package flatarrays
