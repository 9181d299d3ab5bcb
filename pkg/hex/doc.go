// Package hex provides the hexagonal grid model.
//
// # Coordinates
//
// Cells are addressed with axial coordinates ([GridPosition]): q is the
// column-like axis and r the diagonal row-like axis. Each cell has six
// neighbors, indexed 0..5 counter-clockwise starting East:
//
//	0 E  (+1,  0)
//	1 SE ( 0, +1)
//	2 SW (-1, +1)
//	3 W  (-1,  0)
//	4 NW ( 0, -1)
//	5 NE (+1, -1)
//
// The index order is part of the contract: [GridPosition.Neighbors] returns
// positions in exactly this order.
//
// # Grid Shape
//
// A [Grid] covers the rectangular axial region 0 ≤ q < width, 0 ≤ r < height
// described by its [Dimensions]. It is not a hexagon-shaped board; rendered
// with the offset-row layout of the transform package it tiles a rectangle on
// screen.
//
// # Example
//
//	dims, err := hex.NewDimensions(5, 10)
//	if err != nil {
//	    return err
//	}
//	grid := hex.NewGrid(dims)
//	grid.IsValidPosition(hex.GridPosition{Q: 4, R: 9}) // true
package hex
