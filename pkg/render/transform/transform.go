// Package transform converts hex grid positions to screen pixels for
// flat-topped hexagons.
//
// # Offset-row Layout
//
// Positions are placed with the offset-row formula, where odd rows shift
// right by one and a half hex sizes:
//
//	x = originX + size * (3*q + (r mod 2) * 1.5)
//	y = originY + size * (√3/2) * r
//
// This is the only layout used in the repository; the grid footprint and
// centering math in the display package assume it. The "pure axial" layout
// (x = h·q, y = v·(r + q/2)) is deliberately not provided.
package transform

import (
	"math"

	"github.com/matzehuels/hexlife/pkg/hex"
	"github.com/matzehuels/hexlife/pkg/render"
)

// sqrt3 is √3, the ratio of hexagon height to size for flat-topped hexagons.
var sqrt3 = math.Sqrt(3)

// PixelPosition is a screen-space point in pixels.
type PixelPosition = render.Point

// Transformer converts grid positions to pixel centers and hexagon
// vertices. It is an immutable value; a resize builds a new one.
type Transformer struct {
	hexSize float64
	originX float64
	originY float64
	width   float64
	height  float64
}

// New returns a transformer for hexagons of the given size (center to
// vertex, must be positive) placed relative to (originX, originY).
func New(hexSize, originX, originY float64) Transformer {
	return Transformer{
		hexSize: hexSize,
		originX: originX,
		originY: originY,
		width:   hexSize * 2,
		height:  hexSize * sqrt3,
	}
}

// HexSize returns the hexagon size (center to vertex) in pixels.
func (t Transformer) HexSize() float64 { return t.hexSize }

// Origin returns the pixel position of grid position (0, 0).
func (t Transformer) Origin() PixelPosition {
	return PixelPosition{X: t.originX, Y: t.originY}
}

// Width returns the vertex-to-vertex width of a hexagon, 2·size.
func (t Transformer) Width() float64 { return t.width }

// Height returns the edge-to-edge height of a hexagon, size·√3.
func (t Transformer) Height() float64 { return t.height }

// HexToPixel returns the pixel center of p.
func (t Transformer) HexToPixel(p hex.GridPosition) PixelPosition {
	return PixelPosition{
		X: t.originX + t.hexSize*(3*float64(p.Q)+float64(parity(p.R))*1.5),
		Y: t.originY + t.hexSize*(sqrt3/2)*float64(p.R),
	}
}

// Vertices returns the six corners of the hexagon centered at c, starting at
// the rightmost point and proceeding counter-clockwise: right, bottom-right,
// bottom-left, left, top-left, top-right. Screen y grows downward.
func (t Transformer) Vertices(c PixelPosition) [6]PixelPosition {
	hw := t.hexSize / 2
	hh := t.height / 2
	return [6]PixelPosition{
		{X: c.X + t.hexSize, Y: c.Y},
		{X: c.X + hw, Y: c.Y + hh},
		{X: c.X - hw, Y: c.Y + hh},
		{X: c.X - t.hexSize, Y: c.Y},
		{X: c.X - hw, Y: c.Y - hh},
		{X: c.X + hw, Y: c.Y - hh},
	}
}

// HexVertices is shorthand for Vertices(HexToPixel(p)).
func (t Transformer) HexVertices(p hex.GridPosition) [6]PixelPosition {
	return t.Vertices(t.HexToPixel(p))
}

// parity returns r mod 2 in {0, 1}, including for negative rows.
func parity(r int) int {
	return ((r % 2) + 2) % 2
}
