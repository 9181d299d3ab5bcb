package hex

import (
	"fmt"

	errs "github.com/matzehuels/hexlife/pkg/errors"
)

// DirectionCount is the number of neighbor directions of a hexagonal cell.
const DirectionCount = 6

// Direction indices in counter-clockwise order starting East.
const (
	East = iota
	SouthEast
	SouthWest
	West
	NorthWest
	NorthEast
)

// directions holds the axial offsets indexed by direction.
var directions = [DirectionCount]GridPosition{
	{Q: 1, R: 0},
	{Q: 0, R: 1},
	{Q: -1, R: 1},
	{Q: -1, R: 0},
	{Q: 0, R: -1},
	{Q: 1, R: -1},
}

// GridPosition is an axial hex coordinate. It is a comparable value and can
// be used as a map key.
type GridPosition struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// String returns "(q,r)".
func (p GridPosition) String() string {
	return fmt.Sprintf("(%d,%d)", p.Q, p.R)
}

// Add returns p+o in axial space.
func (p GridPosition) Add(o GridPosition) GridPosition {
	return GridPosition{Q: p.Q + o.Q, R: p.R + o.R}
}

// Neighbor returns the adjacent position in direction d.
// It returns an OUT_OF_RANGE error when d is outside [0, 5].
func (p GridPosition) Neighbor(d int) (GridPosition, error) {
	if d < 0 || d >= DirectionCount {
		return GridPosition{}, errs.New(errs.ErrCodeOutOfRange, "direction %d outside [0,%d]", d, DirectionCount-1)
	}
	return p.Add(directions[d]), nil
}

// Neighbors returns the six adjacent positions in direction order
// (E, SE, SW, W, NW, NE).
func (p GridPosition) Neighbors() [DirectionCount]GridPosition {
	var out [DirectionCount]GridPosition
	for d, off := range directions {
		out[d] = p.Add(off)
	}
	return out
}

// Distance returns the number of steps between p and o on the hex grid.
func (p GridPosition) Distance(o GridPosition) int {
	dq := p.Q - o.Q
	dr := p.R - o.R
	return (abs(dq) + abs(dr) + abs(dq+dr)) / 2
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
