package hex

import "iter"

// Grid is a hexagonal grid covering a rectangular region of axial space.
// It owns its dimensions by value and is not mutated after construction.
type Grid struct {
	dims Dimensions
}

// NewGrid creates a grid with the given dimensions.
func NewGrid(dims Dimensions) *Grid {
	return &Grid{dims: dims}
}

// Dimensions returns the grid dimensions.
func (g *Grid) Dimensions() Dimensions { return g.dims }

// IsValidPosition reports whether p lies inside the grid, that is
// 0 ≤ q < width and 0 ≤ r < height.
func (g *Grid) IsValidPosition(p GridPosition) bool {
	return p.Q >= 0 && p.Q < g.dims.width && p.R >= 0 && p.R < g.dims.height
}

// Positions yields every valid position, q outer and r inner.
func (g *Grid) Positions() iter.Seq[GridPosition] {
	return func(yield func(GridPosition) bool) {
		for q := 0; q < g.dims.width; q++ {
			for r := 0; r < g.dims.height; r++ {
				p := GridPosition{Q: q, R: r}
				if !g.IsValidPosition(p) {
					continue
				}
				if !yield(p) {
					return
				}
			}
		}
	}
}

// ValidNeighbors returns the neighbors of p that lie inside the grid, in
// direction order.
func (g *Grid) ValidNeighbors(p GridPosition) []GridPosition {
	out := make([]GridPosition, 0, DirectionCount)
	for _, n := range p.Neighbors() {
		if g.IsValidPosition(n) {
			out = append(out, n)
		}
	}
	return out
}
