package sink

import (
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/hexlife/pkg/render"
)

// Default pixel footprint of one terminal cell. Terminal glyphs are roughly
// twice as tall as they are wide.
const (
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
)

type cell struct {
	r      rune
	fg, bg color.RGBA
}

type cellGrid struct {
	cols, rows int
	cw, ch     int
	cells      []cell
}

// Cells is a terminal character-grid surface. Pixel coordinates are mapped
// onto cells of a fixed pixel size, so the grid geometry stays in pixels
// while output is text.
type Cells struct {
	g      *cellGrid
	bounds render.Rect // in pixels
}

// NewCells creates a surface of cols×rows terminal cells, each covering
// cellW×cellH pixels.
func NewCells(cols, rows, cellW, cellH int) *Cells {
	cols, rows = max(1, cols), max(1, rows)
	cellW, cellH = max(1, cellW), max(1, cellH)
	g := &cellGrid{cols: cols, rows: rows, cw: cellW, ch: cellH, cells: make([]cell, cols*rows)}
	for i := range g.cells {
		g.cells[i].r = ' '
	}
	return &Cells{g: g, bounds: render.Rect{W: cols * cellW, H: rows * cellH}}
}

func (c *Cells) Size() (int, int) { return c.bounds.W, c.bounds.H }

func (c *Cells) Fill(col color.RGBA) {
	c.FillRect(render.Rect{W: c.bounds.W, H: c.bounds.H}, col)
}

func (c *Cells) FillRect(r render.Rect, col color.RGBA) {
	r = intersect(translate(r, c.bounds.X, c.bounds.Y), c.bounds)
	if r.Empty() {
		return
	}
	g := c.g
	x0, y0 := r.X/g.cw, r.Y/g.ch
	x1, y1 := ceilDiv(r.Right(), g.cw), ceilDiv(r.Bottom(), g.ch)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if cl := g.at(x, y); cl != nil {
				cl.r = ' '
				cl.bg = col
			}
		}
	}
}

func (c *Cells) DrawPolygon(col color.RGBA, vertices []render.Point, _ float64) {
	if len(vertices) < 3 {
		return
	}
	for i := range vertices {
		a := vertices[i]
		b := vertices[(i+1)%len(vertices)]
		c.line(a, b, col)
	}
}

// line marks every cell crossed by the segment a-b with a glyph matching the
// segment's slope on screen.
func (c *Cells) line(a, b render.Point, col color.RGBA) {
	g := c.g
	ox, oy := float64(c.bounds.X), float64(c.bounds.Y)
	dx, dy := b.X-a.X, b.Y-a.Y
	glyph := slopeGlyph(dx/float64(g.cw), dy/float64(g.ch))

	steps := int(math.Ceil(math.Max(math.Abs(dx)/float64(g.cw), math.Abs(dy)/float64(g.ch))*2)) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		px := a.X + dx*t + ox
		py := a.Y + dy*t + oy
		if !c.contains(px, py) {
			continue
		}
		if cl := g.at(int(px)/g.cw, int(py)/g.ch); cl != nil {
			cl.r = glyph
			cl.fg = col
		}
	}
}

func (c *Cells) contains(px, py float64) bool {
	return px >= float64(c.bounds.X) && py >= float64(c.bounds.Y) &&
		px < float64(c.bounds.Right()) && py < float64(c.bounds.Bottom())
}

// slopeGlyph picks a line glyph for a direction given in cell units.
func slopeGlyph(dx, dy float64) rune {
	adx, ady := math.Abs(dx), math.Abs(dy)
	switch {
	case ady < adx*0.5:
		return '_'
	case adx < ady*0.5:
		return '|'
	case (dx > 0) == (dy > 0):
		return '\\'
	default:
		return '/'
	}
}

func (c *Cells) DrawText(s string, x, y, _ float64, col color.RGBA) {
	g := c.g
	px := x + float64(c.bounds.X)
	py := y + float64(c.bounds.Y)
	if py < float64(c.bounds.Y) || py >= float64(c.bounds.Bottom()) {
		return
	}
	row := int(py) / g.ch
	for i, r := range []rune(s) {
		cx := px + float64(i*g.cw)
		if !c.contains(cx, py) {
			continue
		}
		if cl := g.at(int(cx)/g.cw, row); cl != nil {
			cl.r = r
			cl.fg = col
		}
	}
}

// MeasureText reports one cell per rune; terminal glyphs have a fixed size.
func (c *Cells) MeasureText(s string, _ float64) (float64, float64) {
	return float64(len([]rune(s)) * c.g.cw), float64(c.g.ch)
}

func (c *Cells) SubRegion(r render.Rect) (render.Surface, error) {
	if err := render.CheckSubRegion(c.bounds.W, c.bounds.H, r); err != nil {
		return nil, err
	}
	return &Cells{g: c.g, bounds: translate(r, c.bounds.X, c.bounds.Y)}, nil
}

// Plain returns the grid as text without colors, one line per row.
func (c *Cells) Plain() string {
	g := c.g
	var b strings.Builder
	for y := 0; y < g.rows; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < g.cols; x++ {
			b.WriteRune(g.cells[y*g.cols+x].r)
		}
	}
	return b.String()
}

// String returns the grid as styled terminal text. Runs of cells sharing
// colors are rendered with one lipgloss style.
func (c *Cells) String() string {
	g := c.g
	var b strings.Builder
	for y := 0; y < g.rows; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		row := g.cells[y*g.cols : (y+1)*g.cols]
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && row[x].fg == row[start].fg && row[x].bg == row[start].bg {
				continue
			}
			b.WriteString(styleFor(row[start]).Render(runString(row[start:x])))
			start = x
		}
	}
	return b.String()
}

func styleFor(cl cell) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(render.HexColor(cl.fg))).
		Background(lipgloss.Color(render.HexColor(cl.bg)))
}

func runString(cells []cell) string {
	rs := make([]rune, len(cells))
	for i, cl := range cells {
		rs[i] = cl.r
	}
	return string(rs)
}

func (g *cellGrid) at(x, y int) *cell {
	if x < 0 || y < 0 || x >= g.cols || y >= g.rows {
		return nil
	}
	return &g.cells[y*g.cols+x]
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
