package display

import (
	"image/color"
	"math"

	errs "github.com/matzehuels/hexlife/pkg/errors"
	"github.com/matzehuels/hexlife/pkg/hex"
	"github.com/matzehuels/hexlife/pkg/render"
	"github.com/matzehuels/hexlife/pkg/render/transform"
)

// Config holds the grid display tunables.
type Config struct {
	HexSize    float64
	Background color.RGBA
	LineColor  color.RGBA
	LineWidth  float64
	Padding    float64
}

// Validate checks that the configuration can produce a drawable grid.
func (c Config) Validate() error {
	if err := errs.ValidatePositive("hex size", c.HexSize); err != nil {
		return err
	}
	if err := errs.ValidateNonNegative("line width", c.LineWidth); err != nil {
		return err
	}
	if math.IsNaN(c.Padding) || math.IsInf(c.Padding, 0) {
		return errs.New(errs.ErrCodeInvalidConfig, "padding must be finite, got %v", c.Padding)
	}
	return nil
}

// GridPixelSize returns the pixel footprint of dims at the given hex size.
func GridPixelSize(dims hex.Dimensions, hexSize float64) (width, height float64) {
	width = float64(dims.Width())*3*hexSize + hexSize
	height = float64(dims.Height()) * hexSize * math.Sqrt(3) / 2
	return width, height
}

// CenteredOrigin returns the origin that centers dims in a surface of the
// given size, shifted by padding.
func CenteredOrigin(dims hex.Dimensions, hexSize, padding float64, surfaceW, surfaceH int) render.Point {
	tw, th := GridPixelSize(dims, hexSize)
	return render.Point{
		X: (float64(surfaceW)-tw)/2 + padding,
		Y: (float64(surfaceH)-th)/2 + padding,
	}
}

// GridRenderer draws the outlines of every valid grid position.
type GridRenderer struct {
	grid *hex.Grid
	tf   transform.Transformer
	cfg  Config
}

// NewGridRenderer creates a renderer for grid using tf.
func NewGridRenderer(grid *hex.Grid, tf transform.Transformer, cfg Config) *GridRenderer {
	return &GridRenderer{grid: grid, tf: tf, cfg: cfg}
}

// Render draws one hexagon outline per valid position, q outer and r inner.
func (r *GridRenderer) Render(s render.Surface) {
	for p := range r.grid.Positions() {
		v := r.tf.HexVertices(p)
		s.DrawPolygon(r.cfg.LineColor, v[:], r.cfg.LineWidth)
	}
}

// GridDisplay composes a grid, a transformer and a renderer on one surface.
// It is owned by the frame loop and not safe for concurrent use.
type GridDisplay struct {
	grid     *hex.Grid
	cfg      Config
	surface  render.Surface
	tf       transform.Transformer
	renderer *GridRenderer
}

// New creates a display of grid on surface. It fails with INVALID_CONFIG
// when cfg does not validate.
func New(grid *hex.Grid, cfg Config, surface render.Surface) (*GridDisplay, error) {
	if grid == nil {
		return nil, errs.New(errs.ErrCodeInvalidInput, "grid display requires a grid")
	}
	if surface == nil {
		return nil, errs.New(errs.ErrCodeInvalidInput, "grid display requires a surface")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	d := &GridDisplay{grid: grid, cfg: cfg}
	d.rebuild(surface)
	return d, nil
}

// rebuild replaces the surface, transformer and renderer together.
func (d *GridDisplay) rebuild(surface render.Surface) {
	w, h := surface.Size()
	o := CenteredOrigin(d.grid.Dimensions(), d.cfg.HexSize, d.cfg.Padding, w, h)
	d.surface = surface
	d.tf = transform.New(d.cfg.HexSize, o.X, o.Y)
	d.renderer = NewGridRenderer(d.grid, d.tf, d.cfg)
}

// HandleResize switches to surface, whose size is the new viewport size, and
// recomputes the centered origin.
func (d *GridDisplay) HandleResize(surface render.Surface) {
	if surface == nil {
		return
	}
	d.rebuild(surface)
}

// Render clears the surface to the background color and draws the grid.
func (d *GridDisplay) Render() {
	d.surface.Fill(d.cfg.Background)
	d.renderer.Render(d.surface)
}

// Grid returns the displayed grid.
func (d *GridDisplay) Grid() *hex.Grid { return d.grid }

// Surface returns the current drawing surface.
func (d *GridDisplay) Surface() render.Surface { return d.surface }

// Transformer returns the current transformer.
func (d *GridDisplay) Transformer() transform.Transformer { return d.tf }

// Origin returns the pixel position of grid position (0, 0) on the surface.
func (d *GridDisplay) Origin() render.Point { return d.tf.Origin() }
