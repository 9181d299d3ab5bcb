package sink

import (
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/matzehuels/hexlife/pkg/render"
)

// basicFontSize is the pixel height basicfont.Face7x13 is designed for.
const basicFontSize = 13.0

// Raster is an anti-aliased RGBA drawing surface.
type Raster struct {
	dc     *gg.Context
	bounds render.Rect
}

// NewRaster creates a width×height raster surface.
func NewRaster(width, height int) *Raster {
	dc := gg.NewContext(max(1, width), max(1, height))
	dc.SetFontFace(basicfont.Face7x13)
	return &Raster{dc: dc, bounds: render.Rect{W: dc.Width(), H: dc.Height()}}
}

func (r *Raster) Size() (int, int) { return r.bounds.W, r.bounds.H }

func (r *Raster) Fill(c color.RGBA) {
	r.FillRect(render.Rect{W: r.bounds.W, H: r.bounds.H}, c)
}

func (r *Raster) FillRect(rect render.Rect, c color.RGBA) {
	rect = intersect(translate(rect, r.bounds.X, r.bounds.Y), r.bounds)
	if rect.Empty() {
		return
	}
	r.dc.SetColor(opaque(c))
	r.dc.DrawRectangle(float64(rect.X), float64(rect.Y), float64(rect.W), float64(rect.H))
	r.dc.Fill()
}

func (r *Raster) DrawPolygon(c color.RGBA, vertices []render.Point, lineWidth float64) {
	if len(vertices) < 3 {
		return
	}
	r.clipped(func(dc *gg.Context) {
		ox, oy := float64(r.bounds.X), float64(r.bounds.Y)
		dc.NewSubPath()
		dc.MoveTo(vertices[0].X+ox, vertices[0].Y+oy)
		for _, v := range vertices[1:] {
			dc.LineTo(v.X+ox, v.Y+oy)
		}
		dc.ClosePath()
		dc.SetColor(opaque(c))
		dc.SetLineWidth(lineWidth)
		dc.Stroke()
	})
}

func (r *Raster) DrawText(s string, x, y, size float64, c color.RGBA) {
	k := size / basicFontSize
	r.clipped(func(dc *gg.Context) {
		dc.Translate(x+float64(r.bounds.X), y+float64(r.bounds.Y))
		dc.Scale(k, k)
		dc.SetColor(opaque(c))
		dc.DrawStringAnchored(s, 0, 0, 0, 1)
	})
}

func (r *Raster) MeasureText(s string, size float64) (float64, float64) {
	w, _ := r.dc.MeasureString(s)
	return w * size / basicFontSize, size
}

func (r *Raster) SubRegion(rect render.Rect) (render.Surface, error) {
	if err := render.CheckSubRegion(r.bounds.W, r.bounds.H, rect); err != nil {
		return nil, err
	}
	return &Raster{dc: r.dc, bounds: translate(rect, r.bounds.X, r.bounds.Y)}, nil
}

// clipped runs draw with the context clipped to the surface bounds and
// restores the previous state afterwards.
func (r *Raster) clipped(draw func(dc *gg.Context)) {
	r.dc.Push()
	defer r.dc.Pop()
	r.dc.DrawRectangle(float64(r.bounds.X), float64(r.bounds.Y), float64(r.bounds.W), float64(r.bounds.H))
	r.dc.Clip()
	draw(r.dc)
}

// Image returns the backing image, shared with all sub-regions.
func (r *Raster) Image() image.Image { return r.dc.Image() }

// EncodePNG writes the backing image as PNG.
func (r *Raster) EncodePNG(w io.Writer) error {
	return r.dc.EncodePNG(w)
}

// opaque treats a zero alpha as fully opaque so colors built from bare RGB
// triples still draw.
func opaque(c color.RGBA) color.RGBA {
	if c.A == 0 {
		c.A = 255
	}
	return c
}
