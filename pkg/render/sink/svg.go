package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"image/color"
	"strings"

	"github.com/matzehuels/hexlife/pkg/render"
)

// SVGOption configures an SVG surface.
type SVGOption func(*svgDoc)

// WithFontFamily sets the CSS font family used for text.
func WithFontFamily(family string) SVGOption {
	return func(d *svgDoc) { d.fontFamily = family }
}

// WithTitle adds a <title> element to the document.
func WithTitle(title string) SVGOption {
	return func(d *svgDoc) { d.title = title }
}

type svgDoc struct {
	width, height int
	fontFamily    string
	title         string
	defs          bytes.Buffer
	body          bytes.Buffer
	clips         int
}

// SVG is a vector drawing surface.
type SVG struct {
	doc    *svgDoc
	bounds render.Rect // in document coordinates
	clipID string      // empty for the root surface
}

// NewSVG creates a width×height SVG surface.
func NewSVG(width, height int, opts ...SVGOption) *SVG {
	d := &svgDoc{width: max(1, width), height: max(1, height), fontFamily: "sans-serif"}
	for _, opt := range opts {
		opt(d)
	}
	return &SVG{doc: d, bounds: render.Rect{W: d.width, H: d.height}}
}

func (s *SVG) Size() (int, int) { return s.bounds.W, s.bounds.H }

func (s *SVG) Fill(c color.RGBA) {
	s.writeRect(s.bounds, c)
}

func (s *SVG) FillRect(r render.Rect, c color.RGBA) {
	r = intersect(translate(r, s.bounds.X, s.bounds.Y), s.bounds)
	if r.Empty() {
		return
	}
	s.writeRect(r, c)
}

func (s *SVG) writeRect(r render.Rect, c color.RGBA) {
	fmt.Fprintf(&s.doc.body, `  <rect x="%d" y="%d" width="%d" height="%d" fill="%s"%s%s/>`+"\n",
		r.X, r.Y, r.W, r.H, render.HexColor(c), opacityAttr("fill-opacity", c), s.clipAttr())
}

func (s *SVG) DrawPolygon(c color.RGBA, vertices []render.Point, lineWidth float64) {
	if len(vertices) < 3 {
		return
	}
	pts := make([]string, len(vertices))
	for i, v := range vertices {
		pts[i] = fmt.Sprintf("%.2f,%.2f", v.X+float64(s.bounds.X), v.Y+float64(s.bounds.Y))
	}
	fmt.Fprintf(&s.doc.body, `  <polygon points="%s" fill="none" stroke="%s" stroke-width="%.2f" stroke-linejoin="round"%s%s/>`+"\n",
		strings.Join(pts, " "), render.HexColor(c), lineWidth, opacityAttr("stroke-opacity", c), s.clipAttr())
}

func (s *SVG) DrawText(str string, x, y, size float64, c color.RGBA) {
	var esc bytes.Buffer
	_ = xml.EscapeText(&esc, []byte(str))
	fmt.Fprintf(&s.doc.body, `  <text x="%.2f" y="%.2f" font-size="%.1f" font-family="%s" fill="%s" dominant-baseline="hanging"%s>%s</text>`+"\n",
		x+float64(s.bounds.X), y+float64(s.bounds.Y), size, s.doc.fontFamily, render.HexColor(c), s.clipAttr(), esc.String())
}

func (s *SVG) MeasureText(str string, size float64) (float64, float64) {
	return render.ApproxTextWidth(str, size), size
}

func (s *SVG) SubRegion(r render.Rect) (render.Surface, error) {
	if err := render.CheckSubRegion(s.bounds.W, s.bounds.H, r); err != nil {
		return nil, err
	}
	abs := translate(r, s.bounds.X, s.bounds.Y)
	s.doc.clips++
	id := fmt.Sprintf("region-%d", s.doc.clips)
	fmt.Fprintf(&s.doc.defs, `    <clipPath id="%s"><rect x="%d" y="%d" width="%d" height="%d"/></clipPath>`+"\n",
		id, abs.X, abs.Y, abs.W, abs.H)
	return &SVG{doc: s.doc, bounds: abs, clipID: id}, nil
}

func (s *SVG) clipAttr() string {
	if s.clipID == "" {
		return ""
	}
	return fmt.Sprintf(` clip-path="url(#%s)"`, s.clipID)
}

// Bytes returns the complete SVG document.
func (s *SVG) Bytes() []byte {
	d := s.doc
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		d.width, d.height, d.width, d.height)
	if d.title != "" {
		buf.WriteString("  <title>")
		_ = xml.EscapeText(&buf, []byte(d.title))
		buf.WriteString("</title>\n")
	}
	if d.defs.Len() > 0 {
		buf.WriteString("  <defs>\n")
		buf.Write(d.defs.Bytes())
		buf.WriteString("  </defs>\n")
	}
	buf.Write(d.body.Bytes())
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func opacityAttr(name string, c color.RGBA) string {
	if c.A == 255 || c.A == 0 {
		return ""
	}
	return fmt.Sprintf(` %s="%.3f"`, name, float64(c.A)/255)
}

func translate(r render.Rect, dx, dy int) render.Rect {
	return render.Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

func intersect(a, b render.Rect) render.Rect {
	x0 := max(a.X, b.X)
	y0 := max(a.Y, b.Y)
	x1 := min(a.Right(), b.Right())
	y1 := min(a.Bottom(), b.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return render.Rect{}
	}
	return render.Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}
