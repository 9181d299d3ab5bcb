package render

import (
	"fmt"
	"image/color"

	errs "github.com/matzehuels/hexlife/pkg/errors"
)

// Point is a screen-space coordinate in pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an integer screen rectangle with its origin at the top-left corner.
type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Right returns the exclusive right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Empty reports whether r has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Within reports whether r lies entirely inside a width×height area anchored
// at the origin.
func (r Rect) Within(width, height int) bool {
	return r.X >= 0 && r.Y >= 0 && r.Right() <= width && r.Bottom() <= height
}

// String returns "WxH+X+Y".
func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.W, r.H, r.X, r.Y)
}

// Surface is a drawing target. Coordinates are pixels relative to the
// surface's own top-left corner.
type Surface interface {
	// Size returns the surface dimensions in pixels.
	Size() (width, height int)

	// Fill paints the whole surface with c.
	Fill(c color.RGBA)

	// FillRect paints r with c. Parts of r outside the surface are clipped.
	FillRect(r Rect, c color.RGBA)

	// DrawPolygon draws the closed outline through vertices with the given
	// line width. Fewer than three vertices draw nothing.
	DrawPolygon(c color.RGBA, vertices []Point, lineWidth float64)

	// DrawText draws s with its top-left corner at (x, y).
	DrawText(s string, x, y, size float64, c color.RGBA)

	// MeasureText returns the width and height DrawText would cover.
	MeasureText(s string, size float64) (w, h float64)

	// SubRegion returns a surface restricted to r. It fails with a
	// RESOURCE_ACQUISITION error when r is empty or exceeds the surface.
	SubRegion(r Rect) (Surface, error)
}

// CheckSubRegion validates r against a width×height parent.
func CheckSubRegion(width, height int, r Rect) error {
	if r.Empty() {
		return errs.New(errs.ErrCodeResourceAcquisition, "subregion %s is empty", r)
	}
	if !r.Within(width, height) {
		return errs.New(errs.ErrCodeResourceAcquisition, "subregion %s outside %dx%d surface", r, width, height)
	}
	return nil
}
