package window

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/matzehuels/hexlife/pkg/render"
)

// basicFontSize is the pixel height basicfont.Face7x13 is designed for.
const basicFontSize = 13.0

// screen holds the image ebiten hands to Draw. It changes between frames, so
// surfaces look it up at draw time instead of keeping the image.
type screen struct {
	img *ebiten.Image
}

// surface adapts a region of the ebiten screen to render.Surface.
type surface struct {
	screen *screen
	bounds render.Rect
	root   bool
}

func newSurface(s *screen, width, height int) *surface {
	return &surface{screen: s, bounds: render.Rect{W: width, H: height}, root: true}
}

// target returns the image to draw on, or nil before the first frame. Sub
// images keep the parent's coordinate space and clip to their bounds.
func (s *surface) target() *ebiten.Image {
	img := s.screen.img
	if img == nil || s.root {
		return img
	}
	b := s.bounds
	return img.SubImage(image.Rect(b.X, b.Y, b.Right(), b.Bottom())).(*ebiten.Image)
}

func (s *surface) Size() (int, int) { return s.bounds.W, s.bounds.H }

func (s *surface) Fill(c color.RGBA) {
	if dst := s.target(); dst != nil {
		dst.Fill(c)
	}
}

func (s *surface) FillRect(r render.Rect, c color.RGBA) {
	dst := s.target()
	if dst == nil || r.Empty() {
		return
	}
	vector.DrawFilledRect(dst,
		float32(r.X+s.bounds.X), float32(r.Y+s.bounds.Y), float32(r.W), float32(r.H), c, false)
}

func (s *surface) DrawPolygon(c color.RGBA, vertices []render.Point, lineWidth float64) {
	dst := s.target()
	if dst == nil || len(vertices) < 3 {
		return
	}
	ox, oy := float64(s.bounds.X), float64(s.bounds.Y)
	for i := range vertices {
		a := vertices[i]
		b := vertices[(i+1)%len(vertices)]
		vector.StrokeLine(dst,
			float32(a.X+ox), float32(a.Y+oy), float32(b.X+ox), float32(b.Y+oy),
			float32(lineWidth), c, true)
	}
}

func (s *surface) DrawText(str string, x, y, size float64, c color.RGBA) {
	dst := s.target()
	if dst == nil {
		return
	}
	k := size / basicFontSize
	face := basicfont.Face7x13
	ascent := float64(face.Metrics().Ascent.Ceil())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(k, k)
	op.GeoM.Translate(x+float64(s.bounds.X), y+float64(s.bounds.Y)+ascent*k)
	op.ColorScale.ScaleWithColor(c)
	text.DrawWithOptions(dst, str, face, op)
}

func (s *surface) MeasureText(str string, size float64) (float64, float64) {
	w := font.MeasureString(basicfont.Face7x13, str).Ceil()
	return float64(w) * size / basicFontSize, size
}

func (s *surface) SubRegion(r render.Rect) (render.Surface, error) {
	if err := render.CheckSubRegion(s.bounds.W, s.bounds.H, r); err != nil {
		return nil, err
	}
	return &surface{
		screen: s.screen,
		bounds: render.Rect{X: s.bounds.X + r.X, Y: s.bounds.Y + r.Y, W: r.W, H: r.H},
	}, nil
}
