package sink

import (
	"image/color"
	"strings"
	"testing"

	errs "github.com/matzehuels/hexlife/pkg/errors"
	"github.com/matzehuels/hexlife/pkg/render"
)

var white = color.RGBA{255, 255, 255, 255}

func TestSVGDocument(t *testing.T) {
	s := NewSVG(200, 100, WithTitle("HexLife <frame>"))
	s.Fill(color.RGBA{0, 0, 0, 255})
	s.DrawPolygon(white, []render.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 5}}, 1)

	out := string(s.Bytes())
	for _, want := range []string{
		`viewBox="0 0 200 100"`,
		`<title>HexLife &lt;frame&gt;</title>`,
		`fill="#000000"`,
		`points="0.00,0.00 10.00,0.00 5.00,5.00"`,
		`stroke="#ffffff"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(out, "<defs>") {
		t.Error("root surface should not emit clip paths")
	}
}

func TestSVGSubRegion(t *testing.T) {
	s := NewSVG(200, 100)
	sub, err := s.SubRegion(render.Rect{X: 50, Y: 10, W: 100, H: 80})
	if err != nil {
		t.Fatalf("SubRegion() error: %v", err)
	}
	if w, h := sub.Size(); w != 100 || h != 80 {
		t.Errorf("Size() = %dx%d, want 100x80", w, h)
	}
	sub.DrawText("hi", 1, 2, 12, white)

	out := string(s.Bytes())
	if !strings.Contains(out, `<clipPath id="region-1"><rect x="50" y="10" width="100" height="80"/></clipPath>`) {
		t.Errorf("missing clip path:\n%s", out)
	}
	if !strings.Contains(out, `x="51.00" y="12.00"`) {
		t.Errorf("text not translated by region origin:\n%s", out)
	}
	if !strings.Contains(out, `clip-path="url(#region-1)"`) {
		t.Errorf("text not clipped:\n%s", out)
	}
}

func TestSVGSubRegionErrors(t *testing.T) {
	s := NewSVG(200, 100)
	tests := []struct {
		name string
		r    render.Rect
	}{
		{"empty", render.Rect{X: 0, Y: 0, W: 0, H: 10}},
		{"overflow", render.Rect{X: 150, Y: 0, W: 100, H: 10}},
		{"negative", render.Rect{X: -1, Y: 0, W: 10, H: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.SubRegion(tt.r)
			if !errs.Is(err, errs.ErrCodeResourceAcquisition) {
				t.Errorf("SubRegion(%v) error = %v, want RESOURCE_ACQUISITION", tt.r, err)
			}
		})
	}
}

func TestSVGFillRectClipped(t *testing.T) {
	s := NewSVG(100, 100)
	sub, _ := s.SubRegion(render.Rect{X: 10, Y: 10, W: 20, H: 20})
	sub.FillRect(render.Rect{X: -5, Y: 5, W: 100, H: 5}, white)
	sub.FillRect(render.Rect{X: 50, Y: 50, W: 5, H: 5}, white)

	out := string(s.Bytes())
	if !strings.Contains(out, `<rect x="10" y="15" width="20" height="5" fill="#ffffff"`) {
		t.Errorf("rect not clipped to region:\n%s", out)
	}
	if strings.Count(out, `fill="#ffffff"`) != 1 {
		t.Errorf("rect outside region should be dropped:\n%s", out)
	}
}
