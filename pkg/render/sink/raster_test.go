package sink

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/matzehuels/hexlife/pkg/render"
)

func TestRasterFill(t *testing.T) {
	r := NewRaster(40, 30)
	r.Fill(color.RGBA{10, 20, 30, 255})

	got := color.RGBAModel.Convert(r.Image().At(5, 5)).(color.RGBA)
	if got != (color.RGBA{10, 20, 30, 255}) {
		t.Errorf("pixel = %v, want fill color", got)
	}
}

func TestRasterSubRegion(t *testing.T) {
	r := NewRaster(40, 30)
	r.Fill(color.RGBA{0, 0, 0, 255})

	sub, err := r.SubRegion(render.Rect{X: 20, Y: 0, W: 20, H: 30})
	if err != nil {
		t.Fatalf("SubRegion() error: %v", err)
	}
	sub.Fill(color.RGBA{255, 0, 0, 255})

	left := color.RGBAModel.Convert(r.Image().At(10, 10)).(color.RGBA)
	right := color.RGBAModel.Convert(r.Image().At(30, 10)).(color.RGBA)
	if left.R != 0 {
		t.Errorf("left pixel = %v, want untouched black", left)
	}
	if right.R != 255 {
		t.Errorf("right pixel = %v, want red", right)
	}
}

func TestRasterPolygonClipped(t *testing.T) {
	r := NewRaster(40, 40)
	r.Fill(color.RGBA{0, 0, 0, 255})
	sub, _ := r.SubRegion(render.Rect{X: 0, Y: 0, W: 20, H: 40})
	// Square straddling the region edge; only its left half may be drawn.
	sub.DrawPolygon(color.RGBA{255, 255, 255, 255}, []render.Point{{X: 10, Y: 10}, {X: 30, Y: 10}, {X: 30, Y: 30}, {X: 10, Y: 30}}, 2)

	inside := color.RGBAModel.Convert(r.Image().At(10, 20)).(color.RGBA)
	outside := color.RGBAModel.Convert(r.Image().At(30, 20)).(color.RGBA)
	if inside.R == 0 {
		t.Error("edge inside region was not drawn")
	}
	if outside.R != 0 {
		t.Errorf("edge outside region drawn: %v", outside)
	}
}

func TestRasterMeasureText(t *testing.T) {
	r := NewRaster(10, 10)
	w, h := r.MeasureText("abcd", 13)
	if w != 28 || h != 13 {
		t.Errorf("MeasureText() = %v,%v, want 28,13", w, h)
	}
	w, _ = r.MeasureText("abcd", 26)
	if w != 56 {
		t.Errorf("MeasureText() at 2x = %v, want 56", w)
	}
}

func TestRasterEncodePNG(t *testing.T) {
	r := NewRaster(8, 6)
	var buf bytes.Buffer
	if err := r.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() error: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 6 {
		t.Errorf("bounds = %v, want 8x6", b)
	}
}
