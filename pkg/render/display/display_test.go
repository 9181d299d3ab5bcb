package display

import (
	"image/color"
	"math"
	"testing"

	errs "github.com/matzehuels/hexlife/pkg/errors"
	"github.com/matzehuels/hexlife/pkg/hex"
	"github.com/matzehuels/hexlife/pkg/render"
	"github.com/matzehuels/hexlife/pkg/render/sink"
)

const eps = 1e-9

func testConfig() Config {
	return Config{
		HexSize:    50,
		Background: color.RGBA{0, 0, 0, 255},
		LineColor:  color.RGBA{100, 100, 100, 255},
		LineWidth:  1,
		Padding:    20,
	}
}

func mustGrid(t *testing.T, w, h int) *hex.Grid {
	t.Helper()
	dims, err := hex.NewDimensions(w, h)
	if err != nil {
		t.Fatalf("NewDimensions(%d, %d) error: %v", w, h, err)
	}
	return hex.NewGrid(dims)
}

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func TestGridPixelSize(t *testing.T) {
	dims, _ := hex.NewDimensions(3, 3)
	w, h := GridPixelSize(dims, 50)
	if !near(w, 500) {
		t.Errorf("width = %v, want 500", w)
	}
	if want := 3 * 50 * math.Sqrt(3) / 2; !near(h, want) {
		t.Errorf("height = %v, want %v", h, want)
	}
}

func TestNewCentersGrid(t *testing.T) {
	rec := sink.NewRecorder(800, 600)
	d, err := New(mustGrid(t, 3, 3), testConfig(), rec)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	want := render.Point{
		X: (800-500)/2.0 + 20,
		Y: (600-3*50*math.Sqrt(3)/2)/2 + 20,
	}
	got := d.Origin()
	if !near(got.X, want.X) || !near(got.Y, want.Y) {
		t.Errorf("Origin() = %v, want %v", got, want)
	}
	if d.Transformer().HexSize() != 50 {
		t.Errorf("HexSize() = %v, want 50", d.Transformer().HexSize())
	}
}

func TestHandleResizeRecenters(t *testing.T) {
	d, err := New(mustGrid(t, 3, 3), testConfig(), sink.NewRecorder(800, 600))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	d.HandleResize(sink.NewRecorder(1024, 768))
	want := render.Point{
		X: (1024-500)/2.0 + 20,
		Y: (768-3*50*math.Sqrt(3)/2)/2 + 20,
	}
	if got := d.Origin(); !near(got.X, want.X) || !near(got.Y, want.Y) {
		t.Errorf("Origin() after resize = %v, want %v", got, want)
	}

	// Back to the original size lands on the original origin.
	d.HandleResize(sink.NewRecorder(800, 600))
	if got := d.Origin(); !near(got.X, 170) {
		t.Errorf("Origin().X after round trip = %v, want 170", got.X)
	}

	before := d.Surface()
	d.HandleResize(nil)
	if d.Surface() != before {
		t.Error("HandleResize(nil) replaced the surface")
	}
}

func TestRender(t *testing.T) {
	rec := sink.NewRecorder(800, 600)
	d, err := New(mustGrid(t, 3, 4), testConfig(), rec)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	d.Render()

	ops := rec.Ops()
	if len(ops) != 1+12 {
		t.Fatalf("got %d ops, want background fill + 12 hexagons", len(ops))
	}
	if ops[0].Kind != sink.OpFill || ops[0].Color != "#000000" {
		t.Errorf("first op = %+v, want background fill", ops[0])
	}
	for _, op := range ops[1:] {
		if op.Kind != sink.OpPolygon {
			t.Fatalf("op kind = %q, want polygon", op.Kind)
		}
		if len(op.Points) != 6 || op.Color != "#646464" || op.LineWidth != 1 {
			t.Errorf("polygon = %+v, want 6 vertices in line color", op)
		}
	}

	// First polygon is position (0,0), centered on the origin.
	o := d.Origin()
	if v := ops[1].Points[0]; !near(v.X, o.X+50) || !near(v.Y, o.Y) {
		t.Errorf("first vertex = %v, want rightmost point of (0,0)", v)
	}
	// q is the outer loop: the second polygon is (0,1), shifted by 1.5 sizes.
	if v := ops[2].Points[0]; !near(v.X, o.X+50+75) {
		t.Errorf("second polygon vertex = %v, want odd row offset", v)
	}
}

func TestRenderOnSubRegion(t *testing.T) {
	rec := sink.NewRecorder(800, 600)
	sim, err := rec.SubRegion(render.Rect{X: 162, W: 638, H: 600})
	if err != nil {
		t.Fatalf("SubRegion() error: %v", err)
	}
	d, err := New(mustGrid(t, 1, 1), testConfig(), sim)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	d.Render()

	fill := rec.OpsOfKind(sink.OpFill)[0]
	if fill.Rect.X != 162 || fill.Rect.W != 638 {
		t.Errorf("background fill = %v, want simulation area only", fill.Rect)
	}
	poly := rec.OpsOfKind(sink.OpPolygon)[0]
	wantX := 162 + (638-200)/2.0 + 20 + 50
	if !near(poly.Points[0].X, wantX) {
		t.Errorf("vertex x = %v, want %v", poly.Points[0].X, wantX)
	}
}

func TestNewErrors(t *testing.T) {
	grid := mustGrid(t, 2, 2)
	rec := sink.NewRecorder(100, 100)

	bad := testConfig()
	bad.HexSize = 0
	if _, err := New(grid, bad, rec); !errs.Is(err, errs.ErrCodeInvalidConfig) {
		t.Errorf("New(hex size 0) error = %v, want INVALID_CONFIG", err)
	}

	bad = testConfig()
	bad.LineWidth = -1
	if _, err := New(grid, bad, rec); !errs.Is(err, errs.ErrCodeInvalidConfig) {
		t.Errorf("New(line width -1) error = %v, want INVALID_CONFIG", err)
	}

	if _, err := New(nil, testConfig(), rec); !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("New(nil grid) error = %v, want INVALID_INPUT", err)
	}
	if _, err := New(grid, testConfig(), nil); !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("New(nil surface) error = %v, want INVALID_INPUT", err)
	}
}
