package sink

import (
	"encoding/json"
	"image/color"

	errs "github.com/matzehuels/hexlife/pkg/errors"
	"github.com/matzehuels/hexlife/pkg/render"
)

// Op kinds recorded by [Recorder].
const (
	OpFill    = "fill"
	OpRect    = "rect"
	OpPolygon = "polygon"
	OpText    = "text"
)

// Op is one recorded draw call. Coordinates are absolute, in the root
// surface's space.
type Op struct {
	Kind      string         `json:"kind"`
	Color     string         `json:"color"`
	Rect      *render.Rect   `json:"rect,omitempty"`
	Points    []render.Point `json:"points,omitempty"`
	LineWidth float64        `json:"line_width,omitempty"`
	Text      string         `json:"text,omitempty"`
	Size      float64        `json:"size,omitempty"`
	Clip      render.Rect    `json:"clip"`
}

// RecorderOption configures a [Recorder].
type RecorderOption func(*recording)

// WithSubRegionFailure makes every SubRegion call fail with a
// RESOURCE_ACQUISITION error.
func WithSubRegionFailure() RecorderOption {
	return func(r *recording) { r.failSubRegions = true }
}

type recording struct {
	width, height  int
	ops            []Op
	failSubRegions bool
	subRegions     []render.Rect
}

// Recorder is a surface that keeps a log of draw calls instead of pixels.
type Recorder struct {
	rec    *recording
	bounds render.Rect
}

// NewRecorder creates a width×height recording surface.
func NewRecorder(width, height int, opts ...RecorderOption) *Recorder {
	rec := &recording{width: width, height: height}
	for _, opt := range opts {
		opt(rec)
	}
	return &Recorder{rec: rec, bounds: render.Rect{W: width, H: height}}
}

func (r *Recorder) Size() (int, int) { return r.bounds.W, r.bounds.H }

func (r *Recorder) Fill(c color.RGBA) {
	b := r.bounds
	r.record(Op{Kind: OpFill, Color: render.HexColor(c), Rect: &b})
}

func (r *Recorder) FillRect(rect render.Rect, c color.RGBA) {
	rect = intersect(translate(rect, r.bounds.X, r.bounds.Y), r.bounds)
	if rect.Empty() {
		return
	}
	r.record(Op{Kind: OpRect, Color: render.HexColor(c), Rect: &rect})
}

func (r *Recorder) DrawPolygon(c color.RGBA, vertices []render.Point, lineWidth float64) {
	if len(vertices) < 3 {
		return
	}
	pts := make([]render.Point, len(vertices))
	for i, v := range vertices {
		pts[i] = render.Point{X: v.X + float64(r.bounds.X), Y: v.Y + float64(r.bounds.Y)}
	}
	r.record(Op{Kind: OpPolygon, Color: render.HexColor(c), Points: pts, LineWidth: lineWidth})
}

func (r *Recorder) DrawText(s string, x, y, size float64, c color.RGBA) {
	r.record(Op{
		Kind:   OpText,
		Color:  render.HexColor(c),
		Points: []render.Point{{X: x + float64(r.bounds.X), Y: y + float64(r.bounds.Y)}},
		Text:   s,
		Size:   size,
	})
}

func (r *Recorder) MeasureText(s string, size float64) (float64, float64) {
	return render.ApproxTextWidth(s, size), size
}

func (r *Recorder) SubRegion(rect render.Rect) (render.Surface, error) {
	if r.rec.failSubRegions {
		return nil, errs.New(errs.ErrCodeResourceAcquisition, "subregion %s unavailable", rect)
	}
	if err := render.CheckSubRegion(r.bounds.W, r.bounds.H, rect); err != nil {
		return nil, err
	}
	abs := translate(rect, r.bounds.X, r.bounds.Y)
	r.rec.subRegions = append(r.rec.subRegions, abs)
	return &Recorder{rec: r.rec, bounds: abs}, nil
}

func (r *Recorder) record(op Op) {
	op.Clip = r.bounds
	r.rec.ops = append(r.rec.ops, op)
}

// Bounds returns the surface rectangle in root coordinates.
func (r *Recorder) Bounds() render.Rect { return r.bounds }

// Ops returns all draw calls recorded so far, including those made through
// sub-regions.
func (r *Recorder) Ops() []Op { return r.rec.ops }

// OpsOfKind returns the recorded draw calls of one kind.
func (r *Recorder) OpsOfKind(kind string) []Op {
	var out []Op
	for _, op := range r.rec.ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// SubRegions returns every sub-region acquired so far, in root coordinates.
func (r *Recorder) SubRegions() []render.Rect { return r.rec.subRegions }

// Reset discards recorded calls and sub-regions.
func (r *Recorder) Reset() {
	r.rec.ops = nil
	r.rec.subRegions = nil
}

type recorderJSON struct {
	Width  int  `json:"width"`
	Height int  `json:"height"`
	Ops    []Op `json:"ops"`
}

// MarshalJSON encodes the root size and the recorded calls as a scene
// description.
func (r *Recorder) MarshalJSON() ([]byte, error) {
	ops := r.rec.ops
	if ops == nil {
		ops = []Op{}
	}
	return json.Marshal(recorderJSON{Width: r.rec.width, Height: r.rec.height, Ops: ops})
}
