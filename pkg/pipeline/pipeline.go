// Package pipeline renders HexLife frames without a window.
//
// It builds the same application state the interactive drivers use on an
// offscreen surface, draws one frame and encodes it. Two visualization types
// are supported:
//
//  1. frame: the full window (command column, separator and hex grid)
//  2. adjacency: the neighbor graph of the grid, laid out by Graphviz
//
// # Usage
//
//	opts := pipeline.Options{Width: 800, Height: 600, Formats: []string{"svg", "png"}}
//	artifacts, err := pipeline.Render(ctx, config.Default(), opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := artifacts["svg"]
package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/hexlife/internal/app"
	"github.com/matzehuels/hexlife/pkg/config"
	errs "github.com/matzehuels/hexlife/pkg/errors"
	"github.com/matzehuels/hexlife/pkg/observability"
	"github.com/matzehuels/hexlife/pkg/render"
	"github.com/matzehuels/hexlife/pkg/render/nodelink"
	"github.com/matzehuels/hexlife/pkg/render/sink"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatDOT  = "dot"
)

// Visualization types.
const (
	VizTypeFrame     = "frame"
	VizTypeAdjacency = "adjacency"
)

// DefaultScale is the PNG scale factor for adjacency diagrams.
const DefaultScale = 2.0

// ValidFormats lists the output formats each visualization type supports.
var ValidFormats = map[string]map[string]bool{
	VizTypeFrame:     {FormatSVG: true, FormatPNG: true, FormatPDF: true, FormatJSON: true},
	VizTypeAdjacency: {FormatSVG: true, FormatPNG: true, FormatPDF: true, FormatDOT: true},
}

// Options configures a headless render.
type Options struct {
	// Width and Height are the window size in pixels. Zero means the
	// configured window size.
	Width  int
	Height int

	// VizType is "frame" (default) or "adjacency".
	VizType string

	// Formats lists the outputs to produce. Empty means svg.
	Formats []string

	// Detailed adds pixel centers to adjacency node labels.
	Detailed bool

	// Scale is the PNG scale for adjacency diagrams.
	Scale float64

	// Logger receives progress messages. Nil means log.Default().
	Logger *log.Logger
}

// SetDefaults fills zero values from cfg.
func (o *Options) SetDefaults(cfg config.Config) {
	if o.Width <= 0 {
		o.Width = cfg.Window.Width
	}
	if o.Height <= 0 {
		o.Height = cfg.Window.Height
	}
	if o.VizType == "" {
		o.VizType = VizTypeFrame
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale <= 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
}

// Validate checks the visualization type and formats.
func (o Options) Validate() error {
	formats, ok := ValidFormats[o.VizType]
	if !ok {
		return errs.New(errs.ErrCodeInvalidFormat, "invalid type: %s (must be 'frame' or 'adjacency')", o.VizType)
	}
	return ValidateFormats(o.VizType, o.Formats, formats)
}

// ValidateFormats checks that every format is supported by vizType.
func ValidateFormats(vizType string, formats []string, valid map[string]bool) error {
	for _, f := range formats {
		if !valid[f] {
			return errs.New(errs.ErrCodeInvalidFormat, "invalid format for %s: %s", vizType, f)
		}
	}
	return nil
}

// ParseFormats splits a comma-separated format list. Empty means svg.
func ParseFormats(s string) []string {
	if s == "" {
		return []string{FormatSVG}
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// Render produces one artifact per requested format.
func Render(ctx context.Context, cfg config.Config, opts Options) (artifacts map[string][]byte, err error) {
	opts.SetDefaults(cfg)
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	observability.Render().OnRenderStart(ctx, opts.Formats)
	defer func() {
		observability.Render().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	}()

	artifacts = make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var data []byte
		switch opts.VizType {
		case VizTypeAdjacency:
			data, err = renderAdjacency(cfg, format, opts)
		default:
			data, err = renderFrame(cfg, format, opts)
		}
		if err != nil {
			code := errs.GetCode(err)
			if code == "" {
				code = errs.ErrCodeInternal
			}
			return nil, errs.Wrap(code, err, "render %s", format)
		}
		opts.Logger.Debug("rendered artifact", "type", opts.VizType, "format", format, "bytes", len(data))
		artifacts[format] = data
	}
	return artifacts, nil
}

// Frame draws one frame onto surface with a fresh application state.
func Frame(cfg config.Config, logger *log.Logger, surface render.Surface) (*app.App, error) {
	a, err := app.New(cfg, logger, surface)
	if err != nil {
		return nil, err
	}
	a.RenderFrame()
	return a, nil
}

func renderFrame(cfg config.Config, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatSVG, FormatPDF:
		svg := sink.NewSVG(opts.Width, opts.Height, sink.WithTitle(cfg.Window.Title))
		if _, err := Frame(cfg, opts.Logger, svg); err != nil {
			return nil, err
		}
		if format == FormatPDF {
			return render.ToPDF(svg.Bytes())
		}
		return svg.Bytes(), nil
	case FormatPNG:
		raster := sink.NewRaster(opts.Width, opts.Height)
		if _, err := Frame(cfg, opts.Logger, raster); err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		if err := raster.EncodePNG(&buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatJSON:
		rec := sink.NewRecorder(opts.Width, opts.Height)
		if _, err := Frame(cfg, opts.Logger, rec); err != nil {
			return nil, err
		}
		return json.MarshalIndent(rec, "", "  ")
	}
	return nil, errs.New(errs.ErrCodeInvalidFormat, "unsupported frame format: %s", format)
}

// AdjacencyDOT returns the neighbor graph of the configured grid, with nodes
// placed where a width×height window would draw them.
func AdjacencyDOT(cfg config.Config, width, height int, detailed bool, logger *log.Logger) (string, error) {
	a, err := app.New(cfg, logger, sink.NewRecorder(width, height))
	if err != nil {
		return "", err
	}
	d := a.Display()
	return nodelink.ToDOT(d.Grid(), d.Transformer(), nodelink.Options{Detailed: detailed}), nil
}

func renderAdjacency(cfg config.Config, format string, opts Options) ([]byte, error) {
	dot, err := AdjacencyDOT(cfg, opts.Width, opts.Height, opts.Detailed, opts.Logger)
	if err != nil {
		return nil, err
	}
	switch format {
	case FormatDOT:
		return []byte(dot), nil
	case FormatSVG:
		return nodelink.RenderSVG(dot)
	case FormatPNG:
		return nodelink.RenderPNG(dot, opts.Scale)
	case FormatPDF:
		return nodelink.RenderPDF(dot)
	}
	return nil, errs.New(errs.ErrCodeInvalidFormat, "unsupported adjacency format: %s", format)
}
