// Package render defines the drawing-surface contract used by the HexLife
// renderers and the format conversions shared by the output sinks.
//
// # Overview
//
// Rendering flows one way:
//
//	window size → ui.LayoutManager → simulation-area surface
//	    → display.GridDisplay (centered transform.Transformer)
//	    → display.GridRenderer → Surface.DrawPolygon
//
// Nothing in this tree talks to a graphics backend directly. Every backend
// implements [Surface]:
//
//   - the ebiten window (internal/window)
//   - [sink.SVG], [sink.Raster], [sink.Cells] and [sink.Recorder]
//
// # Sub-regions
//
// [Surface.SubRegion] returns a surface whose origin is the top-left corner
// of the requested rectangle. It fails with a RESOURCE_ACQUISITION error when
// the rectangle is empty or does not fit inside the parent; callers are
// expected to fall back to the parent surface. [CheckSubRegion] implements
// the bounds rule for all backends.
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] convert SVG documents using the external rsvg-convert
// tool (from librsvg).
//
//	svg := sink.NewSVG(800, 600)
//	// ... draw ...
//	pdf, err := render.ToPDF(svg.Bytes())
//
// [sink.SVG]: github.com/matzehuels/hexlife/pkg/render/sink
// [sink.Raster]: github.com/matzehuels/hexlife/pkg/render/sink
// [sink.Cells]: github.com/matzehuels/hexlife/pkg/render/sink
// [sink.Recorder]: github.com/matzehuels/hexlife/pkg/render/sink
package render
