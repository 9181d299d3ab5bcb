// Package sink provides concrete drawing surfaces for rendering frames
// outside the interactive window.
//
// # Surfaces
//
//   - [SVG]: vector output, a standalone SVG document via [SVG.Bytes]
//   - [Raster]: anti-aliased RGBA image backed by fogleman/gg, PNG via [Raster.EncodePNG]
//   - [Cells]: terminal character grid for the bubbletea preview
//   - [Recorder]: records draw calls; [Recorder.MarshalJSON] yields a scene description
//
// Each surface implements [render.Surface]. Sub-regions share the parent's
// backing store, translate coordinates by the region origin and clip drawing
// to the region bounds.
//
// # Usage
//
//	svg := sink.NewSVG(800, 600)
//	sim, err := svg.SubRegion(render.Rect{X: 162, W: 638, H: 600})
//	if err != nil {
//	    sim = svg // fall back to the full surface
//	}
//	display.New(grid, cfg, sim).Render()
//	os.WriteFile("frame.svg", svg.Bytes(), 0o644)
//
// PDF output converts the SVG document with [render.ToPDF].
package sink
