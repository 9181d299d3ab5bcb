// Package pkg provides the core libraries for HexLife.
//
// # Overview
//
// HexLife draws a rectangular region of a hexagonal grid next to a command
// column and keeps the grid centered while the window is resized. The pkg
// directory is organized into three areas:
//
//  1. [hex] - Grid geometry (positions, dimensions, neighbors)
//  2. [render] - Drawing surfaces, the hex-to-pixel mapping and the grid display
//  3. [ui] and [config] - Window partitioning, the command column and settings
//
// # Architecture
//
// The data flow for one frame:
//
//	config.Config
//	     ↓
//	[hex] grid + [ui] layout (window → command column, separator, simulation area)
//	     ↓
//	[render/transform] origin centered in the simulation area
//	     ↓
//	[render/display] hexagon outlines on a [render.Surface]
//	     ↓
//	ebiten window, terminal cells, or SVG/PNG/PDF/JSON via [pipeline]
//
// # Quick Start
//
// Draw a grid onto an SVG surface:
//
//	dims, _ := hex.NewDimensions(5, 10)
//	grid := hex.NewGrid(dims)
//
//	svg := sink.NewSVG(800, 600)
//	d, _ := display.New(grid, config.Default().DisplayConfig(), svg)
//	d.Render()
//	os.WriteFile("grid.svg", svg.Bytes(), 0o644)
//
// Render a full frame headless:
//
//	artifacts, _ := pipeline.Render(ctx, config.Default(), pipeline.Options{
//	    Width:   1024,
//	    Height:  768,
//	    Formats: []string{"svg", "png"},
//	})
//
// # Main Packages
//
// [hex] - GridPosition, Dimensions and Grid. Positions use axial (q, r)
// coordinates; the valid region is the rectangle 0 ≤ q < width, 0 ≤ r < height.
//
// [render] - The Surface contract every backend implements, colors, and
// SVG to PDF/PNG conversion.
//
//   - [render/transform]: Hex-to-pixel mapping and hexagon vertices
//   - [render/display]: GridRenderer and GridDisplay (centering, resize)
//   - [render/sink]: Surfaces (SVG, raster PNG, terminal cells, recorder)
//   - [render/nodelink]: Neighbor graph diagrams using Graphviz
//
// [ui] - LayoutManager partitions the window; CommandColumn draws the side panel.
//
// [config] - Immutable settings with TOML and YAML files.
//
// [pipeline] - Headless frame and adjacency rendering used by the CLI.
//
// [errors] - Structured error codes shared by every package.
//
// [observability] - Optional frame and render hooks.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/hex/...       # Specific package
//	go test -run Example ./...  # Examples only
//
// [hex]: https://pkg.go.dev/github.com/matzehuels/hexlife/pkg/hex
// [render]: https://pkg.go.dev/github.com/matzehuels/hexlife/pkg/render
// [render.Surface]: https://pkg.go.dev/github.com/matzehuels/hexlife/pkg/render#Surface
// [render/transform]: https://pkg.go.dev/github.com/matzehuels/hexlife/pkg/render/transform
// [render/display]: https://pkg.go.dev/github.com/matzehuels/hexlife/pkg/render/display
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/hexlife/pkg/render/sink
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/hexlife/pkg/render/nodelink
// [ui]: https://pkg.go.dev/github.com/matzehuels/hexlife/pkg/ui
// [config]: https://pkg.go.dev/github.com/matzehuels/hexlife/pkg/config
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/hexlife/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/matzehuels/hexlife/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/hexlife/pkg/observability
package pkg
