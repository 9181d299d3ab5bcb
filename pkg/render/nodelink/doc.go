// Package nodelink renders the neighbor graph of a hex grid as a node-link
// diagram.
//
// # Overview
//
// Every valid grid position becomes a node pinned at its pixel center, and
// every pair of valid neighbors becomes an undirected edge. The diagram is a
// quick visual check of adjacency and of the offset-row placement.
//
// # Usage
//
//	dot := nodelink.ToDOT(grid, tf, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//
// For PDF or PNG output, use the render functions:
//
//	pdf, err := nodelink.RenderPDF(dot)
//	png, err := nodelink.RenderPNG(dot, 2.0)  // 2x scale
//
// # Layout
//
// Node positions come from the transformer, so the graph is laid out with
// the neato engine honoring pinned positions (pos="x,y!"). Graphviz y grows
// upward; positions are mirrored so the diagram matches the screen.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
