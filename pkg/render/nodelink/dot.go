package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	errs "github.com/matzehuels/hexlife/pkg/errors"
	"github.com/matzehuels/hexlife/pkg/hex"
	"github.com/matzehuels/hexlife/pkg/render"
	"github.com/matzehuels/hexlife/pkg/render/transform"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds the pixel center to each node label.
	// When false, only the axial coordinate is shown.
	Detailed bool
}

// ToDOT converts the neighbor graph of grid to Graphviz DOT format. Nodes are
// pinned at the pixel centers tf assigns them.
func ToDOT(grid *hex.Grid, tf transform.Transformer, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  inputscale=72;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=hexagon, style=filled, fillcolor=white, fontsize=10, width=0.5, height=0.4, fixedsize=true];\n")
	buf.WriteString("\n")

	for p := range grid.Positions() {
		c := tf.HexToPixel(p)
		fmt.Fprintf(&buf, "  %q [label=%q, pos=\"%.2f,%.2f!\"];\n", nodeID(p), fmtLabel(p, c, opts.Detailed), c.X, -c.Y)
	}

	buf.WriteString("\n")
	for p := range grid.Positions() {
		for _, n := range grid.ValidNeighbors(p) {
			if !less(p, n) {
				continue
			}
			fmt.Fprintf(&buf, "  %q -- %q;\n", nodeID(p), nodeID(n))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// EdgeCount returns the number of undirected neighbor pairs in grid.
func EdgeCount(grid *hex.Grid) int {
	n := 0
	for p := range grid.Positions() {
		for _, q := range grid.ValidNeighbors(p) {
			if less(p, q) {
				n++
			}
		}
	}
	return n
}

func nodeID(p hex.GridPosition) string {
	return fmt.Sprintf("%d_%d", p.Q, p.R)
}

func fmtLabel(p hex.GridPosition, c render.Point, detailed bool) string {
	if !detailed {
		return p.String()
	}
	return fmt.Sprintf("%s\n%.0f,%.0f", p, c.X, c.Y)
}

// less orders positions so each undirected edge is emitted once.
func less(a, b hex.GridPosition) bool {
	if a.Q != b.Q {
		return a.Q < b.Q
	}
	return a.R < b.R
}

// RenderSVG renders a DOT graph to SVG using Graphviz's neato engine.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidFormat, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "render")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion at the given scale.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
