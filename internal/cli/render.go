package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	errs "github.com/matzehuels/hexlife/pkg/errors"
	"github.com/matzehuels/hexlife/pkg/pipeline"
)

// defaultOutput is the base output path when --output is not set.
const defaultOutput = "hexlife"

// renderCommand creates the render command for headless frames and diagrams.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output     string
		formatsStr string
	)
	opts := pipeline.Options{VizType: pipeline.VizTypeFrame, Scale: pipeline.DefaultScale}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a frame or the adjacency diagram to files",
		Long: `Render one frame without opening a window.

The frame type draws the full window: command column, separator and the
centered hex grid. The adjacency type lays out the grid's neighbor graph
with Graphviz.

Supported formats:
  frame:      svg (default), png, pdf, json
  adjacency:  svg (default), png, pdf, dot

PDF output and adjacency PNG output require rsvg-convert.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = pipeline.ParseFormats(formatsStr)
			return c.runRender(cmd.Context(), opts, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (default: hexlife)")
	cmd.Flags().StringVarP(&opts.VizType, "type", "t", opts.VizType, "visualization type: frame (default), adjacency")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s), comma-separated")
	cmd.Flags().IntVar(&opts.Width, "width", 0, "window width in pixels (default from config)")
	cmd.Flags().IntVar(&opts.Height, "height", 0, "window height in pixels (default from config)")
	cmd.Flags().BoolVar(&opts.Detailed, "detailed", false, "label adjacency nodes with pixel centers")
	cmd.Flags().Float64Var(&opts.Scale, "scale", opts.Scale, "PNG scale for adjacency diagrams")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, output string) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	logger := loggerFromContext(ctx)
	opts.Logger = logger
	prog := newProgress(logger)

	// Conversion through rsvg-convert is slow enough to warrant a spinner.
	var spinner *Spinner
	if slices.Contains(opts.Formats, pipeline.FormatPDF) || slices.Contains(opts.Formats, pipeline.FormatPNG) {
		spinner = newSpinnerWithContext(ctx, os.Stderr, fmt.Sprintf("Rendering %s...", strings.Join(opts.Formats, ", ")))
		spinner.Start()
	}

	artifacts, err := pipeline.Render(ctx, cfg, opts)
	if spinner != nil {
		if err != nil {
			spinner.StopWithError("Render failed")
		} else {
			spinner.Stop()
		}
	}
	if err != nil {
		return err
	}

	paths := outputPaths(output, opts.Formats)
	for _, format := range opts.Formats {
		data := artifacts[format]
		path := paths[format]
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return errs.Wrap(errs.ErrCodeInternal, err, "write %s", path)
		}
		printFile(path, humanize.Bytes(uint64(len(data))))
	}
	prog.done(fmt.Sprintf("Rendered %d %s", len(artifacts), plural(len(artifacts), "artifact")))
	return nil
}

// outputPaths maps each format to its output file. A single format writes
// to output as given; several formats share a base path.
func outputPaths(output string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output)
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}

// basePath strips a known format extension from output.
// An empty output yields the default base path.
func basePath(output string) string {
	if output == "" {
		return defaultOutput
	}
	ext := filepath.Ext(output)
	switch strings.TrimPrefix(ext, ".") {
	case pipeline.FormatSVG, pipeline.FormatPNG, pipeline.FormatPDF, pipeline.FormatJSON, pipeline.FormatDOT:
		return strings.TrimSuffix(output, ext)
	}
	return output
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
