package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hexlife/internal/tui"
	"github.com/matzehuels/hexlife/internal/window"
)

// runCommand opens the desktop window.
func (c *CLI) runCommand() *cobra.Command {
	var width, height int

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the hex grid in a resizable window",
		Long: `Open the hex grid in a resizable desktop window.

The window is split into a command column, a separator and the simulation
area. The grid stays centered in the simulation area as the window is resized.
Close the window or press Escape to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runWindow(cmd.Context(), width, height)
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "initial window width (default from config)")
	cmd.Flags().IntVar(&height, "height", 0, "initial window height (default from config)")

	return cmd
}

func (c *CLI) runWindow(ctx context.Context, width, height int) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	if width > 0 {
		cfg.Window.Width = width
	}
	if height > 0 {
		cfg.Window.Height = height
	}

	return window.Run(ctx, cfg, loggerFromContext(ctx))
}

// previewCommand runs the frame loop in the terminal.
func (c *CLI) previewCommand() *cobra.Command {
	opts := tui.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Run the hex grid in the terminal",
		Long: `Run the same frame loop as 'run' inside the terminal.

Each terminal cell stands for a block of pixels. Resize the terminal to
resize the window. Press q or Ctrl+C to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			return tui.Run(cmd.Context(), cfg, loggerFromContext(cmd.Context()), opts)
		},
	}

	cmd.Flags().IntVar(&opts.CellWidth, "cell-width", opts.CellWidth, "pixels per terminal column")
	cmd.Flags().IntVar(&opts.CellHeight, "cell-height", opts.CellHeight, "pixels per terminal row")

	return cmd
}
