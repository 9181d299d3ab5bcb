package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/hexlife/pkg/config"
	"github.com/matzehuels/hexlife/pkg/render"
	"github.com/matzehuels/hexlife/pkg/render/display"
	"github.com/matzehuels/hexlife/pkg/ui"
)

// layoutReport is the window partition and grid placement for one size.
type layoutReport struct {
	ui.Areas
	GridOrigin render.Point `json:"grid_origin"`
	GridWidth  float64      `json:"grid_width"`
	GridHeight float64      `json:"grid_height"`
}

// layoutCommand prints how a window of a given size is partitioned.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		width, height int
		asJSON        bool
		copyJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the window partition for a window size",
		Long: `Print the command column, separator and simulation area for a window
size, plus where the hex grid is placed inside the simulation area.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if width <= 0 {
				width = cfg.Window.Width
			}
			if height <= 0 {
				height = cfg.Window.Height
			}
			report, err := computeLayout(cfg, width, height)
			if err != nil {
				return err
			}
			if copyJSON {
				copyLayout(loggerFromContext(cmd.Context()), report)
			}
			if asJSON {
				enc := json.NewEncoder(stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			printLayout(report)
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "window width (default from config)")
	cmd.Flags().IntVar(&height, "height", 0, "window height (default from config)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	cmd.Flags().BoolVar(&copyJSON, "copy", false, "copy the JSON report to the clipboard")

	return cmd
}

// computeLayout partitions the window after clamping it to the configured
// minimum, the same way the frame loop does.
func computeLayout(cfg config.Config, width, height int) (layoutReport, error) {
	if err := cfg.Validate(); err != nil {
		return layoutReport{}, err
	}
	dims, err := cfg.Dimensions()
	if err != nil {
		return layoutReport{}, err
	}
	w, h := cfg.ClampWindow(width, height)
	areas := ui.ComputeAreas(cfg.LayoutConfig(), w, h)
	sim := areas.Simulation

	gw, gh := display.GridPixelSize(dims, cfg.Grid.HexSize)
	return layoutReport{
		Areas:      areas,
		GridOrigin: display.CenteredOrigin(dims, cfg.Grid.HexSize, cfg.Grid.Padding, sim.W, sim.H),
		GridWidth:  gw,
		GridHeight: gh,
	}, nil
}

func printLayout(r layoutReport) {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	rows := [][]string{
		rectRow("window", r.Window),
		rectRow("command", r.Command),
		rectRow("separator", r.Separator),
		rectRow("simulation", r.Simulation),
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Area", "X", "Y", "W", "H").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return cellStyle.Foreground(colorGray)
			}
			return cellStyle.Foreground(colorWhite)
		})

	fmt.Fprintln(stdout, StyleTitle.Render("Layout"))
	fmt.Fprintln(stdout, t.Render())
	printKeyValue("grid origin", fmt.Sprintf("(%.1f, %.1f)", r.GridOrigin.X, r.GridOrigin.Y))
	printKeyValue("grid size", fmt.Sprintf("%.1f × %.1f", r.GridWidth, r.GridHeight))
	if r.GridWidth > float64(r.Simulation.W) || r.GridHeight > float64(r.Simulation.H) {
		printWarning("grid is larger than the simulation area and will be clipped")
	}
	printNewline()
	printNextStep("Render this frame", fmt.Sprintf("hexlife render --width %d --height %d", r.Window.W, r.Window.H))
}

// copyLayout puts the JSON report on the system clipboard. Status goes to
// the logger so stdout stays clean for --json.
func copyLayout(logger *log.Logger, r layoutReport) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		logger.Warn("encode layout", "err", err)
		return
	}
	if err := clipboard.WriteAll(buf.String()); err != nil {
		logger.Warn("clipboard unavailable", "err", err)
		return
	}
	logger.Info("Copied layout to clipboard")
}

func rectRow(name string, r render.Rect) []string {
	return []string{name, strconv.Itoa(r.X), strconv.Itoa(r.Y), strconv.Itoa(r.W), strconv.Itoa(r.H)}
}
