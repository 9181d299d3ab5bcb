package ui

import (
	"image/color"
	"math"

	"github.com/matzehuels/hexlife/pkg/render"
)

// LayoutConfig holds the fixed layout tunables.
type LayoutConfig struct {
	// CommandColumnRatio is the share of the window width given to the
	// command column.
	CommandColumnRatio float64
	// SeparatorWidth is the separator width in pixels.
	SeparatorWidth int
	// SeparatorColor paints the separator.
	SeparatorColor color.RGBA
}

// Areas is one consistent partition of the window.
type Areas struct {
	Window     render.Rect `json:"window"`
	Command    render.Rect `json:"command_area"`
	Separator  render.Rect `json:"separator_rect"`
	Simulation render.Rect `json:"simulation_area"`
}

// ComputeAreas partitions a width×height window. Dimensions below 1 are
// clamped to 1 so every rectangle keeps a positive height and the command and
// simulation rectangles keep a positive width.
func ComputeAreas(cfg LayoutConfig, width, height int) Areas {
	w := max(1, width)
	h := max(1, height)

	column := int(math.Floor(float64(w) * cfg.CommandColumnRatio))
	column = max(1, min(column, w))

	sep := max(0, min(cfg.SeparatorWidth, w-column))

	simX := min(column+sep, w-1)
	simW := max(1, w-simX)

	return Areas{
		Window:     render.Rect{X: 0, Y: 0, W: w, H: h},
		Command:    render.Rect{X: 0, Y: 0, W: column, H: h},
		Separator:  render.Rect{X: column, Y: 0, W: sep, H: h},
		Simulation: render.Rect{X: simX, Y: 0, W: simW, H: h},
	}
}

// LayoutManager tracks the window size and its current partition.
// It is owned by the frame loop and not safe for concurrent use.
type LayoutManager struct {
	cfg   LayoutConfig
	areas Areas
}

// NewLayoutManager creates a layout manager for a width×height window.
func NewLayoutManager(cfg LayoutConfig, width, height int) *LayoutManager {
	return &LayoutManager{cfg: cfg, areas: ComputeAreas(cfg, width, height)}
}

// HandleResize replaces the partition with one computed for the new size.
func (m *LayoutManager) HandleResize(width, height int) {
	m.areas = ComputeAreas(m.cfg, width, height)
}

// Areas returns the current partition.
func (m *LayoutManager) Areas() Areas { return m.areas }

// WindowSize returns the clamped window size the partition was computed for.
func (m *LayoutManager) WindowSize() (width, height int) {
	return m.areas.Window.W, m.areas.Window.H
}

// CommandArea returns the command column rectangle.
func (m *LayoutManager) CommandArea() render.Rect { return m.areas.Command }

// SeparatorRect returns the separator rectangle.
func (m *LayoutManager) SeparatorRect() render.Rect { return m.areas.Separator }

// SimulationArea returns the simulation viewport rectangle.
func (m *LayoutManager) SimulationArea() render.Rect { return m.areas.Simulation }

// RenderSeparator paints the separator onto the window surface.
func (m *LayoutManager) RenderSeparator(s render.Surface) {
	if m.areas.Separator.Empty() {
		return
	}
	s.FillRect(m.areas.Separator, m.cfg.SeparatorColor)
}
