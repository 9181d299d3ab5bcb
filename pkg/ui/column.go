package ui

import (
	"image/color"

	"github.com/matzehuels/hexlife/pkg/render"
)

// ColumnConfig configures the command column.
type ColumnConfig struct {
	Background   color.RGBA
	TextColor    color.RGBA
	Title        string
	FontSize     float64
	TitlePadding int
}

// CommandColumn draws the side panel reserved for interactive controls.
// Currently it shows only the title.
type CommandColumn struct {
	cfg  ColumnConfig
	rect render.Rect
}

// NewCommandColumn creates a command column occupying rect.
func NewCommandColumn(cfg ColumnConfig, rect render.Rect) *CommandColumn {
	return &CommandColumn{cfg: cfg, rect: rect}
}

// Rect returns the column rectangle.
func (c *CommandColumn) Rect() render.Rect { return c.rect }

// HandleResize replaces the column rectangle.
func (c *CommandColumn) HandleResize(rect render.Rect) {
	c.rect = rect
}

// Render fills the column background and draws the title, horizontally
// centered and TitlePadding pixels below the top edge.
func (c *CommandColumn) Render(s render.Surface) {
	s.FillRect(c.rect, c.cfg.Background)
	if c.cfg.Title == "" {
		return
	}
	tw, _ := s.MeasureText(c.cfg.Title, c.cfg.FontSize)
	x := float64(c.rect.X) + (float64(c.rect.W)-tw)/2
	y := float64(c.rect.Y + c.cfg.TitlePadding)
	s.DrawText(c.cfg.Title, x, y, c.cfg.FontSize, c.cfg.TextColor)
}
