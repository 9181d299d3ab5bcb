package config

import (
	errs "github.com/matzehuels/hexlife/pkg/errors"
	"github.com/matzehuels/hexlife/pkg/hex"
	"github.com/matzehuels/hexlife/pkg/render/display"
	"github.com/matzehuels/hexlife/pkg/ui"
)

// Config is the complete application configuration.
type Config struct {
	Window     WindowConfig     `toml:"window" yaml:"window" json:"window"`
	Grid       GridConfig       `toml:"grid" yaml:"grid" json:"grid"`
	Layout     LayoutConfig     `toml:"layout" yaml:"layout" json:"layout"`
	Text       TextConfig       `toml:"text" yaml:"text" json:"text"`
	Colors     ColorConfig      `toml:"colors" yaml:"colors" json:"colors"`
	Simulation SimulationConfig `toml:"simulation" yaml:"simulation" json:"simulation"`
}

// WindowConfig configures the application window and frame pacing.
type WindowConfig struct {
	Width     int    `toml:"width" yaml:"width" json:"width"`
	Height    int    `toml:"height" yaml:"height" json:"height"`
	Title     string `toml:"title" yaml:"title" json:"title"`
	FPS       int    `toml:"fps" yaml:"fps" json:"fps"`
	MinWidth  int    `toml:"min_width" yaml:"min_width" json:"min_width"`
	MinHeight int    `toml:"min_height" yaml:"min_height" json:"min_height"`
}

// GridConfig configures the hex grid and its drawing.
type GridConfig struct {
	Width     int     `toml:"width" yaml:"width" json:"width"`
	Height    int     `toml:"height" yaml:"height" json:"height"`
	HexSize   float64 `toml:"hex_size" yaml:"hex_size" json:"hex_size"`
	LineWidth float64 `toml:"line_width" yaml:"line_width" json:"line_width"`
	Padding   float64 `toml:"padding" yaml:"padding" json:"padding"`
}

// LayoutConfig configures the window partition.
type LayoutConfig struct {
	CommandColumnRatio float64 `toml:"command_column_ratio" yaml:"command_column_ratio" json:"command_column_ratio"`
	SeparatorWidth     int     `toml:"separator_width" yaml:"separator_width" json:"separator_width"`
}

// TextConfig configures the command column title.
type TextConfig struct {
	Title        string  `toml:"title" yaml:"title" json:"title"`
	FontSize     float64 `toml:"font_size" yaml:"font_size" json:"font_size"`
	TitlePadding int     `toml:"title_padding" yaml:"title_padding" json:"title_padding"`
}

// ColorConfig holds the frame colors.
type ColorConfig struct {
	Background       Color `toml:"background" yaml:"background" json:"background"`
	GridLines        Color `toml:"grid_lines" yaml:"grid_lines" json:"grid_lines"`
	ColumnBackground Color `toml:"column_background" yaml:"column_background" json:"column_background"`
	ColumnText       Color `toml:"column_text" yaml:"column_text" json:"column_text"`
	Separator        Color `toml:"separator" yaml:"separator" json:"separator"`
}

// SimulationConfig configures how fast simulated time advances.
type SimulationConfig struct {
	// Speed multiplies wall-clock time per frame.
	Speed float64 `toml:"speed" yaml:"speed" json:"speed"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:     1024,
			Height:    768,
			Title:     "HexLife: Hexagonal Life Simulation",
			FPS:       60,
			MinWidth:  100,
			MinHeight: 100,
		},
		Grid: GridConfig{
			Width:     5,
			Height:    10,
			HexSize:   30,
			LineWidth: 1,
			Padding:   20,
		},
		Layout: LayoutConfig{
			CommandColumnRatio: 0.2,
			SeparatorWidth:     2,
		},
		Text: TextConfig{
			Title:        "HexLife",
			FontSize:     24,
			TitlePadding: 20,
		},
		Colors: ColorConfig{
			Background:       RGB(0, 0, 0),
			GridLines:        RGB(100, 100, 100),
			ColumnBackground: RGB(40, 44, 52),
			ColumnText:       RGB(255, 255, 255),
			Separator:        RGB(70, 70, 70),
		},
		Simulation: SimulationConfig{Speed: 1.0},
	}
}

// Validate reports the first value no component can work with.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.MinWidth <= 0 || c.Window.MinHeight <= 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "minimum window size must be positive, got %dx%d", c.Window.MinWidth, c.Window.MinHeight)
	}
	if c.Window.FPS <= 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "fps must be positive, got %d", c.Window.FPS)
	}
	if _, err := c.Dimensions(); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidConfig, err, "grid")
	}
	if err := c.DisplayConfig().Validate(); err != nil {
		return err
	}
	if err := errs.ValidateRatio("command column ratio", c.Layout.CommandColumnRatio); err != nil {
		return err
	}
	if err := errs.ValidateNonNegative("separator width", float64(c.Layout.SeparatorWidth)); err != nil {
		return err
	}
	if err := errs.ValidatePositive("font size", c.Text.FontSize); err != nil {
		return err
	}
	if err := errs.ValidateNonNegative("title padding", float64(c.Text.TitlePadding)); err != nil {
		return err
	}
	if err := errs.ValidateNonNegative("padding", c.Grid.Padding); err != nil {
		return err
	}
	return errs.ValidateNonNegative("simulation speed", c.Simulation.Speed)
}

// Dimensions returns the configured grid dimensions.
func (c Config) Dimensions() (hex.Dimensions, error) {
	return hex.NewDimensions(c.Grid.Width, c.Grid.Height)
}

// DisplayConfig returns the grid display configuration.
func (c Config) DisplayConfig() display.Config {
	return display.Config{
		HexSize:    c.Grid.HexSize,
		Background: c.Colors.Background.RGBA(),
		LineColor:  c.Colors.GridLines.RGBA(),
		LineWidth:  c.Grid.LineWidth,
		Padding:    c.Grid.Padding,
	}
}

// LayoutConfig returns the window partition configuration.
func (c Config) LayoutConfig() ui.LayoutConfig {
	return ui.LayoutConfig{
		CommandColumnRatio: c.Layout.CommandColumnRatio,
		SeparatorWidth:     c.Layout.SeparatorWidth,
		SeparatorColor:     c.Colors.Separator.RGBA(),
	}
}

// ColumnConfig returns the command column configuration.
func (c Config) ColumnConfig() ui.ColumnConfig {
	return ui.ColumnConfig{
		Background:   c.Colors.ColumnBackground.RGBA(),
		TextColor:    c.Colors.ColumnText.RGBA(),
		Title:        c.Text.Title,
		FontSize:     c.Text.FontSize,
		TitlePadding: c.Text.TitlePadding,
	}
}

// ClampWindow raises a window size to the configured minimum.
func (c Config) ClampWindow(width, height int) (int, int) {
	return max(width, c.Window.MinWidth), max(height, c.Window.MinHeight)
}
