// Package tui drives the frame loop in the terminal.
//
// The terminal is a window whose pixels are character cells: each cell
// stands for a fixed block of pixels, so the same layout and grid geometry
// run unchanged and the terminal size drives resize events.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/hexlife/internal/app"
	"github.com/matzehuels/hexlife/pkg/config"
	errs "github.com/matzehuels/hexlife/pkg/errors"
	"github.com/matzehuels/hexlife/pkg/render/sink"
)

// Terminal size assumed until the first WindowSizeMsg arrives.
const (
	defaultCols = 80
	defaultRows = 24
)

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

// Options configures the terminal preview.
type Options struct {
	// CellWidth and CellHeight are the pixels one terminal cell stands for.
	CellWidth  int
	CellHeight int
}

// DefaultOptions returns the default cell size.
func DefaultOptions() Options {
	return Options{CellWidth: sink.DefaultCellWidth, CellHeight: sink.DefaultCellHeight}
}

type tickMsg time.Time

// Model is the bubbletea model wrapping an [app.App].
type Model struct {
	app   *app.App
	cells *sink.Cells
	opts  Options
	fps   int
	last  time.Time
}

// NewModel builds the app on a default-sized cell surface.
func NewModel(cfg config.Config, logger *log.Logger, opts Options) (Model, error) {
	if opts.CellWidth <= 0 || opts.CellHeight <= 0 {
		return Model{}, errs.New(errs.ErrCodeInvalidConfig, "cell size must be positive, got %dx%d", opts.CellWidth, opts.CellHeight)
	}
	cells := sink.NewCells(defaultCols, defaultRows-1, opts.CellWidth, opts.CellHeight)
	a, err := app.New(cfg, logger, cells)
	if err != nil {
		return Model{}, err
	}
	return Model{app: a, cells: cells, opts: opts, fps: cfg.Window.FPS, last: time.Now()}, nil
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.app.HandleEvents([]app.Event{app.QuitEvent{}})
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		// The last row holds the status line.
		m.cells = sink.NewCells(msg.Width, msg.Height-1, m.opts.CellWidth, m.opts.CellHeight)
		m.app.HandleEvents([]app.Event{app.ResizeEvent{Window: m.cells}})
	case tickMsg:
		now := time.Time(msg)
		m.app.Update(now.Sub(m.last))
		m.last = now
		m.app.RenderFrame()
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.cells.String())
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status()))
	return b.String()
}

func (m Model) status() string {
	w, h := m.app.Layout().WindowSize()
	mode := "subregion"
	if m.app.Fallback() {
		mode = "fallback"
	}
	return fmt.Sprintf("%dx%d px  frame %d  %s  q quit", w, h, m.app.Frames(), mode)
}

// App returns the wrapped application state.
func (m Model) App() *app.App { return m.app }

// Run starts the preview in the alternate screen and blocks until the user
// quits or ctx is cancelled.
func Run(ctx context.Context, cfg config.Config, logger *log.Logger, opts Options) error {
	m, err := NewModel(cfg, logger, opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return errs.Wrap(errs.ErrCodeInternal, err, "run preview")
	}
	return nil
}
