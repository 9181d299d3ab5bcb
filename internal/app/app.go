// Package app implements the HexLife frame loop state.
//
// An [App] owns the grid, the layout, the command column and the grid display
// for one window surface. Drivers (the ebiten window, the terminal preview)
// call [App.Frame] once per tick with the events they collected: events are
// handled first, then state advances, then the frame is drawn.
package app

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/hexlife/pkg/config"
	errs "github.com/matzehuels/hexlife/pkg/errors"
	"github.com/matzehuels/hexlife/pkg/hex"
	"github.com/matzehuels/hexlife/pkg/observability"
	"github.com/matzehuels/hexlife/pkg/render"
	"github.com/matzehuels/hexlife/pkg/render/display"
	"github.com/matzehuels/hexlife/pkg/ui"
)

// Event is an input event delivered by a driver.
type Event interface{ isEvent() }

// QuitEvent asks the loop to stop.
type QuitEvent struct{}

// ResizeEvent delivers the window surface after a size change.
type ResizeEvent struct {
	Window render.Surface
}

func (QuitEvent) isEvent()   {}
func (ResizeEvent) isEvent() {}

// App is the frame loop state. It is owned by a single driver goroutine.
type App struct {
	cfg    config.Config
	logger *log.Logger

	window  render.Surface
	grid    *hex.Grid
	layout  *ui.LayoutManager
	column  *ui.CommandColumn
	display *display.GridDisplay

	fallback bool
	running  bool
	frame    uint64
	simTime  time.Duration
}

// New builds the application state for window. The configuration must
// validate.
func New(cfg config.Config, logger *log.Logger, window render.Surface) (*App, error) {
	if window == nil {
		return nil, errs.New(errs.ErrCodeInvalidInput, "app requires a window surface")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}
	dims, err := cfg.Dimensions()
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:     cfg,
		logger:  logger,
		window:  window,
		grid:    hex.NewGrid(dims),
		running: true,
	}
	w, h := cfg.ClampWindow(window.Size())
	a.layout = ui.NewLayoutManager(cfg.LayoutConfig(), w, h)
	a.column = ui.NewCommandColumn(cfg.ColumnConfig(), a.layout.CommandArea())

	a.display, err = display.New(a.grid, cfg.DisplayConfig(), a.simulationSurface())
	if err != nil {
		return nil, err
	}
	logger.Debug("app initialized", "grid", dims, "window", a.layout.Areas().Window, "simulation", a.layout.SimulationArea())
	return a, nil
}

// Frame runs one iteration: events, update, render.
func (a *App) Frame(events []Event, dt time.Duration) {
	a.HandleEvents(events)
	if !a.running {
		return
	}
	a.Update(dt)
	a.RenderFrame()
}

// RenderFrame draws one frame and counts it. Drivers that split update and
// draw phases call it from their draw phase.
func (a *App) RenderFrame() {
	start := time.Now()
	a.Render()
	a.frame++
	observability.Frame().OnFrameRendered(a.frame, time.Since(start))
}

// HandleEvents applies events in order.
func (a *App) HandleEvents(events []Event) {
	for _, ev := range events {
		switch ev := ev.(type) {
		case QuitEvent:
			a.Quit()
		case ResizeEvent:
			a.HandleResize(ev.Window)
		}
	}
}

// HandleResize switches to a new window surface. The size is clamped to the
// configured minimum, the layout is recomputed and the grid display is moved
// to a fresh simulation sub-surface.
func (a *App) HandleResize(window render.Surface) {
	if window == nil {
		return
	}
	w, h := a.cfg.ClampWindow(window.Size())
	a.window = window
	a.layout.HandleResize(w, h)
	a.column.HandleResize(a.layout.CommandArea())
	a.display.HandleResize(a.simulationSurface())

	observability.Frame().OnResize(w, h)
	a.logger.Debug("window resized", "width", w, "height", h, "simulation", a.layout.SimulationArea())
}

// simulationSurface acquires the simulation area of the window, falling back
// to the whole window when the sub-region is unavailable.
func (a *App) simulationSurface() render.Surface {
	rect := a.layout.SimulationArea()
	sim, err := a.window.SubRegion(rect)
	if err != nil {
		a.fallback = true
		a.logger.Warn("simulation area unavailable, drawing on full window", "rect", rect, "err", err)
		observability.Frame().OnSurfaceFallback(rect, err)
		return a.window
	}
	a.fallback = false
	return sim
}

// Update advances simulated time by dt scaled by the configured speed. There
// are no cell rules yet, so nothing else changes.
func (a *App) Update(dt time.Duration) {
	a.simTime += time.Duration(float64(dt) * a.cfg.Simulation.Speed)
}

// Render draws one frame. When the grid display fell back to the full
// window it is drawn first so the command column stays visible on top.
func (a *App) Render() {
	if a.fallback {
		a.display.Render()
		a.renderChrome()
		return
	}
	a.window.Fill(a.cfg.Colors.Background.RGBA())
	a.renderChrome()
	a.display.Render()
}

func (a *App) renderChrome() {
	a.column.Render(a.window)
	a.layout.RenderSeparator(a.window)
}

// Quit stops the loop after the current frame.
func (a *App) Quit() {
	if a.running {
		a.logger.Debug("quit requested", "frames", a.frame)
	}
	a.running = false
}

// Running reports whether the loop should continue.
func (a *App) Running() bool { return a.running }

// Fallback reports whether the grid is drawn on the full window.
func (a *App) Fallback() bool { return a.fallback }

// Frames returns the number of frames rendered.
func (a *App) Frames() uint64 { return a.frame }

// SimTime returns the accumulated simulated time.
func (a *App) SimTime() time.Duration { return a.simTime }

// Window returns the current window surface.
func (a *App) Window() render.Surface { return a.window }

// Layout returns the layout manager.
func (a *App) Layout() *ui.LayoutManager { return a.layout }

// Display returns the grid display.
func (a *App) Display() *display.GridDisplay { return a.display }

// Config returns the configuration the app was built with.
func (a *App) Config() config.Config { return a.cfg }
