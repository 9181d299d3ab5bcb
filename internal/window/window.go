// Package window drives the frame loop in a resizable desktop window.
//
// It adapts ebiten's Update/Draw/Layout cycle to [app.App]: Layout detects
// size changes and queues resize events, Update handles events and advances
// state, and Draw renders the frame onto the ebiten screen.
package window

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/matzehuels/hexlife/internal/app"
	"github.com/matzehuels/hexlife/pkg/config"
	errs "github.com/matzehuels/hexlife/pkg/errors"
)

// game implements ebiten.Game.
type game struct {
	ctx    context.Context
	app    *app.App
	screen *screen

	width, height int
	events        []app.Event
	last          time.Time
}

// Run opens the window and blocks until it is closed, Escape or Q is
// pressed, or ctx is cancelled. It must be called from the main goroutine.
func Run(ctx context.Context, cfg config.Config, logger *log.Logger) error {
	scr := &screen{}
	w, h := cfg.ClampWindow(cfg.Window.Width, cfg.Window.Height)
	a, err := app.New(cfg, logger, newSurface(scr, w, h))
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowSizeLimits(cfg.Window.MinWidth, cfg.Window.MinHeight, -1, -1)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(cfg.Window.FPS)

	g := &game{ctx: ctx, app: a, screen: scr, width: w, height: h, last: time.Now()}
	logger.Info("window opened", "size", a.Layout().Areas().Window, "fps", cfg.Window.FPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return errs.Wrap(errs.ErrCodeInternal, err, "run window")
	}
	logger.Info("window closed", "frames", a.Frames())
	return nil
}

func (g *game) Update() error {
	if g.quitRequested() {
		g.events = append(g.events, app.QuitEvent{})
	}
	g.app.HandleEvents(g.events)
	g.events = g.events[:0]
	if !g.app.Running() {
		return ebiten.Termination
	}

	now := time.Now()
	g.app.Update(now.Sub(g.last))
	g.last = now
	return nil
}

func (g *game) quitRequested() bool {
	return g.ctx.Err() != nil ||
		ebiten.IsWindowBeingClosed() ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyQ)
}

func (g *game) Draw(screen *ebiten.Image) {
	g.screen.img = screen
	g.app.RenderFrame()
}

// Layout keeps one screen pixel per window pixel and queues a resize event
// whenever the window size changes.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	outsideWidth, outsideHeight = max(1, outsideWidth), max(1, outsideHeight)
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.events = append(g.events, app.ResizeEvent{Window: newSurface(g.screen, outsideWidth, outsideHeight)})
	}
	return outsideWidth, outsideHeight
}
