package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/hexlife/pkg/render"
)

// logFrameHooks logs frame loop events at debug level. Per-frame events are
// sampled so a 60 fps loop does not flood the log.
type logFrameHooks struct {
	logger *log.Logger
	every  uint64
}

func newLogFrameHooks(l *log.Logger) *logFrameHooks {
	return &logFrameHooks{logger: l, every: 300}
}

func (h *logFrameHooks) OnResize(width, height int) {
	h.logger.Debug("resize", "width", width, "height", height)
}

func (h *logFrameHooks) OnSurfaceFallback(rect render.Rect, err error) {
	h.logger.Debug("surface fallback", "rect", rect, "err", err)
}

func (h *logFrameHooks) OnFrameRendered(frame uint64, d time.Duration) {
	if frame%h.every == 0 {
		h.logger.Debug("frame", "n", frame, "render", d)
	}
}

// logRenderHooks logs headless render events at debug level.
type logRenderHooks struct {
	logger *log.Logger
}

func newLogRenderHooks(l *log.Logger) *logRenderHooks {
	return &logRenderHooks{logger: l}
}

func (h *logRenderHooks) OnRenderStart(_ context.Context, formats []string) {
	h.logger.Debug("render start", "formats", formats)
}

func (h *logRenderHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "formats", formats, "took", d, "err", err)
		return
	}
	h.logger.Debug("render complete", "formats", formats, "took", d)
}
