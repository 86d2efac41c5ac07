// Package term hosts a session on a character terminal. Layout pixels are
// scaled down to cells; the overlay layer is composited over the static
// layer every frame.
package term

import (
	"image/color"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/ingyamilmolinar/playhead/core/beat"
	"github.com/ingyamilmolinar/playhead/core/engine"
	"github.com/ingyamilmolinar/playhead/core/notation"
	"github.com/ingyamilmolinar/playhead/core/overlay"
	"github.com/ingyamilmolinar/playhead/internal/config"
	game_log "github.com/ingyamilmolinar/playhead/internal/log"
	"golang.org/x/image/colornames"
)

var termPalette = notation.Palette{
	Background: color.RGBA{16, 16, 24, 255},
	Lines:      colornames.Gray,
	Ink:        colornames.White,
}

var termStyle = overlay.Style{
	Highlight:     color.NRGBA{R: 255, A: 96},
	Playhead:      colornames.Yellow,
	PlayheadWidth: 1,
	Dot:           colornames.Deepskyblue,
}

// Host owns the screen, the two cell layers and the engine driving them.
type Host struct {
	screen  tcell.Screen
	engine  *engine.Engine
	sched   beat.Scheduler
	static  *cellSurface
	overlay *cellSurface
	logger  *game_log.Logger

	closeOnce sync.Once
}

// New initialises screen and lays out the score. Frames are driven by a
// ticker at cfg.Loop.TickInterval.
func New(logger *game_log.Logger, cfg config.Config, screen tcell.Screen) (*Host, error) {
	return newHost(logger, cfg, screen, beat.NewTickerScheduler(cfg.Loop.TickInterval))
}

func newHost(logger *game_log.Logger, cfg config.Config, screen tcell.Screen, sched beat.Scheduler) (*Host, error) {
	h := &Host{
		screen:  screen,
		sched:   sched,
		static:  newCellSurface(cfg.Surface.Width, cfg.Surface.Height),
		overlay: newCellSurface(cfg.Surface.Width, cfg.Surface.Height),
		logger:  logger,
	}
	pal, style := termPalette, termStyle
	e, err := engine.New(logger, engine.Options{
		Config:    cfg,
		Static:    h.static,
		Overlay:   h.overlay,
		Scheduler: sched,
		Palette:   &pal,
		Style:     &style,
	})
	if err != nil {
		h.closeScheduler()
		return nil, err
	}
	if err := screen.Init(); err != nil {
		h.closeScheduler()
		return nil, err
	}
	screen.HideCursor()
	h.engine = e
	e.OnFrame = h.present
	h.present(overlay.Plan{})
	logger.Infof("[TERM] Screen ready: %dx%d cells", h.static.cols, h.static.rows)
	return h, nil
}

func (h *Host) Engine() *engine.Engine { return h.engine }

// present shows the current layers. It runs on the tick goroutine.
func (h *Host) present(overlay.Plan) {
	compose(h.screen, h.static, h.overlay)
	h.screen.Show()
}

// Serve starts the loop and handles input until a quit key or until the
// screen is finalised.
func (h *Host) Serve() error {
	h.engine.Start()
	for {
		switch ev := h.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventKey:
			if quitKey(ev) {
				h.logger.Debugf("[TERM] Quit key")
				return nil
			}
		case *tcell.EventResize:
			h.screen.Sync()
		}
	}
}

func quitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

// Close stops the loop before the screen goes away; later calls do nothing.
func (h *Host) Close() {
	h.closeOnce.Do(func() {
		h.engine.Stop()
		h.closeScheduler()
		h.screen.Fini()
	})
}

func (h *Host) closeScheduler() {
	if c, ok := h.sched.(interface{ Close() }); ok {
		c.Close()
	}
}

// Run opens the terminal and blocks until the user quits.
func Run(logger *game_log.Logger, cfg config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	h, err := New(logger, cfg, screen)
	if err != nil {
		return err
	}
	defer h.Close()
	return h.Serve()
}
