package ui

import (
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ingyamilmolinar/playhead/core/beat"
	"github.com/ingyamilmolinar/playhead/core/engine"
	"github.com/ingyamilmolinar/playhead/core/surface"
	"github.com/ingyamilmolinar/playhead/internal/config"
	game_log "github.com/ingyamilmolinar/playhead/internal/log"
)

/* ───────────────────────── data types ───────────────────────── */

// Game hosts one session in an ebiten window. The score lives on a static
// image drawn once; the overlay image above it is repainted every frame.
type Game struct {
	engine *engine.Engine
	frames *beat.FrameQueue
	logger *game_log.Logger

	static  *ebiten.Image
	overlay *ebiten.Image
	w, h    int

	now       func() time.Time
	closeOnce sync.Once
}

// New builds the window surfaces and lays out the score.
func New(logger *game_log.Logger, cfg config.Config) (*Game, error) {
	w, h := cfg.Surface.Width, cfg.Surface.Height
	if w <= 0 || h <= 0 {
		return nil, cfg.Validate()
	}
	static := ebiten.NewImage(w, h)
	over := ebiten.NewImage(w, h)
	g, err := newGame(logger, cfg, &imageSurface{static}, &imageSurface{over})
	if err != nil {
		return nil, err
	}
	g.static, g.overlay = static, over
	return g, nil
}

// newGame wires the engine to arbitrary surfaces; the window images are
// attached by New.
func newGame(logger *game_log.Logger, cfg config.Config, static, over surface.Surface) (*Game, error) {
	g := &Game{
		frames: beat.NewFrameQueue(),
		logger: logger,
		w:      cfg.Surface.Width,
		h:      cfg.Surface.Height,
		now:    time.Now,
	}
	pal, style := windowPalette, windowStyle
	e, err := engine.New(logger, engine.Options{
		Config:    cfg,
		Static:    static,
		Overlay:   over,
		Scheduler: g.frames,
		Palette:   &pal,
		Style:     &style,
	})
	if err != nil {
		return nil, err
	}
	g.engine = e
	return g, nil
}

func (g *Game) Engine() *engine.Engine { return g.engine }

// Start begins the loop. Frames are served from Update.
func (g *Game) Start() {
	g.logger.Debugf("[UI] Start")
	g.engine.Start()
}

// Close stops the loop once; later calls do nothing.
func (g *Game) Close() {
	g.closeOnce.Do(func() {
		g.logger.Debugf("[UI] Close")
		g.engine.Stop()
	})
}

/* ───────────────────────── ebiten.Game ───────────────────────── */

func (g *Game) Update() error {
	if quitRequested() {
		g.Close()
		return ebiten.Termination
	}
	g.frames.Dispatch(g.now())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.static != nil {
		screen.DrawImage(g.static, nil)
	}
	if g.overlay != nil {
		screen.DrawImage(g.overlay, nil)
	}
}

// Layout keeps the logical screen at the configured size regardless of
// window scaling.
func (g *Game) Layout(int, int) (int, int) { return g.w, g.h }

// Run opens the window and blocks until it is closed.
func Run(logger *game_log.Logger, cfg config.Config) error {
	g, err := New(logger, cfg)
	if err != nil {
		return err
	}
	defer g.Close()
	ebiten.SetWindowSize(cfg.Surface.Width*2, cfg.Surface.Height*2)
	ebiten.SetWindowTitle(cfg.Title)
	g.Start()
	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		logger.Errorf("[UI] RunGame: %v", err)
		return err
	}
	return nil
}
