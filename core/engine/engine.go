package engine

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/ingyamilmolinar/playhead/core/beat"
	"github.com/ingyamilmolinar/playhead/core/layout"
	"github.com/ingyamilmolinar/playhead/core/model"
	"github.com/ingyamilmolinar/playhead/core/notation"
	"github.com/ingyamilmolinar/playhead/core/overlay"
	"github.com/ingyamilmolinar/playhead/core/surface"
	"github.com/ingyamilmolinar/playhead/internal/config"
	game_log "github.com/ingyamilmolinar/playhead/internal/log"
)

// Options are the collaborators a host hands to New.
type Options struct {
	Config    config.Config
	Engine    layout.Engine // nil means the built-in engraver
	Static    surface.Surface
	Overlay   surface.Surface
	Scheduler beat.Scheduler
	Palette   *notation.Palette
	Style     *overlay.Style
}

// Stats combines loop and paint counters.
type Stats struct {
	beat.Stats
	Frames uint64
}

// Engine runs one session: a static layout done once, then one
// compute-and-paint per host frame.
type Engine struct {
	snap     *model.Snapshot
	computer *overlay.Computer
	painter  *overlay.Painter
	loop     *beat.Loop
	logger   *game_log.Logger
	frames   atomic.Uint64

	// OnFrame runs after each paint on the tick goroutine. It may call
	// Stop, Stats and Running.
	OnFrame func(plan overlay.Plan)
}

// New lays out the score and wires the tick. Layout and configuration errors
// are returned as-is; nothing is drawn on the overlay until Start.
func New(logger *game_log.Logger, opts Options) (*Engine, error) {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	eng := opts.Engine
	if eng == nil {
		eng = layout.Notation{}
	}
	pal := notation.DefaultPalette
	if opts.Palette != nil {
		pal = *opts.Palette
	}
	style := overlay.DefaultStyle()
	if opts.Style != nil {
		style = *opts.Style
	}
	style.DotRadius = cfg.Overlay.DotRadius

	snap, err := layout.Build(logger, eng, cfg.LayoutRequest(), opts.Static, pal)
	if err != nil {
		return nil, err
	}
	if cfg.Title != "" {
		opts.Static.Text(cfg.Title, cfg.Staff.OriginX, 8, pal.Ink)
	}

	comp, err := overlay.NewComputer(cfg.OverlayConfig(), snap)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	e := &Engine{
		snap:     snap,
		computer: comp,
		painter:  overlay.NewPainter(opts.Overlay, snap.Staff(), style),
		loop:     beat.NewLoop(opts.Scheduler, cfg.Loop.Duration, logger),
		logger:   logger,
	}
	e.loop.Subscribe(e.tick)
	logger.Infof("[ENGINE] Ready: %d notes, target=%d onset=%.0fms beat=%.0fms",
		snap.Len(), cfg.Overlay.DesignatedNote, comp.OnsetMs(), comp.BeatMs())
	return e, nil
}

func (e *Engine) tick(elapsed time.Duration) {
	plan := e.computer.Compute(beat.Millis(elapsed))
	e.painter.Paint(plan)
	e.frames.Add(1)
	if e.OnFrame != nil {
		e.OnFrame(plan)
	}
}

// Start begins the loop.
func (e *Engine) Start() { e.loop.Start() }

// Stop ends the loop. No frame is painted after it returns.
func (e *Engine) Stop() {
	e.loop.Stop()
	st := e.Stats()
	e.logger.Infof("[ENGINE] Stopped: frames=%d cycles=%d", st.Frames, st.Cycles)
}

// Running reports whether frames are still being scheduled.
func (e *Engine) Running() bool { return e.loop.Running() }

func (e *Engine) Snapshot() *model.Snapshot   { return e.snap }
func (e *Engine) Computer() *overlay.Computer { return e.computer }

func (e *Engine) Stats() Stats {
	return Stats{Stats: e.loop.Stats(), Frames: e.frames.Load()}
}
