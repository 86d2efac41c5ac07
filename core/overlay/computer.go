// Package overlay maps loop time onto the frozen layout geometry and paints
// the result: a playhead, an early-warning band before the designated note,
// and a dot riding the current note.
package overlay

import (
	"errors"
	"fmt"
	"math"

	"github.com/ingyamilmolinar/playhead/core/model"
)

var (
	ErrMissingNote = errors.New("overlay: designated note outside laid-out sequence")
	ErrBadConfig   = errors.New("overlay: invalid config")
)

// Config holds the timing constants. NoteCount zero means "every note in the
// snapshot"; a non-zero value must match the snapshot.
type Config struct {
	LoopMs         float64
	EarlyLeadMs    float64
	DesignatedNote int
	NoteCount      int
	BandThickness  float64
}

func DefaultConfig() Config {
	return Config{
		LoopMs:         4000,
		EarlyLeadMs:    250,
		DesignatedNote: 1,
		BandThickness:  6,
	}
}

// Point is a position in layout pixels.
type Point struct{ X, Y float64 }

// Plan is everything painted for one frame.
type Plan struct {
	ElapsedMs float64
	PlayheadX float64
	Highlight *model.Rect // nil before onset
	Dot       Point
	Current   int // note whose beat window holds ElapsedMs
}

func (p Plan) HighlightActive() bool { return p.Highlight != nil }

// Computer is the pure time-to-geometry mapping over one snapshot.
type Computer struct {
	cfg    Config
	snap   *model.Snapshot
	staff  model.StaffMetrics
	target model.Note
	n      int
	beatMs float64
	onset  float64 // designated note onset minus lead
	leadPx float64
}

// NewComputer validates cfg against snap. A designated note that the layout
// never produced is reported here rather than skipped at draw time.
func NewComputer(cfg Config, snap *model.Snapshot) (*Computer, error) {
	if cfg.LoopMs <= 0 {
		return nil, fmt.Errorf("%w: loop %.0fms", ErrBadConfig, cfg.LoopMs)
	}
	if cfg.EarlyLeadMs < 0 {
		return nil, fmt.Errorf("%w: early lead %.0fms", ErrBadConfig, cfg.EarlyLeadMs)
	}
	if cfg.BandThickness < 0 {
		return nil, fmt.Errorf("%w: negative band thickness", ErrBadConfig)
	}
	n := snap.Len()
	if n == 0 {
		return nil, fmt.Errorf("%w: empty snapshot", ErrMissingNote)
	}
	if cfg.NoteCount != 0 && cfg.NoteCount != n {
		return nil, fmt.Errorf("%w: note count %d, layout has %d", ErrBadConfig, cfg.NoteCount, n)
	}
	target, ok := snap.Note(cfg.DesignatedNote)
	if !ok {
		return nil, fmt.Errorf("%w: index %d, layout has %d notes", ErrMissingNote, cfg.DesignatedNote, n)
	}

	staff := snap.Staff()
	beatMs := cfg.LoopMs / float64(n)
	return &Computer{
		cfg:    cfg,
		snap:   snap,
		staff:  staff,
		target: target,
		n:      n,
		beatMs: beatMs,
		onset:  float64(cfg.DesignatedNote)*beatMs - cfg.EarlyLeadMs,
		leadPx: cfg.EarlyLeadMs / cfg.LoopMs * staff.Width,
	}, nil
}

func (c *Computer) Config() Config            { return c.cfg }
func (c *Computer) Snapshot() *model.Snapshot { return c.snap }

// BeatMs is the length of one note's window.
func (c *Computer) BeatMs() float64 { return c.beatMs }

// OnsetMs is when the highlight switches on.
func (c *Computer) OnsetMs() float64 { return c.onset }

// PlayheadX maps elapsed time linearly across the layout width.
func (c *Computer) PlayheadX(elapsedMs float64) float64 {
	return c.staff.OriginX + (elapsedMs/c.cfg.LoopMs)*c.staff.Width
}

// CurrentNote is the note whose beat window holds elapsedMs, clamped to the
// last note when rounding lands on the loop end.
func (c *Computer) CurrentNote(elapsedMs float64) int {
	idx := int(math.Floor(elapsedMs / c.beatMs))
	if idx < 0 {
		return 0
	}
	if idx > c.n-1 {
		return c.n - 1
	}
	return idx
}

// Compute returns the plan for elapsedMs. The result depends only on its
// argument and the snapshot.
func (c *Computer) Compute(elapsedMs float64) Plan {
	if elapsedMs < 0 || math.IsNaN(elapsedMs) {
		elapsedMs = 0
	}
	x := c.PlayheadX(elapsedMs)
	idx := c.CurrentNote(elapsedMs)
	p := Plan{
		ElapsedMs: elapsedMs,
		PlayheadX: x,
		Dot:       Point{X: x, Y: c.snap.MustNote(idx).AnchorY},
		Current:   idx,
	}
	if elapsedMs >= c.onset {
		box := c.target.BoundingBox
		left := box.X - c.leadPx
		right := math.Min(x, box.Right())
		p.Highlight = &model.Rect{
			X: left,
			Y: c.target.AnchorY - c.cfg.BandThickness/2,
			W: math.Max(0, right-left),
			H: c.cfg.BandThickness,
		}
	}
	return p
}
