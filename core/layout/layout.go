// Package layout runs the one-time static layout pass and freezes its
// geometry into a model.Snapshot.
package layout

import (
	"fmt"

	"github.com/ingyamilmolinar/playhead/core/model"
	"github.com/ingyamilmolinar/playhead/core/notation"
	"github.com/ingyamilmolinar/playhead/core/surface"
	game_log "github.com/ingyamilmolinar/playhead/internal/log"
)

// Engraving is what a layout engine hands back: drawable glyphs that can be
// queried for geometry.
type Engraving interface {
	Len() int
	BoundingBox(i int) notation.Box
	AnchorY(i int) float64
	Stave() notation.Stave
	Draw(dst surface.Surface, pal notation.Palette)
}

// Engine lays out one measure.
type Engine interface {
	Engrave(req notation.Request) (Engraving, error)
}

// Notation adapts the notation package to Engine.
type Notation struct{}

func (Notation) Engrave(req notation.Request) (Engraving, error) {
	s, err := notation.Engrave(req)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Build calls eng exactly once, draws the result onto static, and returns the
// frozen geometry. When the engine fails nothing is drawn.
func Build(logger *game_log.Logger, eng Engine, req notation.Request, static surface.Surface, pal notation.Palette) (*model.Snapshot, error) {
	logger.Debugf("[LAYOUT] Engraving %d notes, clef=%s time=%s width=%.0f", len(req.Notes), req.Clef, req.TimeSignature, req.Width)
	e, err := eng.Engrave(req)
	if err != nil {
		logger.Errorf("[LAYOUT] Engrave failed: %v", err)
		return nil, fmt.Errorf("layout: %w", err)
	}
	if e.Len() != len(req.Notes) {
		return nil, fmt.Errorf("layout: engine returned %d glyphs for %d notes", e.Len(), len(req.Notes))
	}

	notes := make([]model.Note, e.Len())
	for i := range notes {
		b := e.BoundingBox(i)
		notes[i] = model.Note{
			Index:       i,
			Pitch:       req.Notes[i].Pitch,
			Duration:    req.Notes[i].Duration,
			BoundingBox: model.Rect{X: b.X, Y: b.Y, W: b.W, H: b.H},
			AnchorY:     e.AnchorY(i),
		}
		logger.Debugf("[LAYOUT] Note %d %s: box=%+v anchorY=%.1f", i, notes[i].Pitch, notes[i].BoundingBox, notes[i].AnchorY)
	}
	st := e.Stave()
	snap := model.NewSnapshot(notes, model.StaffMetrics{
		OriginX: req.X,
		OriginY: st.Y,
		Width:   req.Width,
		Height:  st.Height,
	})

	static.Fill(pal.Background)
	e.Draw(static, pal)
	logger.Infof("[LAYOUT] Static score drawn: %d notes, staff y=%.0f..%.0f", snap.Len(), st.Y, st.Y+st.Height)
	return snap, nil
}
