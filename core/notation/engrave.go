// Package notation is a small single-measure engraver: it turns pitch and
// duration tokens into glyph geometry on a five-line staff and draws them.
//
// Geometry follows the usual engraving conventions: a 10 px line spacing,
// four spaces of headroom above and below the lines, stems up below the
// middle line and down from it upward.
package notation

import (
	"fmt"
	"math"

	"github.com/ingyamilmolinar/playhead/core/model"
)

const (
	LineSpacing = 10.0
	NumLines    = 5
	SpaceAbove  = 4
	SpaceBelow  = 4

	HeadWidth  = 11.0
	HeadHeight = LineSpacing
	StemLength = 35.0
	FlagWidth  = 8.0

	modifierPad  = 10.0
	clefWidth    = 30.0
	timeSigWidth = 20.0
	endPad       = 10.0

	accidentalGap = 10.0
	dotGap        = 4.0
	dotRadius     = 1.5
)

// Request is everything the engraver needs for one measure.
type Request struct {
	X, Y          float64 // staff origin
	Width         float64 // width the staff and notes are justified into
	Clef          string
	TimeSignature string
	Notes         []model.NoteSpec
}

// Box is a glyph bounding box.
type Box struct {
	X, Y, W, H float64
}

// Stave is the placed staff.
type Stave struct {
	X, Y, Width, Height float64
	TopLineY            float64
	NoteStartX          float64
	NoteEndX            float64
}

// LineY returns the y of staff line n, counting 0 from the top.
func (s Stave) LineY(n int) float64 { return s.TopLineY + float64(n)*LineSpacing }

// BottomLineY returns the y of the lowest staff line.
func (s Stave) BottomLineY() float64 { return s.LineY(NumLines - 1) }

// StepY returns the y of a staff position given in half-spaces above the
// bottom line.
func (s Stave) StepY(step int) float64 { return s.BottomLineY() - float64(step)*LineSpacing/2 }

// Glyph is one engraved note.
type Glyph struct {
	Pitch    Pitch
	Duration Duration
	Step     int
	StemUp   bool
	HeadX    float64
	Box      Box
	Anchor   float64
}

// Score is an engraved measure.
type Score struct {
	Clef          Clef
	TimeSignature TimeSignature
	stave         Stave
	glyphs        []Glyph
}

func (s *Score) Stave() Stave { return s.stave }
func (s *Score) Len() int     { return len(s.glyphs) }

// Glyph returns the i-th note glyph.
func (s *Score) Glyph(i int) Glyph { return s.glyphs[i] }

// BoundingBox returns the box covering notehead, stem and flags of note i.
func (s *Score) BoundingBox(i int) Box { return s.glyphs[i].Box }

// AnchorY returns the vertical centre of note i's notehead.
func (s *Score) AnchorY(i int) float64 { return s.glyphs[i].Anchor }

// Engrave formats req into a single measure. Notes are placed left to right,
// each starting at a horizontal offset proportional to the ticks before it.
func Engrave(req Request) (*Score, error) {
	clef, err := ParseClef(req.Clef)
	if err != nil {
		return nil, err
	}
	ts, err := ParseTimeSignature(req.TimeSignature)
	if err != nil {
		return nil, err
	}
	if len(req.Notes) == 0 {
		return nil, ErrEmptyVoice
	}

	type parsed struct {
		p Pitch
		d Duration
	}
	tokens := make([]parsed, 0, len(req.Notes))
	total := 0
	for i, n := range req.Notes {
		p, err := ParsePitch(n.Pitch)
		if err != nil {
			return nil, fmt.Errorf("note %d: %w", i, err)
		}
		d, err := ParseDuration(n.Duration)
		if err != nil {
			return nil, fmt.Errorf("note %d: %w", i, err)
		}
		tokens = append(tokens, parsed{p, d})
		total += d.Ticks()
	}
	if total != ts.Ticks() {
		return nil, fmt.Errorf("%w: voice has %d ticks, %s needs %d", ErrDurationMismatch, total, ts, ts.Ticks())
	}

	st := Stave{
		X:        req.X,
		Y:        req.Y,
		Width:    req.Width,
		Height:   float64(SpaceAbove+NumLines+SpaceBelow) * LineSpacing,
		TopLineY: req.Y + SpaceAbove*LineSpacing,
	}
	st.NoteStartX = req.X + modifierPad + clefWidth + modifierPad + timeSigWidth + modifierPad
	st.NoteEndX = req.X + req.Width - endPad
	avail := st.NoteEndX - st.NoteStartX
	if avail <= HeadWidth {
		return nil, fmt.Errorf("%w: width %.0f", ErrNoRoom, req.Width)
	}

	glyphs := make([]Glyph, 0, len(tokens))
	before := 0
	for _, t := range tokens {
		step := clef.Step(t.p)
		g := Glyph{
			Pitch:    t.p,
			Duration: t.d,
			Step:     step,
			StemUp:   step < 4,
			HeadX:    st.NoteStartX + float64(before)/float64(total)*avail,
			Anchor:   st.StepY(step),
		}
		g.Box = glyphBox(g)
		glyphs = append(glyphs, g)
		before += t.d.Ticks()
	}

	return &Score{Clef: clef, TimeSignature: ts, stave: st, glyphs: glyphs}, nil
}

// glyphBox covers everything drawGlyph inks for g except ledger lines: head,
// stem, flags, accidental and augmentation dot.
func glyphBox(g Glyph) Box {
	half := HeadHeight / 2
	b := Box{X: g.HeadX, Y: g.Anchor - half, W: HeadWidth, H: HeadHeight}
	if g.Duration.Stemmed() {
		if g.StemUp {
			b.Y = g.Anchor - StemLength
			b.H = StemLength + half
			if g.Duration.Flags() > 0 {
				b.W += FlagWidth
			}
		} else {
			b.H = half + StemLength
		}
	}
	if g.Pitch.Accidental != "" {
		b = b.union(Box{X: g.HeadX - accidentalGap, Y: g.Anchor - half, W: accidentalGap, H: HeadHeight})
	}
	if g.Duration.Dotted {
		cx, cy := dotCentre(g)
		b = b.union(Box{X: cx - dotRadius, Y: cy - dotRadius, W: 2 * dotRadius, H: 2 * dotRadius})
	}
	return b
}

// dotCentre places the augmentation dot right of the head; line notes put it
// in the space above.
func dotCentre(g Glyph) (float64, float64) {
	dy := 0.0
	if g.Step%2 == 0 {
		dy = -LineSpacing / 2
	}
	return g.HeadX + HeadWidth + dotGap, g.Anchor + dy
}

func (b Box) Right() float64 { return b.X + b.W }

func (b Box) union(o Box) Box {
	x0, y0 := math.Min(b.X, o.X), math.Min(b.Y, o.Y)
	x1, y1 := math.Max(b.Right(), o.Right()), math.Max(b.Y+b.H, o.Y+o.H)
	return Box{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}
