package notation

import (
	"image/color"
	"strconv"

	"github.com/ingyamilmolinar/playhead/core/surface"
	"golang.org/x/image/colornames"
)

// Palette colours the static score.
type Palette struct {
	Background color.Color
	Lines      color.Color
	Ink        color.Color
}

var DefaultPalette = Palette{
	Background: color.RGBA{20, 20, 30, 255},
	Lines:      colornames.Gray,
	Ink:        colornames.White,
}

// Draw renders staff, clef, time signature and notes onto dst.
func (s *Score) Draw(dst surface.Surface, pal Palette) {
	st := s.stave
	for i := 0; i < NumLines; i++ {
		y := st.LineY(i)
		dst.StrokeLine(st.X, y, st.X+st.Width, y, 1, pal.Lines)
	}
	dst.StrokeLine(st.X, st.LineY(0), st.X, st.BottomLineY(), 1, pal.Lines)
	dst.StrokeLine(st.X+st.Width, st.LineY(0), st.X+st.Width, st.BottomLineY(), 1, pal.Lines)

	s.drawClef(dst, pal)
	s.drawTimeSignature(dst, pal)
	for _, g := range s.glyphs {
		drawGlyph(dst, st, g, pal)
	}
}

func (s *Score) drawClef(dst surface.Surface, pal Palette) {
	st := s.stave
	x := st.X + modifierPad
	switch s.Clef.Name {
	case "treble":
		// loop around the G line with a spine through the staff
		gy := st.StepY(2)
		dst.StrokeCircle(x+clefWidth/2, gy, LineSpacing*0.8, 2, pal.Ink)
		dst.StrokeLine(x+clefWidth/2+4, st.LineY(0)-LineSpacing, x+clefWidth/2+4, st.BottomLineY()+LineSpacing, 2, pal.Ink)
	case "bass":
		fy := st.StepY(6)
		dst.FillCircle(x+6, fy, 4, pal.Ink)
		dst.StrokeCircle(x+12, fy+4, LineSpacing, 2, pal.Ink)
		dst.FillCircle(x+clefWidth-2, fy-LineSpacing/2, 1.5, pal.Ink)
		dst.FillCircle(x+clefWidth-2, fy+LineSpacing/2, 1.5, pal.Ink)
	}
}

func (s *Score) drawTimeSignature(dst surface.Surface, pal Palette) {
	st := s.stave
	x := st.X + modifierPad + clefWidth + modifierPad
	dst.Text(strconv.Itoa(s.TimeSignature.Beats), x+4, st.LineY(0)+2, pal.Ink)
	dst.Text(strconv.Itoa(s.TimeSignature.Value), x+4, st.LineY(2)+2, pal.Ink)
}

func drawGlyph(dst surface.Surface, st Stave, g Glyph, pal Palette) {
	cx := g.HeadX + HeadWidth/2
	r := HeadHeight / 2

	for _, step := range ledgerSteps(g.Step) {
		y := st.StepY(step)
		dst.StrokeLine(g.HeadX-3, y, g.HeadX+HeadWidth+3, y, 1, pal.Lines)
	}

	if g.Duration.Filled() {
		dst.FillCircle(cx, g.Anchor, r, pal.Ink)
	} else {
		dst.StrokeCircle(cx, g.Anchor, r, 1.5, pal.Ink)
	}

	if g.Pitch.Accidental != "" {
		dst.Text(g.Pitch.Accidental, g.HeadX-accidentalGap, g.Anchor-r, pal.Ink)
	}

	if g.Duration.Dotted {
		dx, dy := dotCentre(g)
		dst.FillCircle(dx, dy, dotRadius, pal.Ink)
	}

	if !g.Duration.Stemmed() {
		return
	}
	var stemX, tipY, dir float64
	if g.StemUp {
		stemX, tipY, dir = g.HeadX+HeadWidth, g.Anchor-StemLength, 1
	} else {
		stemX, tipY, dir = g.HeadX, g.Anchor+StemLength, -1
	}
	dst.StrokeLine(stemX, g.Anchor, stemX, tipY, 1, pal.Ink)
	for f := 0; f < g.Duration.Flags(); f++ {
		y := tipY + dir*float64(f)*LineSpacing*0.8
		dst.StrokeLine(stemX, y, stemX+FlagWidth, y+dir*LineSpacing, 1.5, pal.Ink)
	}
}

// ledgerSteps lists the ledger line positions a head at step needs.
func ledgerSteps(step int) []int {
	var out []int
	for s := -2; s >= step; s -= 2 {
		out = append(out, s)
	}
	top := 2 * (NumLines - 1)
	for s := top + 2; s <= step; s += 2 {
		out = append(out, s)
	}
	return out
}
