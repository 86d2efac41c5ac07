package overlay

import (
	"image/color"

	"github.com/ingyamilmolinar/playhead/core/model"
	"github.com/ingyamilmolinar/playhead/core/surface"
	"golang.org/x/image/colornames"
)

type Style struct {
	Highlight     color.Color
	Playhead      color.Color
	PlayheadWidth float64
	Dot           color.Color
	DotRadius     float64
}

func DefaultStyle() Style {
	return Style{
		Highlight:     color.NRGBA{R: 255, A: 77}, // red at 30%
		Playhead:      colornames.White,
		PlayheadWidth: 1,
		Dot:           colornames.Deepskyblue,
		DotRadius:     4,
	}
}

// Painter owns the dynamic surface. Each Paint replaces the previous frame.
type Painter struct {
	dst   surface.Surface
	staff model.StaffMetrics
	style Style
}

func NewPainter(dst surface.Surface, staff model.StaffMetrics, style Style) *Painter {
	return &Painter{dst: dst, staff: staff, style: style}
}

// Paint clears the whole surface, then draws band, playhead and dot in that
// order. Skipping the clear leaves trails of earlier frames.
func (p *Painter) Paint(plan Plan) {
	p.dst.Clear()
	if h := plan.Highlight; h != nil {
		p.dst.FillRect(h.X, h.Y, h.W, h.H, p.style.Highlight)
	}
	p.dst.StrokeLine(plan.PlayheadX, p.staff.OriginY, plan.PlayheadX, p.staff.Bottom(), p.style.PlayheadWidth, p.style.Playhead)
	p.dst.FillCircle(plan.Dot.X, plan.Dot.Y, p.style.DotRadius, p.style.Dot)
}
