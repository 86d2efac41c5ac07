package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// imageSurface draws onto an offscreen ebiten image. Images take no input, so
// the overlay never intercepts pointer events meant for the window.
type imageSurface struct {
	img *ebiten.Image
}

func (s *imageSurface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *imageSurface) Clear()             { s.img.Clear() }
func (s *imageSurface) Fill(c color.Color) { s.img.Fill(c) }

func (s *imageSurface) FillRect(x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (s *imageSurface) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	vector.StrokeLine(s.img, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c, true)
}

func (s *imageSurface) FillCircle(cx, cy, r float64, c color.Color) {
	vector.DrawFilledCircle(s.img, float32(cx), float32(cy), float32(r), c, true)
}

func (s *imageSurface) StrokeCircle(cx, cy, r, width float64, c color.Color) {
	vector.StrokeCircle(s.img, float32(cx), float32(cy), float32(r), float32(width), c, true)
}

// Text uses ebiten's debug font, which is always drawn in white.
func (s *imageSurface) Text(str string, x, y float64, _ color.Color) {
	ebitenutil.DebugPrintAt(s.img, str, int(x), int(y))
}
