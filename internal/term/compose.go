package term

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// compose writes the overlay layer over the static layer into screen.
// Overlay glyphs replace static ones; overlay backgrounds are alpha-blended.
func compose(screen tcell.Screen, static, over *cellSurface) {
	for row := 0; row < static.rows; row++ {
		for col := 0; col < static.cols; col++ {
			base := *static.at(col, row)
			if o := over.at(col, row); o != nil {
				if o.bg != nil {
					base.bg = blend(o.bg, base.bg)
				}
				if o.ch != 0 {
					base.ch, base.fg = o.ch, o.fg
				}
			}
			ch := base.ch
			if ch == 0 {
				ch = ' '
			}
			style := tcell.StyleDefault.Foreground(toColor(base.fg)).Background(toColor(base.bg))
			screen.SetContent(col, row, ch, nil, style)
		}
	}
}

// blend composites src over dst with src's alpha. A nil dst is black.
func blend(src, dst color.Color) color.Color {
	sr, sg, sb, sa := src.RGBA()
	if dst == nil {
		dst = color.Black
	}
	dr, dg, db, _ := dst.RGBA()
	k := 0xffff - sa
	return color.RGBA64{
		R: uint16(sr + dr*k/0xffff),
		G: uint16(sg + dg*k/0xffff),
		B: uint16(sb + db*k/0xffff),
		A: 0xffff,
	}
}

func toColor(c color.Color) tcell.Color {
	if c == nil {
		return tcell.ColorDefault
	}
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
