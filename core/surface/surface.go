// Package surface defines the drawing boundary shared by the static score
// layer and the per-frame overlay layer. Coordinates are layout pixels.
package surface

import "image/color"

// Surface is a 2D drawing target. Implementations never consume input events.
type Surface interface {
	Size() (w, h int)
	// Clear resets every pixel to fully transparent.
	Clear()
	// Fill paints every pixel with c.
	Fill(c color.Color)
	FillRect(x, y, w, h float64, c color.Color)
	StrokeLine(x0, y0, x1, y1, width float64, c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
	StrokeCircle(cx, cy, r, width float64, c color.Color)
	// Text draws s with its top-left corner at (x, y).
	Text(s string, x, y float64, c color.Color)
}
