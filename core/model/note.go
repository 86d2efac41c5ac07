package model

// Rect is an axis-aligned rectangle in layout pixels.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// NoteSpec is one input token for the layout engine.
type NoteSpec struct {
	Pitch    string // e.g. "d/4", "c#/5"
	Duration string // e.g. "q", "8", "hd"
}

// Note is a laid-out note. BoundingBox and AnchorY are separate measurements
// reported by the layout engine: the box covers the whole glyph including the
// stem, AnchorY is the notehead's vertical centre. AnchorY is never derived
// from BoundingBox.Y.
type Note struct {
	Index       int
	Pitch       string
	Duration    string
	BoundingBox Rect
	AnchorY     float64
}

// StaffMetrics describes where the staff was placed. OriginX is the fixed
// left inset and Width the layout width the notes were justified into;
// OriginY and Height are the vertical extent the playhead spans.
type StaffMetrics struct {
	OriginX float64
	OriginY float64
	Width   float64
	Height  float64
}

// Bottom returns OriginY + Height.
func (s StaffMetrics) Bottom() float64 { return s.OriginY + s.Height }
