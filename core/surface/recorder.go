package surface

import (
	"fmt"
	"image/color"
	"sync"
)

// OpKind names a recorded drawing call.
type OpKind int

const (
	OpClear OpKind = iota
	OpFill
	OpFillRect
	OpStrokeLine
	OpFillCircle
	OpStrokeCircle
	OpText
)

func (k OpKind) String() string {
	switch k {
	case OpClear:
		return "clear"
	case OpFill:
		return "fill"
	case OpFillRect:
		return "fillRect"
	case OpStrokeLine:
		return "strokeLine"
	case OpFillCircle:
		return "fillCircle"
	case OpStrokeCircle:
		return "strokeCircle"
	case OpText:
		return "text"
	default:
		return "unknown"
	}
}

// Op is one recorded call. Args holds the numeric arguments in call order.
type Op struct {
	Kind  OpKind
	Args  []float64
	Color color.Color
	Text  string
}

func (o Op) String() string {
	if o.Kind == OpText {
		return fmt.Sprintf("%s(%q %v)", o.Kind, o.Text, o.Args)
	}
	return fmt.Sprintf("%s%v", o.Kind, o.Args)
}

// Recorder is a Surface that keeps the calls made since its last Clear.
// Clear itself is kept as the first op so callers can check it happened.
type Recorder struct {
	W, H int

	mu     sync.Mutex
	ops    []Op
	clears int
}

func NewRecorder(w, h int) *Recorder { return &Recorder{W: w, H: h} }

func (r *Recorder) Size() (int, int) { return r.W, r.H }

func (r *Recorder) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clears++
	r.ops = append(r.ops[:0], Op{Kind: OpClear})
}

func (r *Recorder) Fill(c color.Color) {
	r.add(Op{Kind: OpFill, Color: c})
}

func (r *Recorder) FillRect(x, y, w, h float64, c color.Color) {
	r.add(Op{Kind: OpFillRect, Args: []float64{x, y, w, h}, Color: c})
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	r.add(Op{Kind: OpStrokeLine, Args: []float64{x0, y0, x1, y1, width}, Color: c})
}

func (r *Recorder) FillCircle(cx, cy, rad float64, c color.Color) {
	r.add(Op{Kind: OpFillCircle, Args: []float64{cx, cy, rad}, Color: c})
}

func (r *Recorder) StrokeCircle(cx, cy, rad, width float64, c color.Color) {
	r.add(Op{Kind: OpStrokeCircle, Args: []float64{cx, cy, rad, width}, Color: c})
}

func (r *Recorder) Text(s string, x, y float64, c color.Color) {
	r.add(Op{Kind: OpText, Args: []float64{x, y}, Color: c, Text: s})
}

func (r *Recorder) add(op Op) {
	r.mu.Lock()
	r.ops = append(r.ops, op)
	r.mu.Unlock()
}

// Ops returns a copy of the recorded calls.
func (r *Recorder) Ops() []Op {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := make([]Op, len(r.ops))
	copy(cp, r.ops)
	return cp
}

// Clears returns how many times Clear was called.
func (r *Recorder) Clears() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.clears
}

// Count returns how many recorded ops have the given kind.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops() {
		if op.Kind == kind {
			n++
		}
	}
	return n
}
