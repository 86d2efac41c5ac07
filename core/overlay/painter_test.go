package overlay

import (
	"reflect"
	"testing"

	"github.com/ingyamilmolinar/playhead/core/model"
	"github.com/ingyamilmolinar/playhead/core/surface"
)

func kinds(ops []surface.Op) []surface.OpKind {
	out := make([]surface.OpKind, len(ops))
	for i, op := range ops {
		out[i] = op.Kind
	}
	return out
}

func TestPainterOrderWithHighlight(t *testing.T) {
	c := newReferenceComputer(t)
	rec := surface.NewRecorder(500, 200)
	p := NewPainter(rec, c.Snapshot().Staff(), DefaultStyle())

	p.Paint(c.Compute(800))
	ops := rec.Ops()
	want := []surface.OpKind{surface.OpClear, surface.OpFillRect, surface.OpStrokeLine, surface.OpFillCircle}
	if !reflect.DeepEqual(kinds(ops), want) {
		t.Fatalf("ops=%v", ops)
	}
	if got := ops[1].Args; !reflect.DeepEqual(got, []float64{85, 77, 5, 6}) {
		t.Fatalf("highlight args=%v", got)
	}
	if got := ops[2].Args; !reflect.DeepEqual(got, []float64{90, 40, 90, 170, 1}) {
		t.Fatalf("playhead args=%v", got)
	}
	if got := ops[3].Args; !reflect.DeepEqual(got, []float64{90, 60, 4}) {
		t.Fatalf("dot args=%v", got)
	}
}

func TestPainterClearsEveryFrame(t *testing.T) {
	c := newReferenceComputer(t)
	rec := surface.NewRecorder(500, 200)
	p := NewPainter(rec, c.Snapshot().Staff(), DefaultStyle())

	p.Paint(c.Compute(2000))
	p.Paint(c.Compute(100))
	if rec.Clears() != 2 {
		t.Fatalf("clears=%d want 2", rec.Clears())
	}
	want := []surface.OpKind{surface.OpClear, surface.OpStrokeLine, surface.OpFillCircle}
	if got := kinds(rec.Ops()); !reflect.DeepEqual(got, want) {
		t.Fatalf("second frame ops=%v, highlight from first frame leaked", got)
	}
}

func TestPainterUsesStaffExtent(t *testing.T) {
	rec := surface.NewRecorder(100, 100)
	p := NewPainter(rec, model.StaffMetrics{OriginY: 5, Height: 20}, DefaultStyle())
	p.Paint(Plan{PlayheadX: 12, Dot: Point{X: 12, Y: 9}})
	line := rec.Ops()[1]
	if line.Args[1] != 5 || line.Args[3] != 25 {
		t.Fatalf("playhead spans %v..%v want 5..25", line.Args[1], line.Args[3])
	}
}
