package model

import "testing"

func TestSnapshotReindexesAndCopies(t *testing.T) {
	in := []Note{
		{Index: 7, Pitch: "e/4", BoundingBox: Rect{X: 90, W: 11}, AnchorY: 120},
		{Index: 3, Pitch: "d/4", BoundingBox: Rect{X: 110, W: 30}, AnchorY: 80},
	}
	s := NewSnapshot(in, StaffMetrics{OriginX: 10, OriginY: 40, Width: 400, Height: 130})
	in[0].AnchorY = -1

	if s.Len() != 2 {
		t.Fatalf("Len=%d", s.Len())
	}
	n0, ok := s.Note(0)
	if !ok || n0.Index != 0 || n0.AnchorY != 120 {
		t.Fatalf("note 0 = %+v ok=%v", n0, ok)
	}
	if n1 := s.MustNote(1); n1.Index != 1 || n1.BoundingBox.Right() != 140 {
		t.Fatalf("note 1 = %+v", n1)
	}

	notes := s.Notes()
	notes[1].AnchorY = 0
	if s.MustNote(1).AnchorY != 80 {
		t.Fatalf("Notes() leaked internal slice")
	}
	if s.Staff().Bottom() != 170 {
		t.Fatalf("staff bottom=%f", s.Staff().Bottom())
	}
}

func TestSnapshotMissingNote(t *testing.T) {
	s := NewSnapshot(nil, StaffMetrics{})
	if _, ok := s.Note(0); ok {
		t.Fatalf("expected miss on empty snapshot")
	}
	if _, ok := s.Note(-1); ok {
		t.Fatalf("expected miss on negative index")
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("MustNote did not panic")
		}
	}()
	s.MustNote(1)
}
