package model

import "fmt"

// Snapshot is the immutable result of the one-time layout pass.
type Snapshot struct {
	notes []Note
	staff StaffMetrics
}

// NewSnapshot copies notes and re-indexes them by position.
func NewSnapshot(notes []Note, staff StaffMetrics) *Snapshot {
	cp := make([]Note, len(notes))
	copy(cp, notes)
	for i := range cp {
		cp[i].Index = i
	}
	return &Snapshot{notes: cp, staff: staff}
}

func (s *Snapshot) Len() int            { return len(s.notes) }
func (s *Snapshot) Staff() StaffMetrics { return s.staff }

// Note returns the note at index i.
func (s *Snapshot) Note(i int) (Note, bool) {
	if i < 0 || i >= len(s.notes) {
		return Note{}, false
	}
	return s.notes[i], true
}

// MustNote is Note for indices that were validated up front. A miss here is a
// configuration bug, so it panics instead of drawing nothing.
func (s *Snapshot) MustNote(i int) Note {
	n, ok := s.Note(i)
	if !ok {
		panic(fmt.Sprintf("model: note index %d outside laid-out sequence of %d", i, len(s.notes)))
	}
	return n
}

// Notes returns a copy of all notes in sequence order.
func (s *Snapshot) Notes() []Note {
	cp := make([]Note, len(s.notes))
	copy(cp, s.notes)
	return cp
}
