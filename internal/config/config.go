package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ingyamilmolinar/playhead/core/model"
	"github.com/ingyamilmolinar/playhead/core/notation"
	"github.com/ingyamilmolinar/playhead/core/overlay"
)

var ErrInvalid = errors.New("config: invalid")

const (
	BackendWindow   = "window"
	BackendTerminal = "terminal"
)

type Surface struct {
	Width, Height int
}

type Staff struct {
	OriginX, OriginY float64
	Width            float64
	Clef             string
	TimeSignature    string
	Notes            []model.NoteSpec
}

type Loop struct {
	Duration     time.Duration
	TickInterval time.Duration // terminal backend only
}

type Overlay struct {
	DesignatedNote int
	NoteCount      int
	EarlyLead      time.Duration
	BandThickness  float64
	DotRadius      float64
}

type Config struct {
	Title    string
	Backend  string
	LogLevel string
	Surface  Surface
	Staff    Staff
	Loop     Loop
	Overlay  Overlay
}

// DefaultNotes is the reference passage: four quarter notes stepping down
// from E4.
const DefaultNotes = "e/4:q,d/4:q,c/4:q,b/3:q"

// Default returns the reference configuration.
func Default() Config {
	notes, _ := ParseNotes(DefaultNotes)
	return Config{
		Title:    "Violin Practice",
		Backend:  BackendWindow,
		LogLevel: "info",
		Surface:  Surface{Width: 500, Height: 200},
		Staff: Staff{
			OriginX:       10,
			OriginY:       40,
			Width:         400,
			Clef:          "treble",
			TimeSignature: "4/4",
			Notes:         notes,
		},
		Loop: Loop{
			Duration:     4 * time.Second,
			TickInterval: 16 * time.Millisecond,
		},
		Overlay: Overlay{
			DesignatedNote: 1,
			EarlyLead:      250 * time.Millisecond,
			BandThickness:  6,
			DotRadius:      4,
		},
	}
}

// ParseNotes reads "pitch:duration" tokens separated by commas. A token
// without a duration is a quarter note.
func ParseNotes(s string) ([]model.NoteSpec, error) {
	var out []model.NoteSpec
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		pitch, dur, ok := strings.Cut(tok, ":")
		if !ok {
			dur = "q"
		}
		pitch, dur = strings.TrimSpace(pitch), strings.TrimSpace(dur)
		if pitch == "" || dur == "" {
			return nil, fmt.Errorf("%w: note token %q", ErrInvalid, tok)
		}
		out = append(out, model.NoteSpec{Pitch: pitch, Duration: dur})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no notes in %q", ErrInvalid, s)
	}
	return out, nil
}

// FormatNotes is the inverse of ParseNotes.
func FormatNotes(notes []model.NoteSpec) string {
	parts := make([]string, len(notes))
	for i, n := range notes {
		parts[i] = n.Pitch + ":" + n.Duration
	}
	return strings.Join(parts, ",")
}

// Validate checks what can be checked without running the layout engine.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendWindow, BackendTerminal:
	default:
		return fmt.Errorf("%w: backend %q", ErrInvalid, c.Backend)
	}
	if c.Surface.Width <= 0 || c.Surface.Height <= 0 {
		return fmt.Errorf("%w: surface %dx%d", ErrInvalid, c.Surface.Width, c.Surface.Height)
	}
	if c.Staff.Width <= 0 {
		return fmt.Errorf("%w: staff width %.0f", ErrInvalid, c.Staff.Width)
	}
	if c.Staff.OriginX < 0 || c.Staff.OriginY < 0 ||
		c.Staff.OriginX+c.Staff.Width > float64(c.Surface.Width) {
		return fmt.Errorf("%w: staff at (%.0f,%.0f) width %.0f does not fit %dx%d surface",
			ErrInvalid, c.Staff.OriginX, c.Staff.OriginY, c.Staff.Width, c.Surface.Width, c.Surface.Height)
	}
	if len(c.Staff.Notes) == 0 {
		return fmt.Errorf("%w: no notes", ErrInvalid)
	}
	if c.Loop.Duration <= 0 {
		return fmt.Errorf("%w: loop duration %s", ErrInvalid, c.Loop.Duration)
	}
	if c.Overlay.EarlyLead < 0 || c.Overlay.EarlyLead >= c.Loop.Duration {
		return fmt.Errorf("%w: early lead %s for loop %s", ErrInvalid, c.Overlay.EarlyLead, c.Loop.Duration)
	}
	if c.Overlay.DesignatedNote < 0 || c.Overlay.DesignatedNote >= len(c.Staff.Notes) {
		return fmt.Errorf("%w: designated note %d of %d", ErrInvalid, c.Overlay.DesignatedNote, len(c.Staff.Notes))
	}
	if c.Overlay.NoteCount != 0 && c.Overlay.NoteCount != len(c.Staff.Notes) {
		return fmt.Errorf("%w: note count %d but %d notes given", ErrInvalid, c.Overlay.NoteCount, len(c.Staff.Notes))
	}
	if c.Overlay.BandThickness < 0 || c.Overlay.DotRadius < 0 {
		return fmt.Errorf("%w: negative band thickness or dot radius", ErrInvalid)
	}
	return nil
}

func (c Config) LayoutRequest() notation.Request {
	notes := make([]model.NoteSpec, len(c.Staff.Notes))
	copy(notes, c.Staff.Notes)
	return notation.Request{
		X:             c.Staff.OriginX,
		Y:             c.Staff.OriginY,
		Width:         c.Staff.Width,
		Clef:          c.Staff.Clef,
		TimeSignature: c.Staff.TimeSignature,
		Notes:         notes,
	}
}

func (c Config) OverlayConfig() overlay.Config {
	return overlay.Config{
		LoopMs:         float64(c.Loop.Duration) / float64(time.Millisecond),
		EarlyLeadMs:    float64(c.Overlay.EarlyLead) / float64(time.Millisecond),
		DesignatedNote: c.Overlay.DesignatedNote,
		NoteCount:      c.Overlay.NoteCount,
		BandThickness:  c.Overlay.BandThickness,
	}
}
