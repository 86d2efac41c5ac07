package notation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrBadPitch         = errors.New("notation: bad pitch")
	ErrBadDuration      = errors.New("notation: bad duration")
	ErrBadTimeSignature = errors.New("notation: bad time signature")
	ErrUnknownClef      = errors.New("notation: unknown clef")
	ErrDurationMismatch = errors.New("notation: voice duration does not match time signature")
	ErrEmptyVoice       = errors.New("notation: empty voice")
	ErrNoRoom           = errors.New("notation: width leaves no room for notes")
)

// Durations are counted in 32nd-note ticks.
const (
	TicksWhole   = 32
	TicksQuarter = 8
)

var letterSteps = map[byte]int{'c': 0, 'd': 1, 'e': 2, 'f': 3, 'g': 4, 'a': 5, 'b': 6}

// Pitch is a parsed "<letter>[accidental]/<octave>" token.
type Pitch struct {
	Letter     byte
	Accidental string
	Octave     int
}

// Diatonic returns the number of diatonic steps above C0.
func (p Pitch) Diatonic() int { return p.Octave*7 + letterSteps[p.Letter] }

func (p Pitch) String() string {
	return fmt.Sprintf("%c%s/%d", p.Letter, p.Accidental, p.Octave)
}

// ParsePitch accepts tokens like "e/4", "C#/5", "bb/3", "fn/4".
func ParsePitch(tok string) (Pitch, error) {
	name, oct, ok := strings.Cut(strings.ToLower(strings.TrimSpace(tok)), "/")
	if !ok || name == "" {
		return Pitch{}, fmt.Errorf("%w: %q", ErrBadPitch, tok)
	}
	letter := name[0]
	if _, ok := letterSteps[letter]; !ok {
		return Pitch{}, fmt.Errorf("%w: %q: unknown letter", ErrBadPitch, tok)
	}
	acc := name[1:]
	switch acc {
	case "", "#", "##", "b", "bb", "n":
	default:
		return Pitch{}, fmt.Errorf("%w: %q: unknown accidental %q", ErrBadPitch, tok, acc)
	}
	o, err := strconv.Atoi(oct)
	if err != nil || o < 0 || o > 9 {
		return Pitch{}, fmt.Errorf("%w: %q: octave out of range", ErrBadPitch, tok)
	}
	return Pitch{Letter: letter, Accidental: acc, Octave: o}, nil
}

// Duration is a parsed duration token.
type Duration struct {
	Base   string // w, h, q, 8, 16
	Dotted bool
}

var baseTicks = map[string]int{"w": 32, "h": 16, "q": 8, "8": 4, "16": 2}

// Ticks returns the length in 32nd-note ticks.
func (d Duration) Ticks() int {
	t := baseTicks[d.Base]
	if d.Dotted {
		t += t / 2
	}
	return t
}

// Filled reports whether the notehead is solid.
func (d Duration) Filled() bool { return d.Base != "w" && d.Base != "h" }

// Stemmed reports whether the note carries a stem.
func (d Duration) Stemmed() bool { return d.Base != "w" }

// Flags returns the number of flags on the stem.
func (d Duration) Flags() int {
	switch d.Base {
	case "8":
		return 1
	case "16":
		return 2
	}
	return 0
}

// ParseDuration accepts "w", "h", "q", "8", "16" with an optional "d" suffix.
func ParseDuration(tok string) (Duration, error) {
	s := strings.ToLower(strings.TrimSpace(tok))
	d := Duration{}
	if strings.HasSuffix(s, "d") {
		d.Dotted = true
		s = strings.TrimSuffix(s, "d")
	}
	if _, ok := baseTicks[s]; !ok {
		return Duration{}, fmt.Errorf("%w: %q", ErrBadDuration, tok)
	}
	d.Base = s
	return d, nil
}

// TimeSignature is a parsed "N/D" meter.
type TimeSignature struct {
	Beats, Value int
}

// Ticks returns the measure length in 32nd-note ticks.
func (ts TimeSignature) Ticks() int { return ts.Beats * (TicksWhole / ts.Value) }

func (ts TimeSignature) String() string { return fmt.Sprintf("%d/%d", ts.Beats, ts.Value) }

func ParseTimeSignature(tok string) (TimeSignature, error) {
	n, d, ok := strings.Cut(strings.TrimSpace(tok), "/")
	if !ok {
		return TimeSignature{}, fmt.Errorf("%w: %q", ErrBadTimeSignature, tok)
	}
	beats, err1 := strconv.Atoi(n)
	value, err2 := strconv.Atoi(d)
	if err1 != nil || err2 != nil || beats < 1 || beats > 32 {
		return TimeSignature{}, fmt.Errorf("%w: %q", ErrBadTimeSignature, tok)
	}
	switch value {
	case 1, 2, 4, 8, 16:
	default:
		return TimeSignature{}, fmt.Errorf("%w: %q: denominator must be 1, 2, 4, 8 or 16", ErrBadTimeSignature, tok)
	}
	return TimeSignature{Beats: beats, Value: value}, nil
}

// Clef fixes which pitch sits on the bottom staff line.
type Clef struct {
	Name       string
	bottomLine int // diatonic index of the bottom line
}

var clefs = map[string]Clef{
	"treble": {Name: "treble", bottomLine: 4*7 + 2}, // E4
	"bass":   {Name: "bass", bottomLine: 2*7 + 4},   // G2
}

func ParseClef(name string) (Clef, error) {
	c, ok := clefs[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Clef{}, fmt.Errorf("%w: %q", ErrUnknownClef, name)
	}
	return c, nil
}

// Step returns the staff position of p in half-spaces above the bottom line.
func (c Clef) Step(p Pitch) int { return p.Diatonic() - c.bottomLine }
