package main

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/ingyamilmolinar/playhead/core/notation"
	"github.com/ingyamilmolinar/playhead/internal/config"
	game_log "github.com/ingyamilmolinar/playhead/internal/log"
)

var testLogger = game_log.New(io.Discard, game_log.LevelError)

func TestInspectReferencePassage(t *testing.T) {
	var buf bytes.Buffer
	if err := inspect(&buf, testLogger, config.Default(), []int{0, 800, 1100}); err != nil {
		t.Fatalf("inspect: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"staff x=10.0",
		"note 0 e/4:q",
		"note 3 b/3:q",
		"target=1 beat=1000.0ms onset=750.0ms",
		"t=0ms x=10.0 note=0",
		"t=800ms x=90.0 note=0",
		"t=1100ms x=120.0 note=1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "t=0ms x=10.0 note=0 dot=(10.0,120.0) highlight=none") {
		t.Errorf("highlight shown before onset:\n%s", out)
	}
}

func TestInspectLayoutError(t *testing.T) {
	c := config.Default()
	c.Staff.Notes[0].Pitch = "h/4"
	err := inspect(io.Discard, testLogger, c, nil)
	if !errors.Is(err, notation.ErrBadPitch) {
		t.Fatalf("err=%v want ErrBadPitch", err)
	}
}

func TestRootRejectsBadNotes(t *testing.T) {
	defer func() { notes = config.DefaultNotes }()
	rootCmd.SetArgs([]string{"inspect", "--notes", " , "})
	rootCmd.SetOut(io.Discard)
	if err := rootCmd.Execute(); !errors.Is(err, config.ErrInvalid) {
		t.Fatalf("err=%v", err)
	}
}
