package term

import (
	"image/color"
	"io"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/ingyamilmolinar/playhead/core/beat"
	"github.com/ingyamilmolinar/playhead/internal/config"
	game_log "github.com/ingyamilmolinar/playhead/internal/log"
)

var testLogger = game_log.New(io.Discard, game_log.LevelError)

func newTestHost(t *testing.T) (*Host, tcell.SimulationScreen, *beat.FrameQueue) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	frames := beat.NewFrameQueue()
	h, err := newHost(testLogger, config.Default(), screen, frames)
	if err != nil {
		t.Fatalf("newHost: %v", err)
	}
	t.Cleanup(h.Close)
	return h, screen, frames
}

func runeAt(s tcell.Screen, col, row int) rune {
	r, _, _, _ := s.GetContent(col, row)
	return r
}

func bgAt(s tcell.Screen, col, row int) tcell.Color {
	_, _, st, _ := s.GetContent(col, row)
	_, bg, _ := st.Decompose()
	return bg
}

func TestStaticScoreShownBeforeStart(t *testing.T) {
	_, screen, _ := newTestHost(t)
	// staff lines at y=80..120 land on rows 8..12
	for row := 8; row <= 12; row++ {
		if r := runeAt(screen, 40, row); r != runeHLine {
			t.Errorf("row %d col 40 = %q want staff line", row, r)
		}
	}
	if r := runeAt(screen, 2, 0); r != 'V' {
		t.Fatalf("title not drawn: %q", r)
	}
}

func TestFramesCompositeOverlay(t *testing.T) {
	h, screen, frames := newTestHost(t)
	h.Engine().Start()
	t0 := time.Unix(50, 0)
	frames.Dispatch(t0)
	frames.Dispatch(t0.Add(1500 * time.Millisecond))

	// playhead at x=160
	if r := runeAt(screen, 32, 6); r != runeVLine {
		t.Fatalf("playhead cell = %q", r)
	}
	// the previous frame's playhead is gone
	if r := runeAt(screen, 2, 6); r == runeVLine {
		t.Fatalf("stale playhead left on screen")
	}
	// band from x=142.5 to 160 around y=125
	static := bgAt(screen, 20, 12)
	if got := bgAt(screen, 30, 12); got == static {
		t.Fatalf("highlight not blended: %v", got)
	}
	if got := bgAt(screen, 30, 10); got != static {
		t.Fatalf("highlight leaked to row 10: %v", got)
	}
}

func TestQuitKeys(t *testing.T) {
	cases := []struct {
		key  tcell.Key
		r    rune
		quit bool
	}{
		{tcell.KeyEscape, 0, true},
		{tcell.KeyCtrlC, 0, true},
		{tcell.KeyRune, 'q', true},
		{tcell.KeyRune, 'x', false},
		{tcell.KeyEnter, 0, false},
	}
	for _, c := range cases {
		if got := quitKey(tcell.NewEventKey(c.key, c.r, tcell.ModNone)); got != c.quit {
			t.Errorf("key %v %q quit=%v want %v", c.key, c.r, got, c.quit)
		}
	}
}

func TestServeReturnsOnQuit(t *testing.T) {
	h, screen, _ := newTestHost(t)
	done := make(chan error, 1)
	go func() { done <- h.Serve() }()
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Serve: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Serve did not return")
	}
	h.Close()
	if h.Engine().Running() {
		t.Fatalf("engine still running after Close")
	}
}

func TestCellSurfaceRaster(t *testing.T) {
	s := newCellSurface(50, 30)
	if s.cols != 10 || s.rows != 3 {
		t.Fatalf("grid %dx%d", s.cols, s.rows)
	}
	s.StrokeLine(0, 15, 49, 15, 1, color.White)
	s.StrokeLine(20, 0, 20, 29, 1, color.White)
	if s.at(4, 1).ch != runeCross || s.at(0, 1).ch != runeHLine || s.at(4, 0).ch != runeVLine {
		t.Fatalf("lines not rasterised: %+v", s.cells)
	}
	s.FillRect(10, 10, 0, 10, color.White)
	if s.at(2, 1).bg != nil {
		t.Fatalf("empty rect painted a cell")
	}
	s.FillRect(12, 12, 10, 5, color.White)
	if s.at(2, 1).bg == nil || s.at(4, 1).bg == nil || s.at(5, 1).bg != nil {
		t.Fatalf("rect cells wrong")
	}
	s.Text("hi", 45, 20, color.White)
	if s.at(9, 2).ch != 'h' {
		t.Fatalf("text not written")
	}
	s.Clear()
	for _, c := range s.cells {
		if c.ch != 0 || c.bg != nil {
			t.Fatalf("Clear left %+v", c)
		}
	}
}

func TestBlend(t *testing.T) {
	got := blend(color.NRGBA{R: 255, A: 128}, color.Black)
	r, g, b, a := got.RGBA()
	if r < 0x7000 || r > 0x8100 || g != 0 || b != 0 || a != 0xffff {
		t.Fatalf("blend=%v", got)
	}
	if c := toColor(nil); c != tcell.ColorDefault {
		t.Fatalf("nil color=%v", c)
	}
}
