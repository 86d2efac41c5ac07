package engine

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/ingyamilmolinar/playhead/core/beat"
	"github.com/ingyamilmolinar/playhead/core/notation"
	"github.com/ingyamilmolinar/playhead/core/overlay"
	"github.com/ingyamilmolinar/playhead/core/surface"
	"github.com/ingyamilmolinar/playhead/internal/config"
	game_log "github.com/ingyamilmolinar/playhead/internal/log"
)

var testLogger = game_log.New(io.Discard, game_log.LevelError)

type rig struct {
	e       *Engine
	frames  *beat.FrameQueue
	static  *surface.Recorder
	overlay *surface.Recorder
}

func newRig(t *testing.T, cfg config.Config) rig {
	t.Helper()
	r := rig{
		frames:  beat.NewFrameQueue(),
		static:  surface.NewRecorder(cfg.Surface.Width, cfg.Surface.Height),
		overlay: surface.NewRecorder(cfg.Surface.Width, cfg.Surface.Height),
	}
	e, err := New(testLogger, Options{
		Config:    cfg,
		Static:    r.static,
		Overlay:   r.overlay,
		Scheduler: r.frames,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	r.e = e
	return r
}

func TestEngineDrawsStaticOnceAndPaintsPerFrame(t *testing.T) {
	r := newRig(t, config.Default())
	staticOps := len(r.static.Ops())
	if staticOps == 0 {
		t.Fatalf("static score not drawn")
	}
	if len(r.overlay.Ops()) != 0 {
		t.Fatalf("overlay painted before Start")
	}

	var plans []overlay.Plan
	r.e.OnFrame = func(p overlay.Plan) { plans = append(plans, p) }
	r.e.Start()

	t0 := time.Unix(0, 0).Add(time.Hour)
	for _, ms := range []int{0, 500, 800, 1100, 4100} {
		r.frames.Dispatch(t0.Add(time.Duration(ms) * time.Millisecond))
	}
	if len(plans) != 5 {
		t.Fatalf("plans=%d", len(plans))
	}
	if plans[0].PlayheadX != 10 || plans[0].HighlightActive() {
		t.Fatalf("first frame=%+v", plans[0])
	}
	if !plans[2].HighlightActive() || plans[3].Current != 1 {
		t.Fatalf("frames 800/1100: %+v %+v", plans[2], plans[3])
	}
	if plans[4].HighlightActive() || plans[4].Current != 0 {
		t.Fatalf("frame after wrap kept state: %+v", plans[4])
	}
	if r.overlay.Clears() != 5 {
		t.Fatalf("overlay clears=%d want 5", r.overlay.Clears())
	}
	if len(r.static.Ops()) != staticOps || r.static.Clears() != 0 {
		t.Fatalf("static surface touched after layout")
	}
	st := r.e.Stats()
	if st.Frames != 5 || st.Ticks != 5 || st.Cycles != 1 {
		t.Fatalf("stats=%+v", st)
	}
}

func TestEngineStopEndsPainting(t *testing.T) {
	r := newRig(t, config.Default())
	r.e.Start()
	now := time.Now()
	r.frames.Dispatch(now)
	r.e.Stop()
	r.frames.Dispatch(now.Add(time.Second))
	if r.overlay.Clears() != 1 {
		t.Fatalf("painted after Stop: clears=%d", r.overlay.Clears())
	}
	if r.e.Running() {
		t.Fatalf("still running")
	}
}

func TestEngineStopAndStatsFromOnFrame(t *testing.T) {
	r := newRig(t, config.Default())
	var frames []uint64
	r.e.OnFrame = func(p overlay.Plan) {
		frames = append(frames, r.e.Stats().Frames)
		if p.ElapsedMs >= 1000 {
			r.e.Stop()
		}
	}
	r.e.Start()

	t0 := time.Unix(0, 0)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for _, ms := range []int{0, 1000, 2000} {
			r.frames.Dispatch(t0.Add(time.Duration(ms) * time.Millisecond))
		}
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Stop or Stats called from OnFrame blocked")
	}
	if len(frames) != 2 || frames[0] != 1 || frames[1] != 2 {
		t.Fatalf("frames seen from OnFrame=%v", frames)
	}
	if r.e.Running() || r.overlay.Clears() != 2 {
		t.Fatalf("running=%t clears=%d after stop inside a frame", r.e.Running(), r.overlay.Clears())
	}
}

func TestEngineLayoutFailureIsFatal(t *testing.T) {
	cfg := config.Default()
	cfg.Staff.TimeSignature = "3/4"
	static := surface.NewRecorder(500, 200)
	_, err := New(testLogger, Options{
		Config:    cfg,
		Static:    static,
		Overlay:   surface.NewRecorder(500, 200),
		Scheduler: beat.NewFrameQueue(),
	})
	if !errors.Is(err, notation.ErrDurationMismatch) {
		t.Fatalf("err=%v want ErrDurationMismatch", err)
	}
	if len(static.Ops()) != 0 {
		t.Fatalf("partial static render: %v", static.Ops())
	}
}

func TestEngineRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Overlay.DesignatedNote = 7
	_, err := New(testLogger, Options{
		Config:    cfg,
		Static:    surface.NewRecorder(500, 200),
		Overlay:   surface.NewRecorder(500, 200),
		Scheduler: beat.NewFrameQueue(),
	})
	if !errors.Is(err, config.ErrInvalid) {
		t.Fatalf("err=%v", err)
	}
}

func TestEngineSnapshotMatchesEngraver(t *testing.T) {
	r := newRig(t, config.Default())
	snap := r.e.Snapshot()
	if snap.Len() != 4 {
		t.Fatalf("len=%d", snap.Len())
	}
	// the overlay dot rides the engraved notehead centres
	want := []float64{120, 125, 130, 135}
	for i, y := range want {
		if got := r.e.Computer().Compute(float64(i)*1000 + 10).Dot.Y; got != y {
			t.Errorf("dot y in beat %d = %f want %f", i, got, y)
		}
	}
}
