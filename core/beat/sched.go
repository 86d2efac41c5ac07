package beat

import (
	"sync"
	"sync/atomic"
	"time"

	game_log "github.com/ingyamilmolinar/playhead/internal/log"
)

// Stats is a point-in-time view of a Loop.
type Stats struct {
	Ticks       uint64
	Cycles      uint64 // completed wraparounds
	LastElapsed time.Duration
}

// Loop is a repeating time base. Each host frame it emits the time elapsed
// within the current cycle, measured from the first frame's timestamp.
//
// No lock is held while subscribers run, so a subscriber may call Stop,
// Stats or Running. A subscriber call already under way on another goroutine
// when Stop returns is allowed to finish; no call starts after that. Hosts
// that need quiescence wait for their scheduler to drain.
type Loop struct {
	sched  Scheduler
	length time.Duration
	logger *game_log.Logger

	// mu guards subs, started, start and frame. It is never held while
	// subscribers run.
	mu      sync.Mutex
	subs    []func(elapsed time.Duration)
	started bool
	start   time.Time
	frame   FrameID

	stopped atomic.Bool
	running atomic.Bool
	ticks   atomic.Uint64
	cycles  atomic.Uint64
	last    atomic.Int64
}

func NewLoop(sched Scheduler, length time.Duration, logger *game_log.Logger) *Loop {
	if length <= 0 {
		panic("beat: loop length must be positive")
	}
	return &Loop{sched: sched, length: length, logger: logger}
}

func (l *Loop) Length() time.Duration { return l.length }

// Subscribe adds fn to the per-frame fan-out. Subscribers run on the
// scheduler's goroutine.
func (l *Loop) Subscribe(fn func(elapsed time.Duration)) {
	l.mu.Lock()
	l.subs = append(l.subs, fn)
	l.mu.Unlock()
}

// Start requests the first frame. It is a no-op when already started or
// after Stop.
func (l *Loop) Start() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.started || l.stopped.Load() {
		l.logger.Debugf("[LOOP] Start ignored: started=%t stopped=%t", l.started, l.stopped.Load())
		return
	}
	l.started = true
	l.running.Store(true)
	l.frame = l.sched.RequestFrame(l.step)
	l.logger.Infof("[LOOP] Started: length=%s", l.length)
}

// Stop cancels the pending frame without waiting for a tick in progress.
// Safe to call at any time, more than once, before Start and from inside a
// subscriber.
func (l *Loop) Stop() {
	if l.stopped.Swap(true) {
		return
	}
	l.running.Store(false)
	l.mu.Lock()
	if l.frame != 0 {
		l.sched.CancelFrame(l.frame)
		l.frame = 0
	}
	l.mu.Unlock()
	l.logger.Infof("[LOOP] Stopped after %d ticks, %d cycles", l.ticks.Load(), l.cycles.Load())
}

// Running reports whether the loop has started and not been stopped.
func (l *Loop) Running() bool { return l.running.Load() }

// Stats never blocks on a running tick. Fields are read one by one, so a
// concurrent tick may be half reflected.
func (l *Loop) Stats() Stats {
	return Stats{
		Ticks:       l.ticks.Load(),
		Cycles:      l.cycles.Load(),
		LastElapsed: time.Duration(l.last.Load()),
	}
}

func (l *Loop) step(now time.Time) {
	if l.stopped.Load() {
		return
	}
	l.mu.Lock()
	l.frame = 0
	if l.start.IsZero() {
		l.start = now
	}
	total := now.Sub(l.start)
	subs := l.subs
	l.mu.Unlock()

	if total < 0 {
		total = 0 // a host clock stepping backwards restarts nothing
	}
	elapsed := total % l.length
	cycles := uint64(total / l.length)
	if cycles != l.cycles.Load() {
		l.logger.Debugf("[LOOP] Wrapped: cycle=%d elapsed=%s", cycles, elapsed)
	}
	l.ticks.Add(1)
	l.cycles.Store(cycles)
	l.last.Store(int64(elapsed))

	for _, fn := range subs {
		if l.stopped.Load() {
			return
		}
		fn(elapsed)
	}

	// Stop sets the flag before taking mu, so either it sees this frame and
	// cancels it or this check sees the flag.
	l.mu.Lock()
	if !l.stopped.Load() {
		l.frame = l.sched.RequestFrame(l.step)
	}
	l.mu.Unlock()
}

// Millis converts d to fractional milliseconds.
func Millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
