package beat

import (
	"context"
	"time"
)

// DefaultTickInterval approximates a 60 Hz display refresh.
const DefaultTickInterval = 16 * time.Millisecond

// TickerScheduler drives a FrameQueue from its own goroutine. It stands in
// for a display refresh where the host has none (the terminal backend).
type TickerScheduler struct {
	*FrameQueue

	interval time.Duration
	now      func() time.Time
	ctx      context.Context
	cancel   context.CancelFunc
	done     chan struct{}
}

// NewTickerScheduler starts dispatching every interval until Close.
func NewTickerScheduler(interval time.Duration) *TickerScheduler {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	ctx, cancel := context.WithCancel(context.Background())
	s := &TickerScheduler{
		FrameQueue: NewFrameQueue(),
		interval:   interval,
		now:        time.Now,
		ctx:        ctx,
		cancel:     cancel,
		done:       make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *TickerScheduler) run() {
	defer close(s.done)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.Dispatch(s.now())
		case <-s.ctx.Done():
			return
		}
	}
}

// Close stops the goroutine and waits for an in-flight dispatch to return.
func (s *TickerScheduler) Close() {
	s.cancel()
	<-s.done
}
