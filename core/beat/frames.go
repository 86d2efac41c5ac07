package beat

import (
	"sync"
	"time"
)

// FrameID identifies a pending frame request. The zero value is never issued.
type FrameID uint64

// Scheduler is the host's per-refresh callback primitive.
type Scheduler interface {
	// RequestFrame registers fn to run once on the next frame.
	RequestFrame(fn func(now time.Time)) FrameID
	// CancelFrame drops a pending request. Unknown ids are ignored.
	CancelFrame(id FrameID)
}

// FrameQueue holds pending frame callbacks until the host drains them with
// Dispatch, once per refresh. Callbacks requested while a dispatch is running
// wait for the next one.
type FrameQueue struct {
	mu      sync.Mutex
	next    FrameID
	pending map[FrameID]func(time.Time)
	order   []FrameID
}

func NewFrameQueue() *FrameQueue {
	return &FrameQueue{pending: map[FrameID]func(time.Time){}}
}

func (q *FrameQueue) RequestFrame(fn func(now time.Time)) FrameID {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.next++
	id := q.next
	q.pending[id] = fn
	q.order = append(q.order, id)
	return id
}

func (q *FrameQueue) CancelFrame(id FrameID) {
	q.mu.Lock()
	delete(q.pending, id)
	q.mu.Unlock()
}

// Dispatch runs every callback pending at call time, in request order, and
// returns how many ran. Callbacks run without the queue lock held.
func (q *FrameQueue) Dispatch(now time.Time) int {
	q.mu.Lock()
	order := q.order
	q.order = nil
	fns := make([]func(time.Time), 0, len(order))
	for _, id := range order {
		if fn, ok := q.pending[id]; ok {
			fns = append(fns, fn)
			delete(q.pending, id)
		}
	}
	q.mu.Unlock()

	for _, fn := range fns {
		fn(now)
	}
	return len(fns)
}

// Pending returns the number of requests waiting for the next dispatch.
func (q *FrameQueue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
