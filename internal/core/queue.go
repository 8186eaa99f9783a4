package core

import (
	"context"
	"sync"

	"github.com/gammazero/deque"
)

// Queue is the per-connection outbound frame buffer. Many broadcast
// producers push; exactly one writer goroutine pops. It is unbounded:
// a slow reader in a busy room grows the buffer instead of blocking
// producers or dropping frames.
type Queue struct {
	mu     sync.Mutex
	frames deque.Deque[string]
	ready  chan struct{}
	closed bool
}

// NewQueue constructs an empty open queue.
func NewQueue() *Queue {
	return &Queue{ready: make(chan struct{}, 1)}
}

// Push appends a frame without blocking. Returns false if the queue
// has been closed, which callers treat as a dead connection.
func (q *Queue) Push(frame string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return false
	}
	q.frames.PushBack(frame)
	select {
	case q.ready <- struct{}{}:
	default:
	}
	return true
}

// Pop blocks until a frame is available, the queue is closed, or ctx
// is done. The second return value is false once the queue is drained
// and closed, or on cancellation.
func (q *Queue) Pop(ctx context.Context) (string, bool) {
	for {
		q.mu.Lock()
		if q.frames.Len() > 0 {
			frame := q.frames.PopFront()
			q.mu.Unlock()
			return frame, true
		}
		if q.closed {
			q.mu.Unlock()
			return "", false
		}
		q.mu.Unlock()

		select {
		case <-q.ready:
		case <-ctx.Done():
			return "", false
		}
	}
}

// Close marks the queue dead and wakes the consumer. Frames already
// buffered remain poppable; further pushes fail. Safe to call twice.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}
	q.closed = true
	close(q.ready)
}

// Len reports the number of buffered frames.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.frames.Len()
}
