package http

import (
	"sync"
	"time"
)

// frameLimiter caps inbound frames per connection per minute. A zero
// or negative limit disables it.
type frameLimiter struct {
	mu      sync.Mutex
	limit   int
	counter int
	reset   *time.Ticker
}

func newFrameLimiter(limit int) *frameLimiter {
	if limit <= 0 {
		return &frameLimiter{}
	}
	return &frameLimiter{
		limit: limit,
		reset: time.NewTicker(time.Minute),
	}
}

func (l *frameLimiter) allow() bool {
	if l == nil || l.limit <= 0 {
		return true
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.counter++
	return l.counter <= l.limit
}

func (l *frameLimiter) startReset(stop <-chan struct{}) {
	if l == nil || l.reset == nil {
		return
	}
	go func() {
		for {
			select {
			case <-l.reset.C:
				l.mu.Lock()
				l.counter = 0
				l.mu.Unlock()
			case <-stop:
				l.reset.Stop()
				return
			}
		}
	}()
}
