package http

import "testing"

func TestFrameLimiterDisabled(t *testing.T) {
	l := newFrameLimiter(0)
	for range 100 {
		if !l.allow() {
			t.Fatal("disabled limiter must always allow")
		}
	}

	var nilLimiter *frameLimiter
	if !nilLimiter.allow() {
		t.Fatal("nil limiter must allow")
	}
}

func TestFrameLimiterCapsFrames(t *testing.T) {
	l := newFrameLimiter(2)
	if !l.allow() || !l.allow() {
		t.Fatal("first frames within limit must be allowed")
	}
	if l.allow() {
		t.Fatal("frame over the limit must be rejected")
	}
}
