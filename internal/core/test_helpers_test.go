package core

import (
	"context"
	"testing"
	"time"
)

// mustFrame pops the next outbound frame or fails after a deadline.
func mustFrame(t *testing.T, q *Queue) string {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	frame, ok := q.Pop(ctx)
	if !ok {
		t.Fatalf("expected outbound frame, queue yielded none")
	}
	return frame
}

// mustNoFrame asserts the queue stays empty for a short window.
func mustNoFrame(t *testing.T, q *Queue) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	if frame, ok := q.Pop(ctx); ok {
		t.Fatalf("expected no outbound frame, got %q", frame)
	}
}

func newTestClient(reg *Registry) *Client {
	c := NewClient(reg.NextID())
	reg.Register(c)
	return c
}
