package core

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func TestQueueFIFO(t *testing.T) {
	q := NewQueue()
	for i := 0; i < 10; i++ {
		if !q.Push(fmt.Sprintf("frame-%d", i)) {
			t.Fatalf("push %d failed on open queue", i)
		}
	}

	ctx := context.Background()
	for i := 0; i < 10; i++ {
		frame, ok := q.Pop(ctx)
		if !ok {
			t.Fatalf("pop %d failed", i)
		}
		if want := fmt.Sprintf("frame-%d", i); frame != want {
			t.Fatalf("out of order: got %q want %q", frame, want)
		}
	}
}

func TestQueuePopBlocksUntilPush(t *testing.T) {
	q := NewQueue()

	go func() {
		time.Sleep(50 * time.Millisecond)
		q.Push("late")
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	frame, ok := q.Pop(ctx)
	if !ok || frame != "late" {
		t.Fatalf("expected delayed frame, got %q ok=%v", frame, ok)
	}
}

func TestQueueCloseDrainsThenStops(t *testing.T) {
	q := NewQueue()
	q.Push("a")
	q.Push("b")
	q.Close()

	ctx := context.Background()
	if frame, ok := q.Pop(ctx); !ok || frame != "a" {
		t.Fatalf("expected buffered frame after close, got %q ok=%v", frame, ok)
	}
	if frame, ok := q.Pop(ctx); !ok || frame != "b" {
		t.Fatalf("expected buffered frame after close, got %q ok=%v", frame, ok)
	}
	if _, ok := q.Pop(ctx); ok {
		t.Fatal("expected pop to report closed once drained")
	}

	if q.Push("c") {
		t.Fatal("push must fail after close")
	}
	if q.Len() != 0 {
		t.Fatalf("unexpected buffered frames: %d", q.Len())
	}
}

func TestQueueCloseTwice(t *testing.T) {
	q := NewQueue()
	q.Close()
	q.Close() // must not panic
}

func TestQueuePopHonorsContext(t *testing.T) {
	q := NewQueue()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	if _, ok := q.Pop(ctx); ok {
		t.Fatal("expected cancellation, got frame")
	}
	if time.Since(start) > time.Second {
		t.Fatal("pop did not return promptly on cancellation")
	}
}
