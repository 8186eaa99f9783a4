package core

import (
	"context"
	"fmt"
	"testing"
)

func benchmarkBroadcast(b *testing.B, recipients int) {
	reg := NewRegistry(nil)

	sender := NewClient(reg.NextID())
	reg.Register(sender)
	reg.Join("bench", sender)

	clients := make([]*Client, 0, recipients)
	for i := 0; i < recipients; i++ {
		c := NewClient(reg.NextID())
		reg.Register(c)
		reg.Join("bench", c)
		clients = append(clients, c)
	}

	// Drain every recipient so queues stay small during the run.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	for _, c := range clients {
		go func(q *Queue) {
			for {
				if _, ok := q.Pop(ctx); !ok {
					return
				}
			}
		}(c.Outbound)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		reg.Broadcast("bench", "s: payload", sender.ID)
	}
}

func BenchmarkBroadcast(b *testing.B) {
	for _, n := range []int{10, 100, 500} {
		b.Run(fmt.Sprintf("recipients_%d", n), func(b *testing.B) {
			benchmarkBroadcast(b, n)
		})
	}
}
